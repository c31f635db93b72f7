// Package token defines the drift token data model: the Kind enumeration,
// the positioned Token struct, the keyword table, and the two-character
// symbol allow-list.
//
// Tokens do not own their text. Each one carries a source.Span into the
// shared source buffer and reconstructs its lexeme on demand via Lexeme.
package token
