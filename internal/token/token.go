package token

import (
	"drift/internal/source"
)

// Token is one positioned token. The span references the shared source
// buffer; the token itself stores no copy of the matched text, only the
// payload fields relevant for its kind.
type Token struct {
	Kind Kind
	Span source.Span

	// Value holds the parsed integer for IntLit (raw text stays in the span).
	Value int64
	// Quote holds the delimiter for StringLit: ', " or `.
	Quote byte
	// Line holds the 1-based line number a Newline token terminates.
	Line uint32
}

// Lexeme reconstructs the exact matched source text from the file buffer.
// Valid for every non-synthetic token; for EOF the result is empty.
func (t Token) Lexeme(f *source.File) string {
	return string(f.Slice(t.Span))
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsLiteral reports whether the token is an integer or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
