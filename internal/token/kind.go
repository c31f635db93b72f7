package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token: [A-Za-z_][A-Za-z0-9_]*.
	Ident
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwFi represents the 'fi' keyword.
	KwFi // fi

	// IntLit represents a signed 64-bit integer literal, decimal or 0x-hex.
	IntLit
	// StringLit represents a quoted string literal. All three quote kinds
	// ((', ", `)) produce the same Kind; the delimiter is kept in Token.Quote.
	StringLit

	// Paren represents one of { } ( ) [ ]. Open and close are not
	// distinguished at this layer; the span holds the literal character.
	Paren
	// Symbol represents a one- or two-character operator.
	Symbol
	// Newline represents a single '\n'; Token.Line holds the 1-based number
	// of the line it terminates.
	Newline
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwIf:      "KwIf",
	KwFi:      "KwFi",
	IntLit:    "IntLit",
	StringLit: "StringLit",
	Paren:     "Paren",
	Symbol:    "Symbol",
	Newline:   "Newline",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether the kind is a language keyword.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwIf, KwFi:
		return true
	default:
		return false
	}
}
