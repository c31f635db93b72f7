package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"drift/internal/source"
	"drift/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Span  source.Span `json:"span"`
	Value int64       `json:"value,omitempty"`
	Quote string      `json:"quote,omitempty"`
	Line  uint32      `json:"line,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		f := fs.Get(tok.Span.File)

		fmt.Fprintf(w, "%3d: %-9s", i+1, tok.Kind.String())

		if text := tok.Lexeme(f); text != "" {
			fmt.Fprintf(w, " %q", text)
		}

		switch tok.Kind {
		case token.IntLit:
			fmt.Fprintf(w, " value=%d", tok.Value)
		case token.StringLit:
			fmt.Fprintf(w, " quote=%c", tok.Quote)
		case token.Newline:
			fmt.Fprintf(w, " line=%d", tok.Line)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		f := fs.Get(tok.Span.File)
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Lexeme(f),
			Span: tok.Span,
		}
		switch tok.Kind {
		case token.IntLit:
			out.Value = tok.Value
		case token.StringLit:
			out.Quote = string(tok.Quote)
		case token.Newline:
			out.Line = tok.Line
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
