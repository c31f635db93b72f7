package lexer

import (
	"drift/internal/token"
)

// scanSymbol: один символ пунктуации, либо пара из фиксированного
// allow-list (>> << == != <= >= && || += -=). Трёхсимвольные комбинации
// не пробуются.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && token.LookupSymbol2(b0, b1) {
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else {
		lx.cursor.Bump()
	}

	return token.Token{Kind: token.Symbol, Span: lx.cursor.SpanFrom(start)}
}
