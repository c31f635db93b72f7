package lexer

import (
	"drift/internal/token"
)

// scanIdentOrKeyword сканирует [A-Za-z_][A-Za-z0-9_]* и проверяет через
// LookupKeyword. Завершающий символ не потребляется — он остаётся диспетчеру.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump() // стартовый символ уже классифицирован
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Slice(sp))

	// регистрозависимая проверка на ключевое слово
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp}
	}
	return token.Token{Kind: token.Ident, Span: sp}
}
