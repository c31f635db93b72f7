package lexer

import (
	"drift/internal/diag"
	"drift/internal/token"
)

// scanString: три вида кавычек (' " `), закрывает только та же самая.
// Escape-последовательностей нет, '\' — обычный байт. Перевод строки не
// останавливает строку: незакрытая кавычка глотает всё до EOF, при этом
// счётчик строк лексера не двигается (точные позиции даёт LineIdx файла).
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump() // открывающая кавычка

	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == quote {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Quote: quote}
		}
	}

	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	if lx.opts.Lenient {
		return token.Token{Kind: token.StringLit, Span: sp, Quote: quote}
	}
	lx.fail(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Quote: quote}
}
