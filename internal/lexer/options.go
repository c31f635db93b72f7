package lexer

import (
	"drift/internal/diag"
	"drift/internal/source"
)

type Options struct {
	// Reporter получает диагностики; может быть nil — тогда они теряются,
	// но строгий режим всё равно останавливает скан через Scan/Err.
	Reporter diag.Reporter

	// Lenient восстанавливает историческое поведение: нераспознанные байты
	// молча съедаются, незакрытая строка принимается до EOF, переполнение
	// литерала насыщается границей int64. По умолчанию лексер строгий.
	Lenient bool
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
