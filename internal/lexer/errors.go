package lexer

import (
	"fmt"

	"drift/internal/diag"
	"drift/internal/source"
)

// Error is a fatal lexical error. The scan has no recovery strategy, so the
// first one aborts the pass (см. Scan).
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.Code.ID(), e.Msg, e.Span)
}

// fail репортит диагностику и запоминает первую фатальную ошибку.
// В lenient-режиме сканеры сюда не заходят.
func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) {
	lx.report(code, sp, msg)
	if lx.err == nil {
		lx.err = &Error{Code: code, Span: sp, Msg: msg}
	}
}
