package lexer

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"drift/internal/diag"
	"drift/internal/token"
)

// scanNumber: десятичные и 0x-шестнадцатеричные целые, всегда signed 64-bit.
// Режим выбирается по второму символу: 'x' → hex, цифра → десятичный хвост,
// иначе литерал из одной цифры. Без знака, без '_', без float/binary/octal.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // стартовая цифра

	base := 10
	if lx.cursor.Eat('x') {
		base = 16
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else if isDec(lx.cursor.Peek()) {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	raw := string(lx.file.Slice(sp))

	digits := raw
	if base == 16 {
		// ParseInt не принимает 0x-префикс, срезаем первые два байта
		digits = raw[2:]
		if digits == "" {
			// голый "0x" без hex-цифр; лексим как ноль
			return token.Token{Kind: token.IntLit, Span: sp, Value: 0}
		}
	}

	value, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			// по построению недостижимо: потреблялись только валидные цифры
			panic(fmt.Errorf("integer literal %q: %w", raw, err))
		}
		if !lx.opts.Lenient {
			lx.fail(diag.LexIntegerOverflow, sp,
				fmt.Sprintf("integer literal %q exceeds the signed 64-bit range", raw))
			return token.Token{Kind: token.Invalid, Span: sp}
		}
		value = math.MaxInt64 // насыщение в lenient-режиме
	}

	return token.Token{Kind: token.IntLit, Span: sp, Value: value}
}
