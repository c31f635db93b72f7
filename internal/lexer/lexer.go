package lexer

import (
	"fmt"

	"drift/internal/diag"
	"drift/internal/source"
	"drift/internal/token"
)

// Lexer — однопроходный сканер: один линейный проход по буферу, без
// бэктрекинга. Пробелы и табы съедаются молча, токены для них не создаются.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	line   uint32       // 1-based, растёт после каждого Newline-токена
	look   *token.Token // 1 элементный буфер для токена
	err    *Error       // первая фатальная ошибка (строгий режим)
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		line:   1,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
// В строгом режиме первый фатальный сбой даёт Invalid-токен; дальше стоит
// проверить Err.
func (lx *Lexer) Next() token.Token {
	// если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()

		switch {
		case ch == '\n':
			return lx.scanNewline()

		case ch == ' ' || ch == '\t':
			lx.cursor.Bump()

		case isIdentStartByte(ch):
			return lx.scanIdentOrKeyword()

		case isDec(ch):
			return lx.scanNumber()

		case isParenByte(ch):
			return lx.scanParen()

		case isQuoteByte(ch):
			return lx.scanString()

		case isSymbolByte(ch):
			return lx.scanSymbol()

		default:
			// байт вне всех классов (включая не-ASCII)
			if tok, stop := lx.unrecognized(); stop {
				return tok
			}
		}
	}

	return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Err возвращает первую фатальную ошибку строгого режима, если была.
func (lx *Lexer) Err() error {
	if lx.err != nil {
		return lx.err
	}
	return nil
}

// scanNewline выдаёт Newline с номером строки, которую он завершает.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	tok := token.Token{
		Kind: token.Newline,
		Span: lx.cursor.SpanFrom(start),
		Line: lx.line,
	}
	lx.line++
	return tok
}

func (lx *Lexer) scanParen() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return token.Token{Kind: token.Paren, Span: lx.cursor.SpanFrom(start)}
}

// unrecognized съедает целую руну. Lenient: молча, известная точка потери
// информации. Строгий режим: фатальная ошибка.
func (lx *Lexer) unrecognized() (token.Token, bool) {
	start := lx.cursor.Mark()
	r, _ := lx.peekRune()
	lx.bumpRune()

	if lx.opts.Lenient {
		return token.Token{}, false
	}

	sp := lx.cursor.SpanFrom(start)
	lx.fail(diag.LexUnrecognizedChar, sp, fmt.Sprintf("unrecognized character %q", r))
	return token.Token{Kind: token.Invalid, Span: sp}, true
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// Scan tokenizes the whole file front to back and returns the token
// sequence without the trailing EOF marker. In strict mode the first
// lexical error aborts the pass and is returned; there is no
// partial-results-plus-errors mode. In lenient mode the error is always nil.
func Scan(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		if lx.err != nil {
			return nil, lx.err
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
