package diag

import (
	"fmt"
)

// Code is a stable diagnostic identifier. Ranges are reserved per phase so
// codes stay stable as the front end grows: 1xxx lexical, 4xxx I/O.
type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnrecognizedChar   Code = 1001
	LexUnterminatedString Code = 1002
	LexIntegerOverflow    Code = 1003

	// I/O
	IOLoadFileError Code = 4000
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnrecognizedChar:   "Unrecognized character",
	LexUnterminatedString: "Unterminated string literal",
	LexIntegerOverflow:    "Integer literal out of 64-bit range",
	IOLoadFileError:       "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
