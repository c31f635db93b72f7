package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// ===== Классификаторы (только ASCII, unicode-идентификаторов нет) =====

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func isParenByte(b byte) bool {
	switch b {
	case '{', '}', '(', ')', '[', ']':
		return true
	}
	return false
}

func isQuoteByte(b byte) bool {
	return b == '\'' || b == '"' || b == '`'
}

// isSymbolByte покрывает printable ASCII пунктуацию: !-/, :-@, [-`, {-~.
// Скобки, кавычки и '_' попадают в эти диапазоны, но диспетчер разбирает их
// раньше, сюда они не доходят.
func isSymbolByte(b byte) bool {
	return (b >= '!' && b <= '/') ||
		(b >= ':' && b <= '@') ||
		(b >= '[' && b <= '`') ||
		(b >= '{' && b <= '~')
}

// ===== Работа с рунами поверх Cursor =====

// peekRune читает текущую позицию как руну (для нераспознанного ввода,
// чтобы не рвать UTF-8 последовательность на отдельные байты)
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}
