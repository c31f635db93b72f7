package source

import (
	"bytes"
	"path/filepath"
	"sort"
)

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte{'\r', '\n'}) {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i++
			changed = true
			continue
		}
		out = append(out, content[i])
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// buildLineIndex записывает байтовый оффсет каждого \n.
func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol переводит байтовый оффсет в 1-based строку и колонку.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// первый индекс, чей \n лежит не раньше off
	line := sort.Search(len(lineIdx), func(i int) bool {
		return lineIdx[i] >= off
	})
	if line == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	lineStart := lineIdx[line-1] + 1
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
