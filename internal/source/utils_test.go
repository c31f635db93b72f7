package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"empty", "", "", false},
		{"no line breaks", "abc", "abc", false},
		{"lf only", "a\nb\n", "a\nb\n", false},
		{"crlf", "a\r\nb\r\n", "a\nb\n", true},
		{"mixed", "a\r\nb\nc", "a\nb\nc", true},
		// одиночный \r не трогаем
		{"lone cr", "a\rb", "a\rb", false},
		{"cr before crlf", "a\r\r\nb", "a\r\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if string(got) != tt.want {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || !bytes.Equal(got, []byte("hi")) {
		t.Errorf("removeBOM(BOM+hi) = %q, %v", got, had)
	}

	plain := []byte("hi")
	got, had = removeBOM(plain)
	if had || !bytes.Equal(got, plain) {
		t.Errorf("removeBOM(hi) = %q, %v", got, had)
	}

	short := []byte{0xEF, 0xBB}
	if _, had := removeBOM(short); had {
		t.Error("truncated BOM must not be stripped")
	}
}

func TestBuildLineIndex(t *testing.T) {
	tests := []struct {
		in   string
		want []uint32
	}{
		{"", nil},
		{"abc", nil},
		{"a\nb", []uint32{1}},
		{"a\nb\nc\n", []uint32{1, 3, 5}},
		{"\n\n", []uint32{0, 1}},
	}

	for _, tt := range tests {
		got := buildLineIndex([]byte(tt.in))
		if len(got) != len(tt.want) {
			t.Errorf("buildLineIndex(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("buildLineIndex(%q)[%d] = %d, want %d", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\n\nef" → индекс \n: [2, 5, 6]
	lineIdx := buildLineIndex([]byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}}, // 'a'
		{1, LineCol{1, 2}}, // 'b'
		{2, LineCol{1, 3}}, // \n строки 1
		{3, LineCol{2, 1}}, // 'c'
		{4, LineCol{2, 2}}, // 'd'
		{5, LineCol{2, 3}}, // \n строки 2
		{6, LineCol{3, 1}}, // \n пустой строки 3
		{7, LineCol{4, 1}}, // 'e'
		{8, LineCol{4, 2}}, // 'f'
		{9, LineCol{4, 3}}, // за концом буфера
	}

	for _, tt := range tests {
		if got := toLineCol(lineIdx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestToLineCol_SingleLine(t *testing.T) {
	if got := toLineCol(nil, 7); got != (LineCol{1, 8}) {
		t.Errorf("toLineCol(nil, 7) = %v, want {1 8}", got)
	}
}

func TestToLineCol_Multibyte(t *testing.T) {
	// колонки считаются в байтах: 'α' занимает две позиции
	lineIdx := buildLineIndex([]byte("α\nβ"))
	if got := toLineCol(lineIdx, 2); got != (LineCol{1, 3}) {
		t.Errorf("off 2 = %v, want {1 3}", got)
	}
	if got := toLineCol(lineIdx, 3); got != (LineCol{2, 1}) {
		t.Errorf("off 3 = %v, want {2 1}", got)
	}
}
