package source

type (
	// FileID uniquely identifies a source buffer within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a buffer was obtained.
	FileFlags uint8
)

const (
	// FileVirtual indicates the buffer was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is the shared, immutable source buffer. Tokens never copy text out of
// it: they carry a Span and resolve their lexeme back through the File.
// Content must not be mutated after registration.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// Slice returns the bytes covered by the span. The result aliases Content.
func (f *File) Slice(s Span) []byte {
	return f.Content[s.Start:s.End]
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
