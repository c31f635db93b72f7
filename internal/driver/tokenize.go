// Package driver orchestrates the front-end phases: loading buffers,
// running the lexer, collecting diagnostics, and caching token streams.
package driver

import (
	"drift/internal/diag"
	"drift/internal/lexer"
	"drift/internal/source"
	"drift/internal/token"
)

// Options configures a tokenize run.
type Options struct {
	// MaxDiagnostics ограничивает размер Bag.
	MaxDiagnostics int
	// Lenient включает исторический режим молчаливого пропуска (см. lexer.Options).
	Lenient bool
	// Cache, если не nil, переиспользует токены по хэшу содержимого файла.
	Cache *TokenCache
}

type TokenizeResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Tokens    []token.Token
	Bag       *diag.Bag
	FromCache bool
}

// Tokenize loads one file and scans it front to back. An I/O failure
// returns a nil result. A lexical failure (strict mode) returns the result
// with the populated Bag alongside the error, so callers can render the
// diagnostics before giving up.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	result := &TokenizeResult{FileSet: fs, File: file, Bag: bag}

	if opts.Cache != nil {
		if tokens, ok, cacheErr := opts.Cache.Get(file.Hash, opts.Lenient); cacheErr == nil && ok {
			result.Tokens = tokens
			result.FromCache = true
			return result, nil
		}
	}

	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	tokens, err := lexer.Scan(file, lexer.Options{
		Reporter: reporter,
		Lenient:  opts.Lenient,
	})
	if err != nil {
		return result, err
	}
	result.Tokens = tokens

	if opts.Cache != nil {
		// ошибки кэша не фатальны для самой токенизации
		_ = opts.Cache.Put(file.Hash, opts.Lenient, tokens)
	}
	return result, nil
}
