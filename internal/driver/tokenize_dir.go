package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"drift/internal/diag"
	"drift/internal/lexer"
	"drift/internal/source"
	"drift/internal/token"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // Путь к файлу
	FileID source.FileID // ID файла в FileSet
	Tokens []token.Token // Токены файла
	Bag    *diag.Bag     // Диагностики
	Err    error         // Фатальная лексическая ошибка (строгий режим)
}

// listDriftFiles возвращает отсортированный список всех *.dr файлов в директории
func listDriftFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".dr") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.dr файлы в директории параллельно.
// Лексическая ошибка в одном файле не останавливает остальные: она
// попадает в Err соответствующего результата.
func TokenizeDir(ctx context.Context, dir string, opts Options, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listDriftFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// FileSet не потокобезопасен: все файлы загружаем до запуска горутин
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = TokenizeDirResult{Path: path, Bag: bag, Err: loadErr}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
			tokens, scanErr := lexer.Scan(file, lexer.Options{
				Reporter: reporter,
				Lenient:  opts.Lenient,
			})

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
				Err:    scanErr,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
