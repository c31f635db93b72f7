package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"drift/internal/token"
)

// Current schema version - increment when tokenPayload format changes
const tokenCacheSchemaVersion uint16 = 1

// TokenCache хранит токен-стримы по хэшу содержимого файла на диске.
// Спаны в токенах — относительные оффсеты в том же буфере, поэтому кэш
// валиден, пока совпадает хэш содержимого. Thread-safe.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type tokenPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	// Lenient records which scan mode produced the stream; strict and
	// lenient results are cached separately.
	Lenient bool
	Tokens  []token.Token
}

// OpenTokenCache initializes and returns a disk cache at the standard location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte, lenient bool) string {
	hexKey := hex.EncodeToString(key[:])
	suffix := ".strict.tok"
	if lenient {
		suffix = ".lenient.tok"
	}
	// подкаталог "tok" для удобства читаемости/очистки
	return filepath.Join(c.dir, "tok", hexKey+suffix)
}

// Put serializes and writes a token stream to the disk cache.
func (c *TokenCache) Put(key [32]byte, lenient bool, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key, lenient)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}

	payload := tokenPayload{
		Schema:  tokenCacheSchemaVersion,
		Lenient: lenient,
		Tokens:  tokens,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	// атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a token stream from the disk cache.
func (c *TokenCache) Get(key [32]byte, lenient bool) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key, lenient))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload tokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != tokenCacheSchemaVersion || payload.Lenient != lenient {
		return nil, false, nil
	}
	return payload.Tokens, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
