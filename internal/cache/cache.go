// Package cache persists per-file lint results between runs. Entries
// are keyed by the file content hash and the hash of the selected rule
// set, so changing either the file or the configuration misses and
// relints.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion invalidates older entries when the record layout
// changes. Bump it on any change to the types in records.go.
const schemaVersion uint16 = 1

// appDir is the directory under the user cache root when no explicit
// cache directory is configured.
const appDir = "gohtmlint"

// Cache is a disk-backed store of per-file lint results. The zero
// value is not usable; call Open. A nil *Cache is valid everywhere and
// behaves as an always-miss cache, which is how disabled caching is
// represented.
type Cache struct {
	mu  sync.Mutex
	dir string
}

// Open initializes a cache rooted at dir, creating it if needed. An
// empty dir selects the user cache directory.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		dir = filepath.Join(base, appDir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// RulesetHash hashes a set of rule codes, independent of order.
func RulesetHash(codes []string) [32]byte {
	sorted := slices.Clone(codes)
	slices.Sort(sorted)
	return sha256.Sum256([]byte(strings.Join(sorted, "\n")))
}

// Key derives the entry key for one file from the rule set hash, the
// file path, and the file content hash. The path participates because
// stored ranges embed it: two identical files must not share an entry.
func Key(rulesetHash [32]byte, path string, contentHash [32]byte) string {
	h := sha256.New()
	h.Write(rulesetHash[:])
	h.Write([]byte(path))
	h.Write(contentHash[:])
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) pathFor(key string) string {
	return filepath.Join(c.dir, fmt.Sprintf("v%d", schemaVersion), key+".mp")
}

// Get loads the entry stored under key. Every failure mode counts as a
// miss: absent entry, unreadable file, undecodable payload, or a
// schema mismatch. Corrupt entries are removed so a later Put rewrites
// them.
func (c *Cache) Get(key string) (*Entry, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}

	var e Entry
	if err := msgpack.Unmarshal(data, &e); err != nil || e.Schema != schemaVersion {
		_ = os.Remove(p)
		return nil, false
	}
	return &e, true
}

// Put stores an entry under key. The entry lands through a temp file
// and a rename so readers never observe a partial write.
func (c *Cache) Put(key string, e *Entry) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e.Schema = schemaVersion

	data, err := msgpack.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return fmt.Errorf("create cache temp: %w", err)
	}
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write cache temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cache temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}
	success = true
	return nil
}

// DropAll removes every entry. The cache root itself stays in place.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := filepath.Join(c.dir, fmt.Sprintf("v%d", schemaVersion))
	if err := os.RemoveAll(entries); err != nil {
		return fmt.Errorf("drop cache: %w", err)
	}
	return nil
}
