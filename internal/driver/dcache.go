package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"archdoc/internal/source"
)

// Schema version, incremented whenever CachePayload changes shape.
const cacheSchemaVersion uint16 = 1

// Digest keys the disk cache: SHA-256 over source content plus the options
// that shaped the output.
type Digest [sha256.Size]byte

// DiskCache stores finished pipeline output per source digest, so unchanged
// files skip extraction entirely on the next run. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the serialized form of one file's pipeline output. The
// model itself is not cached; it is discarded after assembly and cheap to
// rebuild when the source changes anyway.
type CachePayload struct {
	Schema   uint16
	Diagram  string
	Document string
}

func newCachePayload(res *Result) *CachePayload {
	return &CachePayload{
		Schema:   cacheSchemaVersion,
		Diagram:  res.Diagram,
		Document: res.Document,
	}
}

func (p *CachePayload) toResult(path string) *Result {
	if p == nil || p.Schema != cacheSchemaVersion {
		return nil
	}
	return &Result{
		Path:     path,
		Diagram:  p.Diagram,
		Document: p.Document,
	}
}

// cacheKey derives the cache digest for a loaded file under the given
// options. Any option that changes output bytes must feed the hash.
func cacheKey(file *source.File, opts Options) Digest {
	h := sha256.New()
	h.Write(file.Hash[:])
	h.Write([]byte{byte(opts.Format), byte(opts.Embed)})
	h.Write([]byte(opts.DiagramRef))
	h.Write([]byte(strconv.Itoa(int(cacheSchemaVersion))))
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// OpenDiskCache initializes the cache at the XDG standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes the cache in an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	// A "docs" subdirectory keeps the cache root inspectable.
	return filepath.Join(c.dir, "docs", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes a payload.
func (c *DiskCache) Put(key Digest, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload; a miss is (false, nil). Stale schema versions read
// as misses.
func (c *DiskCache) Get(key Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
