package util

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// SourceCache keeps source files memory-mapped for repeated reads. The
// generate, watch, and inspect paths re-read the same files across runs;
// mapping them once avoids copying contents on every pass. Files that
// cannot be mapped fall back to a plain os.ReadFile copy.
//
// Thread-safe. Returned slices are valid until the entry is removed or
// the cache is closed; callers that keep data longer must copy it.
type SourceCache struct {
	mu       sync.RWMutex
	files    map[string]*mappedSource
	fallback map[string][]byte
	maxFiles int
	logger   *slog.Logger

	statsMu sync.Mutex
	stats   SourceCacheStats
}

// SourceCacheStats tracks cumulative cache behavior.
type SourceCacheStats struct {
	Hits         int64
	Misses       int64
	MmapFailures int64
	Cached       int
}

type mappedSource struct {
	data mmap.MMap
	file *os.File
}

// NewSourceCache creates a cache holding at most maxFiles entries.
// maxFiles <= 0 means unlimited. A nil logger uses slog.Default().
func NewSourceCache(maxFiles int, logger *slog.Logger) *SourceCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceCache{
		files:    make(map[string]*mappedSource),
		fallback: make(map[string][]byte),
		maxFiles: maxFiles,
		logger:   logger,
	}
}

// Bytes returns the file's contents, mapping the file on first access.
func (c *SourceCache) Bytes(path string) ([]byte, error) {
	c.mu.RLock()
	if ms, ok := c.files[path]; ok {
		c.mu.RUnlock()
		c.recordHit()
		return ms.data, nil
	}
	if data, ok := c.fallback[path]; ok {
		c.mu.RUnlock()
		c.recordHit()
		return data, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have loaded it while we waited for the lock.
	if ms, ok := c.files[path]; ok {
		c.recordHit()
		return ms.data, nil
	}
	if data, ok := c.fallback[path]; ok {
		c.recordHit()
		return data, nil
	}

	c.recordMiss()

	if c.maxFiles > 0 && len(c.files)+len(c.fallback) >= c.maxFiles {
		return nil, fmt.Errorf("source cache full: %d files (limit %d)",
			len(c.files)+len(c.fallback), c.maxFiles)
	}

	return c.load(path)
}

// load maps a file read-only, falling back to os.ReadFile when mapping
// fails. Must be called with mu held.
func (c *SourceCache) load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	// Zero-length files cannot be mapped.
	if stat.Size() == 0 {
		file.Close()
		c.fallback[path] = []byte{}
		return []byte{}, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		c.logger.Warn("mmap failed, reading file instead",
			"file", path,
			"size", stat.Size(),
			"error", err)
		file.Close()

		contents, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("mmap and read both failed for %q: %w", path, readErr)
		}
		c.fallback[path] = contents
		c.recordMmapFailure()
		return contents, nil
	}

	c.files[path] = &mappedSource{data: data, file: file}
	return data, nil
}

// Remove drops a file from the cache, unmapping it if mapped. Watch mode
// calls this when a file changes or disappears so the next read sees
// fresh contents.
func (c *SourceCache) Remove(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ms, ok := c.files[path]; ok {
		if err := ms.data.Unmap(); err != nil {
			c.logger.Warn("failed to unmap file", "path", path, "error", err)
		}
		if err := ms.file.Close(); err != nil {
			c.logger.Warn("failed to close file", "path", path, "error", err)
		}
		delete(c.files, path)
	}
	delete(c.fallback, path)
}

// Size returns the number of currently cached files.
func (c *SourceCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.files) + len(c.fallback)
}

// Stats returns current cache metrics.
func (c *SourceCache) Stats() SourceCacheStats {
	c.mu.RLock()
	cached := len(c.files) + len(c.fallback)
	c.mu.RUnlock()

	c.statsMu.Lock()
	defer c.statsMu.Unlock()

	stats := c.stats
	stats.Cached = cached
	return stats
}

// Close unmaps every cached file and clears the cache.
func (c *SourceCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for path, ms := range c.files {
		if err := ms.data.Unmap(); err != nil {
			c.logger.Warn("failed to unmap file", "path", path, "error", err)
			errs = append(errs, fmt.Errorf("unmap %q: %w", path, err))
		}
		if err := ms.file.Close(); err != nil {
			c.logger.Warn("failed to close file", "path", path, "error", err)
			errs = append(errs, fmt.Errorf("close %q: %w", path, err))
		}
	}

	c.files = make(map[string]*mappedSource)
	c.fallback = make(map[string][]byte)

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}
	return nil
}

func (c *SourceCache) recordHit() {
	c.statsMu.Lock()
	c.stats.Hits++
	c.statsMu.Unlock()
}

func (c *SourceCache) recordMiss() {
	c.statsMu.Lock()
	c.stats.Misses++
	c.statsMu.Unlock()
}

func (c *SourceCache) recordMmapFailure() {
	c.statsMu.Lock()
	c.stats.MmapFailures++
	c.statsMu.Unlock()
}
