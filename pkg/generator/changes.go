package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ChangeTracker remembers content hashes of recently seen files so the
// watcher can tell real edits apart from editor noise (touch events,
// atomic-save rewrites with identical content).
type ChangeTracker struct {
	hashes *lru.Cache[string, string]
	logger *slog.Logger
}

// NewChangeTracker creates a tracker holding at most maxFiles entries.
// maxFiles <= 0 selects the 1000-entry default.
func NewChangeTracker(maxFiles int, logger *slog.Logger) *ChangeTracker {
	if maxFiles <= 0 {
		maxFiles = 1000
	}
	if logger == nil {
		logger = slog.Default()
	}

	cache, err := lru.NewWithEvict(maxFiles, func(key string, _ string) {
		logger.Debug("change tracker evicting entry", "path", key)
	})
	if err != nil {
		// Only reachable with a non-positive size, which the guard
		// above rules out.
		panic(fmt.Sprintf("failed to create change tracker: %v", err))
	}

	return &ChangeTracker{hashes: cache, logger: logger}
}

// Changed reports whether content differs from the last recorded state
// of path, updating the record. The first sighting of a path always
// counts as changed.
func (ct *ChangeTracker) Changed(path string, content []byte) bool {
	hash := ContentHash(content)
	if prev, ok := ct.hashes.Get(path); ok && prev == hash {
		return false
	}
	ct.hashes.Add(path, hash)
	return true
}

// Forget drops the recorded hash for path, used when a file is removed
// or renamed away.
func (ct *ChangeTracker) Forget(path string) {
	ct.hashes.Remove(path)
}

// Len returns the number of tracked files.
func (ct *ChangeTracker) Len() int {
	return ct.hashes.Len()
}

// ContentHash returns the hex-encoded SHA-256 of content.
func ContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
