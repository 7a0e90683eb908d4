package fs

import (
	"slices"
	"sync"

	"go.trai.ch/fontconf/internal/core/ports"
)

var _ ports.Finalizer = (*DirCache)(nil)

// DirCache keeps directory scans between builds.
//
// An entry is valid while every directory mtime recorded with it still
// matches; a font added to or removed from a directory changes that
// directory's mtime. Rewriting a font file in place does not, so such edits
// are only picked up once the entry is invalidated by something else.
type DirCache struct {
	mu      sync.RWMutex
	entries map[string]*DirScan // root -> scan
}

// NewDirCache creates a new, empty DirCache.
func NewDirCache() *DirCache {
	return &DirCache{
		entries: make(map[string]*DirScan),
	}
}

// Paths returns the directories recorded for root, or nil when root is not cached.
func (c *DirCache) Paths(root string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[root]
	if !ok {
		return nil
	}
	paths := make([]string, 0, len(entry.Mtimes))
	for p := range entry.Mtimes {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Get returns the cached scan for root if its recorded mtimes equal current.
func (c *DirCache) Get(root string, current map[string]int64) (*DirScan, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[root]
	if !ok {
		return nil, false
	}

	if len(current) != len(entry.Mtimes) {
		return nil, false
	}
	for path, mtime := range current {
		stored, ok := entry.Mtimes[path]
		if !ok || stored != mtime {
			return nil, false
		}
	}

	return entry, true
}

// Set stores a scan under its root.
func (c *DirCache) Set(scan *DirScan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[scan.Root] = scan
}

// Len returns the number of cached roots.
func (c *DirCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Fini drops every cached scan.
func (c *DirCache) Fini() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
