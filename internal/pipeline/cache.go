package pipeline

import (
	"sync"

	"adlens/domain/core"
)

// Cache holds finished snapshots keyed on the content fingerprint of their
// inputs. Keying on content (not filenames) means a changed file can never
// serve a stale snapshot; an unchanged reload is a hit.
type Cache struct {
	mu      sync.RWMutex
	entries map[core.SourceFingerprint]*Snapshot
}

// NewCache creates an empty snapshot cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[core.SourceFingerprint]*Snapshot)}
}

// Get returns the snapshot for a fingerprint, if cached.
func (c *Cache) Get(fp core.SourceFingerprint) (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.entries[fp]
	return snap, ok
}

// Put stores a snapshot under its own fingerprint.
func (c *Cache) Put(snap *Snapshot) {
	if snap == nil || snap.Fingerprint.IsEmpty() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[snap.Fingerprint] = snap
}

// Invalidate drops the entry for a fingerprint.
func (c *Cache) Invalidate(fp core.SourceFingerprint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, fp)
}

// Len returns the number of cached snapshots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
