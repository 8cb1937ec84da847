package scan

import (
	"fmt"
	"sync"
	"time"
)

// Catalog is the item list shared between the background scan and the
// render loop. Every change bumps Version so the loop can tell when to hand
// the gallery a new list.
type Catalog struct {
	mu      sync.RWMutex
	items   FileItems
	version uint64
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Clear is a thread-safe method to empty the list before a rescan.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.version++
}

// AddItems is a thread-safe method to append a batch of items.
func (c *Catalog) AddItems(items FileItems) {
	if len(items) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, items...)
	c.version++
}

// Count returns the number of items in a thread-safe manner.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Version increases on every change.
func (c *Catalog) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Snapshot returns a copy of the list and the version it belongs to.
func (c *Catalog) Snapshot() (FileItems, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(FileItems, len(c.items))
	copy(out, c.items)
	return out, c.version
}

// Dump is a one-line summary for debug output.
func (c *Catalog) Dump() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fmt.Sprintf("catalog v%d: %d items", c.version, len(c.items))
}

// Fill drains ch into the catalog in batches, so a long scan shows up
// progressively without a version bump per file. A partial batch is flushed
// every flush interval. It returns the number of items added once ch closes.
func (c *Catalog) Fill(ch <-chan FileItem, batchSize int, flush time.Duration) int {
	if batchSize <= 0 {
		batchSize = 1
	}
	batch := make(FileItems, 0, batchSize)
	ticker := time.NewTicker(flush)
	defer ticker.Stop()

	total := 0
	for {
		select {
		case item, ok := <-ch:
			if !ok {
				c.AddItems(batch)
				return total
			}
			batch = append(batch, item)
			total++
			if len(batch) >= batchSize {
				c.AddItems(batch)
				batch = make(FileItems, 0, batchSize)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				c.AddItems(batch)
				batch = make(FileItems, 0, batchSize)
			}
		}
	}
}
