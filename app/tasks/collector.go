package tasks

import (
	"sync"

	"github.com/findora-hu/findora/app/feed"
)

// Collector gathers the published items of every partner build in a batch,
// so a combined search push can run once the batch has drained. Safe for
// concurrent use by the worker pool.
type Collector struct {
	mu      sync.Mutex
	results map[string][]feed.Item
}

func NewCollector() *Collector {
	return &Collector{results: make(map[string][]feed.Item)}
}

// Add replaces the collected items of one partner.
func (c *Collector) Add(partnerID string, items []feed.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[partnerID] = items
}

// Results returns the collected items keyed by partner id.
func (c *Collector) Results() map[string][]feed.Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string][]feed.Item, len(c.results))
	for partnerID, items := range c.results {
		out[partnerID] = items
	}
	return out
}

// Reset clears the collected results before a new batch.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = make(map[string][]feed.Item)
}
