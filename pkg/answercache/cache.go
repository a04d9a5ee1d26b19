package answercache

import (
	"sync"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/sirupsen/logrus"
)

// Cache is the shared in-memory answer store. It keeps insertion order so
// that when a write would exceed capacity, the least-recently-inserted entry
// still present is evicted (pure FIFO, not LRU: lookups do not refresh an
// entry, and overwriting a key keeps its original insertion slot).
//
// The cache lives for the whole process and is shared by every concurrent
// request, so all operations hold the mutex. There is no TTL and no
// persistence; entries die with the process.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  *orderedmap.OrderedMap[string, string]
}

// DefaultCapacity bounds the cache when no explicit capacity is configured.
const DefaultCapacity = 1000

// New creates an empty cache holding at most capacity answers.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  orderedmap.NewOrderedMap[string, string](),
	}
}

// Lookup returns the cached answer for key, if any. No side effects.
func (c *Cache) Lookup(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	answer, ok := c.entries.Get(key)
	return answer, ok
}

// Insert stores or overwrites the answer for key. If the write pushes the
// cache past capacity, exactly one entry is evicted: the oldest by insertion
// order.
func (c *Cache) Insert(key, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Set(key, answer)
	if c.entries.Len() > c.capacity {
		if oldest := c.entries.Front(); oldest != nil {
			c.entries.Delete(oldest.Key)
			logrus.WithFields(logrus.Fields{
				"evicted_key": oldest.Key,
				"capacity":    c.capacity,
			}).Debug("[CACHE] Capacity reached, evicted oldest entry")
		}
	}
}

// Len returns the current number of cached answers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Clear removes every entry and reports how many were dropped.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.entries.Len()
	c.entries = orderedmap.NewOrderedMap[string, string]()
	return n
}
