// Package cache provides an LRU cache for compiled statements, so hot
// query documents skip parsing and compilation.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/datagrove-io/impala-dialect/query/sqlgen"
)

// Stats reports cache effectiveness.
type Stats struct {
	Hits      int64
	Misses    int64
	Size      int
	MaxSize   int
	Evictions int64
}

// HitRate is the fraction of lookups served from the cache.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Key derives a cache key from a dialect name and a query document's
// source text.
func Key(dialect, source string) string {
	sum := sha256.Sum256([]byte(dialect + "\x00" + source))
	return hex.EncodeToString(sum[:])
}

// StatementCache is an LRU cache of compiled statements with TTL
// expiry. The zero value is not usable; use New.
type StatementCache struct {
	mu         sync.Mutex
	data       map[string]*node
	maxSize    int
	defaultTTL time.Duration
	head       *node
	tail       *node
	stats      Stats
}

// node is a doubly-linked list entry, most recently used at the head.
type node struct {
	key       string
	value     *sqlgen.Query
	expiresAt time.Time
	prev      *node
	next      *node
}

// New creates a statement cache. A defaultTTL of zero means entries
// never expire.
func New(maxSize int, defaultTTL time.Duration) *StatementCache {
	return &StatementCache{
		data:       make(map[string]*node),
		maxSize:    maxSize,
		defaultTTL: defaultTTL,
		stats:      Stats{MaxSize: maxSize},
	}
}

// Get retrieves a compiled statement.
func (c *StatementCache) Get(key string) (*sqlgen.Query, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.data[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}
	if !n.expiresAt.IsZero() && time.Now().After(n.expiresAt) {
		c.remove(n)
		c.stats.Misses++
		return nil, false
	}

	c.moveToFront(n)
	c.stats.Hits++
	return n.value, true
}

// Set stores a compiled statement under the key.
func (c *StatementCache) Set(key string, q *sqlgen.Query) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.defaultTTL > 0 {
		expiresAt = time.Now().Add(c.defaultTTL)
	}

	if existing, ok := c.data[key]; ok {
		existing.value = q
		existing.expiresAt = expiresAt
		c.moveToFront(existing)
		return
	}

	n := &node{key: key, value: q, expiresAt: expiresAt}
	c.data[key] = n
	c.pushFront(n)

	for len(c.data) > c.maxSize {
		c.remove(c.tail)
		c.stats.Evictions++
	}
}

// GetOrCompute returns the cached statement for key, computing and
// storing it on a miss.
func (c *StatementCache) GetOrCompute(key string, compute func() (*sqlgen.Query, error)) (*sqlgen.Query, error) {
	if q, ok := c.Get(key); ok {
		return q, nil
	}
	q, err := compute()
	if err != nil {
		return nil, err
	}
	c.Set(key, q)
	return q, nil
}

// Invalidate removes a key.
func (c *StatementCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.data[key]; ok {
		c.remove(n)
	}
}

// Clear removes every entry.
func (c *StatementCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]*node)
	c.head = nil
	c.tail = nil
}

// GetStats returns a snapshot of the cache statistics.
func (c *StatementCache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := c.stats
	stats.Size = len(c.data)
	return stats
}

func (c *StatementCache) pushFront(n *node) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *StatementCache) moveToFront(n *node) {
	if c.head == n {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *StatementCache) remove(n *node) {
	if n == nil {
		return
	}
	c.unlink(n)
	delete(c.data, n.key)
}

func (c *StatementCache) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
}
