package cache

import (
	"sync"
)

// Cache is the read/write surface of an LRU engine.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
	Peek(key K) (V, bool)
	Contains(key K) bool
	Remove(key K) bool
	Keys() []K
	Len() int
	Cap() int
	Purge()
	Stats() Stats
}

// entry is the payload stored in recency list nodes. The key travels
// with the value because eviction starts from the list tail and has to
// find its way back to the index.
type entry[K comparable, V any] struct {
	key   K
	value V
}

type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictionHook registers a callback invoked for every entry removed
// by capacity eviction. The hook runs while the engine lock is held, so
// it must not call back into the cache.
func WithEvictionHook[K comparable, V any](hook func(K, V)) Option[K, V] {
	return func(c *LRU[K, V]) {
		c.onEvict = hook
	}
}

// LRU is a fixed-capacity key-value cache that evicts the least
// recently used entry once it holds more than capacity entries.
//
// The index map and the recency list are kept in lockstep: every index
// entry points at a node currently linked in the list, and removal from
// one always removes from the other inside the same locked section. A
// single mutex guards both; the lock is not reentrant, so eviction
// hooks and concurrent callers must never reenter the same instance
// from inside an operation.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	index    map[K]*node[entry[K, V]]
	list     recencyList[entry[K, V]]
	stats    Stats
	onEvict  func(K, V)
}

var _ Cache[string, any] = (*LRU[string, any])(nil)

// New creates an LRU holding at most capacity entries. A negative
// capacity is clamped to zero, which degenerates the cache to evicting
// every entry immediately after insert.
func New[K comparable, V any](capacity int, options ...Option[K, V]) *LRU[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	c := &LRU[K, V]{
		capacity: capacity,
		index:    make(map[K]*node[entry[K, V]], capacity),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Get returns the value stored under key and promotes the entry to most
// recently used. A miss is a normal outcome, reported as (zero, false),
// never as an error.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.index[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}

	c.list.moveToFront(n)
	c.stats.Hits++
	return n.payload.value, true
}

// Put stores value under key. An existing entry is overwritten in place
// and promoted to most recently used; a new entry is inserted at the
// front and, if the cache now exceeds capacity, the least recently used
// entry is evicted in the same locked section. A nil value is stored
// like any other value.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.index[key]; ok {
		n.payload.value = value
		c.list.moveToFront(n)
		return
	}

	c.index[key] = c.list.pushFront(entry[K, V]{key: key, value: value})

	// Each insert grows the list by exactly one, so a single eviction
	// restores the bound. The loop also covers capacity zero, where the
	// entry just inserted is itself the tail.
	for c.list.len() > c.capacity {
		c.evictTail()
	}
}

// Peek returns the value stored under key without touching recency
// order. Peeks are not counted in Stats.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return n.payload.value, true
}

// Contains reports whether key is resident, without promoting it.
func (c *LRU[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.index[key]
	return ok
}

// Remove drops key from the cache, reporting whether it was resident.
// Explicit removal does not fire the eviction hook.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.index[key]
	if !ok {
		return false
	}

	c.list.remove(n)
	delete(c.index, key)
	return true
}

// Keys returns resident keys ordered from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.list.len())
	for n := c.list.head; n != nil; n = n.next {
		keys = append(keys, n.payload.key)
	}
	return keys
}

// Len returns the number of resident entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.len()
}

// Cap returns the capacity the cache was constructed with.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}

// Purge drops every entry. The eviction hook is not fired; like Remove,
// purging is an explicit caller action, not a capacity eviction.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.index)
	c.list = recencyList[entry[K, V]]{}
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// evictTail removes the least recently used entry and its index entry
// as one step. Caller must hold c.mu.
func (c *LRU[K, V]) evictTail() {
	n := c.list.removeTail()
	if n == nil {
		return
	}
	delete(c.index, n.payload.key)
	c.stats.Evictions++
	if c.onEvict != nil {
		c.onEvict(n.payload.key, n.payload.value)
	}
}
