// Package cache implements a fixed-capacity in-process LRU cache.
//
// The engine pairs a key index (map) with an intrusive recency list:
// the map gives O(1) lookup, the list keeps entries ordered from most
// to least recently used so the eviction candidate is always the tail.
// A single mutex guards both structures as one unit, making every
// operation safe for concurrent callers.
package cache
