package cache

// Stats counts cache outcomes: Hits and Misses from Get, Evictions from
// capacity enforcement. Counters are maintained under the engine lock
// and Stats() returns a consistent snapshot. Peek and Contains do not
// touch the counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}
