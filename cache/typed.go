package cache

// ValueAs reads key from a heterogeneously-typed cache and asserts the
// stored value to T. A key holding a value of any other concrete type
// reads as a miss rather than an error: speculative lookups expect a
// miss, not a crash, when two features collide on one key. The lookup
// still promotes the entry, matching Get.
func ValueAs[T any, K comparable](c *LRU[K, any], key K) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
