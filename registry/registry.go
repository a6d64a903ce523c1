package registry

import (
	"sync"

	"github.com/phuslu/log"

	"memocache/cache"
	"memocache/config"
)

// Registry hands out one shared cache instance per name. Every caller
// asking for the same name receives the same reference, so all of them
// observe one recency order and one capacity bound; construction
// happens at most once per name under the registry's own lock.
type Registry struct {
	logger log.Logger
	mu     sync.RWMutex
	caches map[string]*cache.LRU[string, any]
}

func New(logger log.Logger) *Registry {
	return &Registry{
		logger: logger,
		caches: make(map[string]*cache.LRU[string, any]),
	}
}

// Get returns the cache registered under name, creating it with the
// given capacity on first use. Later calls ignore capacity: the first
// registration wins.
func (r *Registry) Get(name string, capacity int) *cache.LRU[string, any] {
	r.mu.RLock()
	c, ok := r.caches[name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// another caller may have created it between the two locks
	if c, ok := r.caches[name]; ok {
		return c
	}

	c = cache.New[string, any](capacity, cache.WithEvictionHook(func(key string, _ any) {
		r.logger.Debug().Str("cache", name).Str("key", key).Msg("evicted least recently used entry")
	}))
	r.caches[name] = c
	r.logger.Info().Str("cache", name).Int("capacity", c.Cap()).Msg("cache created")
	return c
}

// Configure pre-creates every cache named in cfg so the first request
// hitting a cache does not pay for construction.
func (r *Registry) Configure(cfg config.Config) {
	for name, cc := range cfg.Caches {
		r.Get(name, cc.Capacity)
	}
}
