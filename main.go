package main

import (
	"os"

	"memocache/cache"
	"memocache/config"
	"memocache/logging"
	"memocache/registry"
)

func main() {
	logger := logging.CreateDebugLogger()

	cfg := config.Default()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			logger.Error().Err(err).Msg("failed to load config")
			return
		}
		cfg = loaded
	}

	reg := registry.New(*logger)
	reg.Configure(cfg)

	responses := reg.Get("responses", 2)
	responses.Put("a", 1)
	responses.Put("b", 2)

	if value, ok := cache.ValueAs[int](responses, "a"); ok {
		logger.Info().Str("key", "a").Int("value", value).Msg("cache hit")
	}

	// "b" is now the least recently used entry, one more insert drops it
	responses.Put("c", 3)

	if _, ok := responses.Get("b"); !ok {
		logger.Info().Str("key", "b").Msg("cache miss")
	}

	stats := responses.Stats()
	logger.Info().
		Uint64("hits", stats.Hits).
		Uint64("misses", stats.Misses).
		Uint64("evictions", stats.Evictions).
		Msg("cache stats")
}
