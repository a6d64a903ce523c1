package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config declares the named caches an application wants constructed.
//
//	[caches.responses]
//	capacity = 512
type Config struct {
	Caches map[string]CacheConfig `toml:"caches"`
}

type CacheConfig struct {
	Capacity int `toml:"capacity"`
}

// Default returns an empty, valid configuration.
func Default() Config {
	return Config{Caches: map[string]CacheConfig{}}
}

// Load reads a TOML configuration file. Unknown keys are rejected so a
// typoed capacity does not silently configure nothing. Capacities are
// passed through as written; the engine clamps negatives at
// construction.
func Load(path string) (Config, error) {
	config := Default()
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown configuration key %q in %s", undecoded[0].String(), path)
	}
	return config, nil
}
