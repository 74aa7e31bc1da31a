package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// config holds interpreter settings that may be loaded from a TOML file, and
// then overridden by command line flags.
type config struct {
	Unbounded bool   `toml:"unbounded"`
	Trace     bool   `toml:"trace"`
	Timeout   string `toml:"timeout"`
	Snapshot  string `toml:"snapshot"`
}

func loadConfig(path string) (cfg config, err error) {
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %v: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config keys in %v: %v", path, undecoded)
	}
	return cfg, nil
}

func (cfg config) timeout() (time.Duration, error) {
	if cfg.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
	}
	return d, nil
}
