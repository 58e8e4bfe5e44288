package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/rng"
)

// Loader finds, reads, and writes the persisted configuration. An empty
// Path searches the default locations: ~/.grand/config.json first, then
// grand_config.json in the working directory.
type Loader struct {
	Path string
}

func defaultPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".grand", "config.json"))
	}
	return append(paths, "grand_config.json")
}

// find returns the first existing config file, or "" when none exists.
// The explicit path is tried first; when it is missing the search falls
// through to the default locations.
func (l Loader) find() string {
	paths := defaultPaths()
	if l.Path != "" {
		paths = append([]string{l.Path}, paths...)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// savePath is where Save writes: the explicit path when set, otherwise
// the first default location.
func (l Loader) savePath() string {
	if l.Path != "" {
		return l.Path
	}
	return defaultPaths()[0]
}

// Load reads the first configuration file found, falling back to defaults
// when there is none. A file that exists but does not parse or violates
// the enum invariants is a configuration error naming the path.
func (l Loader) Load() (Config, error) {
	path := l.find()
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errdefs.Wrapf(errdefs.KindConfiguration, err, "failed to load config from %s", path)
	}
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errdefs.Wrapf(errdefs.KindConfiguration, err, "invalid JSON in config file %s", path)
	}
	if cfg.Distribution.Parameters == nil {
		cfg.Distribution.Parameters = rng.Params{}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errdefs.Wrapf(errdefs.KindConfiguration, err, "invalid config file %s", path)
	}
	return cfg, nil
}

// Save serializes cfg to the resolved path, creating parent directories
// first, and reports where it wrote.
func (l Loader) Save(cfg Config) (string, error) {
	path := l.savePath()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errdefs.Wrapf(errdefs.KindConfiguration, err, "failed to save config to %s", path)
		}
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", errdefs.Wrapf(errdefs.KindConfiguration, err, "failed to save config to %s", path)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errdefs.Wrapf(errdefs.KindConfiguration, err, "failed to save config to %s", path)
	}
	return path, nil
}

// CreateDefault writes a default configuration file unless one already
// exists, and reports the file's path either way.
func (l Loader) CreateDefault() (string, error) {
	if p := l.find(); p != "" {
		return p, nil
	}
	return l.Save(Default())
}
