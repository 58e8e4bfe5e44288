// Package config holds the grand configuration model: load, save, merge,
// and environment overrides. One Config value flows from here into the
// sampling engine and the output pipeline.
package config

import (
	"strings"

	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/internal/validate"
	"github.com/pvoss/grand/output"
	"github.com/pvoss/grand/rng"
)

// Config is the full configuration as persisted on disk. Unknown JSON
// keys are ignored on read; every key is emitted on write.
type Config struct {
	Generation   Generation   `json:"generation"`
	Distribution Distribution `json:"distribution"`
	Output       Output       `json:"output"`
	Verbose      bool         `json:"verbose"`
}

type Generation struct {
	Count int    `json:"count"`
	Seed  *int64 `json:"seed"`
}

type Distribution struct {
	Name       string     `json:"name"`
	Parameters rng.Params `json:"parameters"`
}

type Output struct {
	Format   string `json:"format"`
	FilePath string `json:"file_path"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	return Config{
		Generation:   Generation{Count: 100},
		Distribution: Distribution{Name: "uniform", Parameters: rng.Params{}},
		Output:       Output{Format: "text"},
	}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	if c.Generation.Seed != nil {
		s := *c.Generation.Seed
		out.Generation.Seed = &s
	}
	out.Distribution.Parameters = make(rng.Params, len(c.Distribution.Parameters))
	for k, v := range c.Distribution.Parameters {
		out.Distribution.Parameters[k] = v
	}
	return out
}

// Validate checks the enum invariants: the distribution name is
// registered and the output format is one of the known formats.
func (c Config) Validate() error {
	if err := validate.Count(c.Generation.Count); err != nil {
		return err
	}
	if _, ok := rng.ParseKind(strings.ToLower(c.Distribution.Name)); !ok {
		return errdefs.Configurationf("unknown distribution %q in configuration", c.Distribution.Name)
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return errdefs.Wrapf(errdefs.KindConfiguration, err, "invalid output format in configuration")
	}
	return nil
}
