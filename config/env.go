package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/rng"
)

type envOverrides struct {
	Count        *int    `env:"GRAND_COUNT"`
	Seed         *int64  `env:"GRAND_SEED"`
	Distribution *string `env:"GRAND_DISTRIBUTION"`
	Format       *string `env:"GRAND_FORMAT"`
	FilePath     *string `env:"GRAND_OUTPUT"`
	Verbose      *bool   `env:"GRAND_VERBOSE"`
}

// FromEnv reads GRAND_* environment variables into an Overrides value.
// Variables that are not set leave the corresponding field nil.
func FromEnv() (Overrides, error) {
	var e envOverrides
	if err := env.Parse(&e); err != nil {
		return Overrides{}, errdefs.Wrapf(errdefs.KindConfiguration, err, "invalid environment overrides")
	}
	return Overrides{
		Count:        e.Count,
		Seed:         e.Seed,
		Distribution: e.Distribution,
		Parameters:   rng.Params{},
		Format:       e.Format,
		FilePath:     e.FilePath,
		Verbose:      e.Verbose,
	}, nil
}
