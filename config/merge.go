package config

import "github.com/pvoss/grand/rng"

// Overrides carries optional field replacements from the CLI, the
// environment, or an interactive edit. Nil fields leave the base value
// untouched.
type Overrides struct {
	Count        *int
	Seed         *int64
	Distribution *string
	Parameters   rng.Params
	Format       *string
	FilePath     *string
	Verbose      *bool
}

// Merge applies o on top of base and returns the result without mutating
// base. When the override names a different distribution, the merged
// parameter map is reset before override parameters are applied; with the
// name unchanged or unspecified, override parameters update the existing
// map in place.
func Merge(base Config, o Overrides) Config {
	out := base.Clone()

	if o.Count != nil {
		out.Generation.Count = *o.Count
	}
	if o.Seed != nil {
		s := *o.Seed
		out.Generation.Seed = &s
	}
	if o.Distribution != nil {
		if *o.Distribution != out.Distribution.Name {
			out.Distribution.Parameters = rng.Params{}
		}
		out.Distribution.Name = *o.Distribution
	}
	for k, v := range o.Parameters {
		out.Distribution.Parameters[k] = v
	}
	if o.Format != nil {
		out.Output.Format = *o.Format
	}
	if o.FilePath != nil {
		out.Output.FilePath = *o.FilePath
	}
	if o.Verbose != nil {
		out.Verbose = *o.Verbose
	}
	return out
}
