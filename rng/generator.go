package rng

import (
	"encoding"
	"encoding/hex"

	"golang.org/x/exp/rand"

	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/internal/seed"
)

// Generator owns a single pseudo-random source and produces fixed-length
// sample sequences. The source is mutable state: a Generator must not be
// shared between concurrent callers.
type Generator struct {
	reg  *Registry
	seed *int64
	src  rand.Source
}

// NewGenerator builds a generator over reg, seeded with s or, when s is
// nil, with system entropy.
func NewGenerator(reg *Registry, s *int64) *Generator {
	g := &Generator{reg: reg}
	g.ResetSeed(s)
	return g
}

// ResetSeed discards the current source and replaces it with a freshly
// seeded one. Two generators reset with the same seed produce identical
// sequences for identical Generate calls.
func (g *Generator) ResetSeed(s *int64) {
	g.seed = s
	if s != nil {
		g.src = rand.NewSource(uint64(*s))
		return
	}
	g.src = rand.NewSource(seed.Entropy())
}

// Generate resolves name through the registry and draws count samples.
// Validation and distribution errors pass through verbatim; any other
// sampling failure is wrapped as a generation error carrying its cause.
func (g *Generator) Generate(name string, count int, params Params) (s Samples, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errdefs.Wrapf(errdefs.KindGeneration, recoveredError(r),
				"failed to generate samples from %s", name)
		}
	}()

	d, err := g.reg.Create(name, params)
	if err != nil {
		return Samples{}, err
	}
	s, err = d.Sample(count, g.src)
	if err != nil {
		if errdefs.IsDomain(err) {
			return Samples{}, err
		}
		return Samples{}, errdefs.Wrapf(errdefs.KindGeneration, err,
			"failed to generate samples from %s", name)
	}
	return s, nil
}

func recoveredError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errdefs.Generationf("%v", r)
}

// State is a diagnostic snapshot of a generator: the configured seed and
// an opaque dump of the source state. It is not restorable.
type State struct {
	Seed   *int64
	Source string
}

// State reports the generator's current seed and source state.
func (g *Generator) State() State {
	st := State{Seed: g.seed}
	if m, ok := g.src.(encoding.BinaryMarshaler); ok {
		if b, err := m.MarshalBinary(); err == nil {
			st.Source = hex.EncodeToString(b)
		}
	}
	return st
}
