package rng

import (
	"sort"
	"strings"

	"github.com/pvoss/grand/errdefs"
)

// Registry maps lower-cased distribution names to kinds. It is built once
// at startup; the value set is the closed Kind enum, so registration can
// alias or rename but never extend the supported distributions.
type Registry struct {
	kinds map[string]Kind
}

// NewRegistry returns a registry with the five built-in distributions
// registered under their canonical names.
func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]Kind, len(builtinKinds))}
	for _, k := range builtinKinds {
		r.Register(k.String(), k)
	}
	return r
}

// Register stores k under the lower-cased name, overwriting any prior
// entry for that name.
func (r *Registry) Register(name string, k Kind) {
	r.kinds[strings.ToLower(name)] = k
}

// Create resolves name case-insensitively and builds a validated
// distribution from params. Unknown names fail with a distribution error
// listing every registered name.
func (r *Registry) Create(name string, params Params) (Dist, error) {
	k, ok := r.kinds[strings.ToLower(name)]
	if !ok {
		return Dist{}, errdefs.Distributionf(
			"unknown distribution: %q, available distributions: %s",
			name, strings.Join(r.List(), ", "))
	}
	return newDist(k, params)
}

// List returns the registered names sorted lexicographically.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered is a case-insensitive membership test.
func (r *Registry) IsRegistered(name string) bool {
	_, ok := r.kinds[strings.ToLower(name)]
	return ok
}
