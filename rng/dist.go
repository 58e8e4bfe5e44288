// Package rng maps distribution names and parameter sets to validated,
// reproducible sample sequences.
package rng

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/internal/validate"
)

// Params carries distribution parameters by name. Values arrive from JSON
// numbers, CLI flags, or interactive input, so numerics may be float64,
// int, or int64.
type Params map[string]interface{}

type Kind uint8

const (
	Uniform Kind = iota + 1
	Normal
	Exponential
	Binomial
	Poisson
)

func (k Kind) String() string {
	switch k {
	case Uniform:
		return "uniform"
	case Normal:
		return "normal"
	case Exponential:
		return "exponential"
	case Binomial:
		return "binomial"
	case Poisson:
		return "poisson"
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// ParseKind resolves a built-in distribution name. Lookup is
// case-insensitive through Registry; this only knows canonical names.
func ParseKind(name string) (Kind, bool) {
	for _, k := range builtinKinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

var builtinKinds = []Kind{Uniform, Normal, Exponential, Binomial, Poisson}

// Dist is a validated distribution: one kind plus the parameters that kind
// understands. The zero value is invalid; construct through a Registry.
type Dist struct {
	kind Kind

	low, high float64 // uniform
	mu, sigma float64 // normal
	lambda    float64 // exponential, poisson
	trials    int64   // binomial
	p         float64 // binomial
}

func (d Dist) Kind() Kind { return d.kind }

func (d Dist) String() string {
	switch d.kind {
	case Uniform:
		return fmt.Sprintf("uniform(low=%v, high=%v)", d.low, d.high)
	case Normal:
		return fmt.Sprintf("normal(mu=%v, sigma=%v)", d.mu, d.sigma)
	case Exponential:
		return fmt.Sprintf("exponential(lambda=%v)", d.lambda)
	case Binomial:
		return fmt.Sprintf("binomial(trials=%d, p=%v)", d.trials, d.p)
	case Poisson:
		return fmt.Sprintf("poisson(lambda=%v)", d.lambda)
	}
	return "invalid"
}

// newDist validates params for k and builds the distribution. Unknown or
// badly typed keys fail as distribution errors naming k; violated bounds
// fail as validation errors naming the bound and value.
func newDist(k Kind, params Params) (Dist, error) {
	switch k {
	case Uniform:
		return newUniform(params)
	case Normal:
		return newNormal(params)
	case Exponential:
		return newExponential(params)
	case Binomial:
		return newBinomial(params)
	case Poisson:
		return newPoisson(params)
	}
	panic("rng: unknown distribution kind")
}

func newUniform(params Params) (Dist, error) {
	if err := checkKeys(Uniform, params, "low", "high"); err != nil {
		return Dist{}, err
	}
	low, err := floatParam(Uniform, params, "low", 0.0)
	if err != nil {
		return Dist{}, err
	}
	high, err := floatParam(Uniform, params, "high", 1.0)
	if err != nil {
		return Dist{}, err
	}
	if err := validate.Range(low, high, "uniform distribution range"); err != nil {
		return Dist{}, err
	}
	return Dist{kind: Uniform, low: low, high: high}, nil
}

func newNormal(params Params) (Dist, error) {
	if err := checkKeys(Normal, params, "mu", "sigma"); err != nil {
		return Dist{}, err
	}
	mu, err := floatParam(Normal, params, "mu", 0.0)
	if err != nil {
		return Dist{}, err
	}
	sigma, err := floatParam(Normal, params, "sigma", 1.0)
	if err != nil {
		return Dist{}, err
	}
	if err := validate.Positive(sigma, "sigma (standard deviation)"); err != nil {
		return Dist{}, err
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return Dist{}, errdefs.Validationf("mu (mean) must be finite, got %v", mu)
	}
	return Dist{kind: Normal, mu: mu, sigma: sigma}, nil
}

func newExponential(params Params) (Dist, error) {
	if err := checkKeys(Exponential, params, "lambda"); err != nil {
		return Dist{}, err
	}
	lambda, err := floatParam(Exponential, params, "lambda", 1.0)
	if err != nil {
		return Dist{}, err
	}
	if err := validate.Positive(lambda, "lambda (rate parameter)"); err != nil {
		return Dist{}, err
	}
	return Dist{kind: Exponential, lambda: lambda}, nil
}

func newBinomial(params Params) (Dist, error) {
	if err := checkKeys(Binomial, params, "trials", "p"); err != nil {
		return Dist{}, err
	}
	trials, err := intParam(Binomial, params, "trials", 10)
	if err != nil {
		return Dist{}, err
	}
	p, err := floatParam(Binomial, params, "p", 0.5)
	if err != nil {
		return Dist{}, err
	}
	if err := validate.PositiveInt(trials, "trials"); err != nil {
		return Dist{}, err
	}
	if err := validate.Probability(p, "p (success probability)"); err != nil {
		return Dist{}, err
	}
	return Dist{kind: Binomial, trials: trials, p: p}, nil
}

func newPoisson(params Params) (Dist, error) {
	if err := checkKeys(Poisson, params, "lambda"); err != nil {
		return Dist{}, err
	}
	lambda, err := floatParam(Poisson, params, "lambda", 1.0)
	if err != nil {
		return Dist{}, err
	}
	if err := validate.Positive(lambda, "lambda (rate parameter)"); err != nil {
		return Dist{}, err
	}
	return Dist{kind: Poisson, lambda: lambda}, nil
}

// Sample draws n values from d using src. The source advances with every
// draw; identical source state and arguments yield identical sequences.
func (d Dist) Sample(n int, src rand.Source) (Samples, error) {
	if err := validate.Count(n); err != nil {
		return Samples{}, err
	}
	vals := make([]float64, n)
	switch d.kind {
	case Uniform:
		u := distuv.Uniform{Min: d.low, Max: d.high, Src: src}
		for i := range vals {
			vals[i] = u.Rand()
		}
		return Samples{Values: vals}, nil
	case Normal:
		norm := distuv.Normal{Mu: d.mu, Sigma: d.sigma, Src: src}
		for i := range vals {
			vals[i] = norm.Rand()
		}
		return Samples{Values: vals}, nil
	case Exponential:
		exp := distuv.Exponential{Rate: d.lambda, Src: src}
		for i := range vals {
			vals[i] = exp.Rand()
		}
		return Samples{Values: vals}, nil
	case Binomial:
		bin := distuv.Binomial{N: float64(d.trials), P: d.p, Src: src}
		for i := range vals {
			vals[i] = bin.Rand()
		}
		return Samples{Values: vals, Integer: true}, nil
	case Poisson:
		pois := distuv.Poisson{Lambda: d.lambda, Src: src}
		for i := range vals {
			vals[i] = pois.Rand()
		}
		return Samples{Values: vals, Integer: true}, nil
	}
	panic("rng: unknown distribution kind")
}

func checkKeys(k Kind, params Params, allowed ...string) error {
	for key := range params {
		found := false
		for _, a := range allowed {
			if key == a {
				found = true
				break
			}
		}
		if !found {
			return errdefs.Distributionf(
				"invalid parameters for distribution %q: unknown parameter %q", k, key)
		}
	}
	return nil
}

func floatParam(k Kind, params Params, key string, def float64) (float64, error) {
	raw, ok := params[key]
	if !ok {
		return def, nil
	}
	v, ok := asFloat(raw)
	if !ok {
		return 0, errdefs.Distributionf(
			"invalid parameters for distribution %q: parameter %q must be numeric, got %T", k, key, raw)
	}
	return v, nil
}

func intParam(k Kind, params Params, key string, def int64) (int64, error) {
	raw, ok := params[key]
	if !ok {
		return def, nil
	}
	v, ok := asFloat(raw)
	if !ok {
		return 0, errdefs.Distributionf(
			"invalid parameters for distribution %q: parameter %q must be numeric, got %T", k, key, raw)
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, errdefs.Validationf("%s must be an integer, got %v", key, v)
	}
	return int64(v), nil
}

func asFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
