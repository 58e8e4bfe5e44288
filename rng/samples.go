package rng

// Samples is one ordered sample sequence. Integer is set for
// integer-valued distributions (binomial, poisson) so formatters can
// render and pack the values exactly.
type Samples struct {
	Values  []float64
	Integer bool
}

func (s Samples) Len() int { return len(s.Values) }
