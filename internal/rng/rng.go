// Package rng provides the seeded linear congruential generator that drives
// dataset generation. The same seed always yields the same sequence, which
// keeps generated fixtures reproducible across runs.
//
// The constants are the classic 9301/49297/233280 LCG. It is nowhere near
// cryptographic quality; never use it for anything security sensitive.
package rng

const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// Source is a deterministic stream of pseudo-random values.
// It is not safe for concurrent use; callers serialize access.
type Source struct {
	state int64
}

// New returns a Source seeded with the given value.
func New(seed int64) *Source {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	return &Source{state: s}
}

// Next advances the stream and returns a value in [0, 1).
func (s *Source) Next() float64 {
	s.state = (s.state*multiplier + increment) % modulus
	return float64(s.state) / float64(modulus)
}

// Intn returns a value in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	return int(s.Next() * float64(n))
}
