// Package seqrand provides the deterministic random source used by every
// generator and simulator in Protein Lab. A given seed always reproduces the
// exact same stream of draws, which is what makes candidate panels, lab
// simulations, and backbone traces repeatable across runs and machines.
package seqrand

// RNG is a 32-bit counter-based generator. Each call to Next advances the
// state by a fixed increment and runs two avalanche rounds, so the output
// depends only on the seed and the number of draws taken so far.
type RNG struct {
	state uint32
}

// New returns a generator seeded with the given 32-bit value. Two generators
// built from the same seed produce identical draw streams.
func New(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Next returns the next draw in [0,1) and advances the internal state.
func (r *RNG) Next() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / 4294967296.0
}

// IntN returns a draw in [0,n) by scaling Next. n must be positive.
func (r *RNG) IntN(n int) int {
	return int(r.Next() * float64(n))
}

// FNV-1a parameters, 32-bit variant.
const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
)

// PromptHash maps free text to a deterministic value in [0,1) using a 32-bit
// FNV-1a hash. It is order- and case-sensitive: "heat stable" and "Heat
// stable" bias scores differently. This is a mixing function, not a
// cryptographic hash.
func PromptHash(s string) float64 {
	h := fnvOffset
	for _, c := range s {
		h ^= uint32(c)
		h *= fnvPrime
	}
	return float64(h) / 4294967295.0
}
