// Package backbone traces a toy 3-D path for a candidate sequence: one
// point per residue along a noisy helix. The trace is a teaching prop for
// what a fold "looks like", not a structural prediction.
package backbone

import (
	"math"

	"protein_lab_go/seqrand"
)

// Point is one backbone position in 3-D space.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Helix geometry.
const (
	pitch        = 1.8 // radians per residue
	baseRadius   = 2.0
	rise         = 0.7 // z spacing per residue
	radiusJitter = 0.3
	axisJitter   = 0.2
)

// Build returns one point per residue of seq, or nil for the empty
// sequence. The trace is driven by a fresh generator seeded from seed, so
// it never disturbs a caller's RNG. Per residue the draws happen in a fixed
// order (radius, x, y, z), which is what makes the trace reproducible.
func Build(seq string, seed uint32) []Point {
	if len(seq) == 0 {
		return nil
	}
	rng := seqrand.New(seed)
	points := make([]Point, len(seq))
	for i := 0; i < len(seq); i++ {
		angle := float64(i) * pitch
		radius := baseRadius + (rng.Next()-0.5)*radiusJitter
		points[i] = Point{
			X: math.Cos(angle)*radius + (rng.Next()-0.5)*axisJitter,
			Y: math.Sin(angle)*radius + (rng.Next()-0.5)*axisJitter,
			Z: float64(i)*rise + (rng.Next()-0.5)*axisJitter,
		}
	}
	return points
}
