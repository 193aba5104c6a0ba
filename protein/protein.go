// Package protein holds the toy protein model: random candidate sequences
// over the 20 standard amino acids, a composition breakdown, synthetic fold
// and activity scores, and a simulated lab measurement. Every function is
// pure given its inputs and the RNG state handed to it.
package protein

import (
	"math"
	"strings"

	"protein_lab_go/seqrand"
)

// Alphabet is the fixed ordered set of one-letter amino acid codes.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// Residue class membership. The classes are disjoint; any character outside
// the alphabet counts as "other". Nine of twenty residues are hydrophobic,
// so an unbiased random sequence sits near the 0.45 fold target.
var (
	hydrophobic = map[byte]bool{'A': true, 'C': true, 'F': true, 'I': true, 'L': true, 'M': true, 'V': true, 'W': true, 'Y': true}
	basic       = map[byte]bool{'H': true, 'K': true, 'R': true}
	acidic      = map[byte]bool{'D': true, 'E': true}
)

// Scoring constants.
const (
	hydroTarget   = 0.45
	hydroPenalty  = 400.0
	chargePenalty = 10.0
	hydroWeight   = 0.6
	chargeWeight  = 0.4
	foldWeight    = 0.7
	promptWeight  = 20.0
	motifBonus    = 5.0
)

// Two-letter motifs worth an activity bonus. A motif type is rewarded once
// if it appears anywhere in the sequence, regardless of how many times.
var bonusMotifs = []string{"CC", "KR", "DE", "FW", "GP"}

// Generate draws one alphabet index per position, left to right, consuming
// exactly one RNG draw per symbol. A zero or negative length yields the
// empty sequence.
func Generate(length int, rng *seqrand.RNG) string {
	if length <= 0 {
		return ""
	}
	seq := make([]byte, length)
	for i := 0; i < length; i++ {
		seq[i] = Alphabet[rng.IntN(len(Alphabet))]
	}
	return string(seq)
}

// Composition is the per-class breakdown of a sequence. Fractions use
// max(1, length) as the denominator so the empty sequence is all zeros.
type Composition struct {
	Hydrophobic int
	Basic       int
	Acidic      int
	Other       int

	HydroFrac  float64
	BasicFrac  float64
	AcidicFrac float64
	OtherFrac  float64
}

// Compose partitions the sequence into the four residue classes.
func Compose(seq string) Composition {
	var c Composition
	for i := 0; i < len(seq); i++ {
		switch ch := seq[i]; {
		case hydrophobic[ch]:
			c.Hydrophobic++
		case basic[ch]:
			c.Basic++
		case acidic[ch]:
			c.Acidic++
		default:
			c.Other++
		}
	}
	n := float64(len(seq))
	if n < 1 {
		n = 1
	}
	c.HydroFrac = float64(c.Hydrophobic) / n
	c.BasicFrac = float64(c.Basic) / n
	c.AcidicFrac = float64(c.Acidic) / n
	c.OtherFrac = float64(c.Other) / n
	return c
}

// FoldScore estimates structural plausibility from composition alone and
// always lands in [0,100]. It blends how close the hydrophobic fraction is
// to the target with how balanced the net charge is.
func FoldScore(seq string) float64 {
	comp := Compose(seq)

	hydroDev := math.Abs(comp.HydroFrac-hydroTarget) * hydroPenalty
	hydroTerm := 100.0 - math.Min(100.0, hydroDev)

	charge := float64(comp.Basic - comp.Acidic)
	chargeTerm := 100.0 - math.Min(100.0, math.Abs(charge)*chargePenalty)

	return clamp(hydroWeight*hydroTerm+chargeWeight*chargeTerm, 0, 100)
}

// ActivityScore blends the fold score, a prompt-derived bias, and motif
// bonuses. It is deterministic in (seq, prompt) and deliberately unbounded.
func ActivityScore(seq, prompt string) float64 {
	score := foldWeight*FoldScore(seq) + promptWeight*seqrand.PromptHash(prompt)
	for _, m := range bonusMotifs {
		if strings.Contains(seq, m) {
			score += motifBonus
		}
	}
	return score
}

// LabSimulate adds bounded uniform noise in [-10,10] to a predicted value
// and clamps the reading to the instrument range [0,160]. Exactly one RNG
// draw is consumed per call. NaN and infinite readings are coerced to 0
// before clamping, so the result is always a valid measurement.
func LabSimulate(value float64, rng *seqrand.RNG) float64 {
	noise := (rng.Next() - 0.5) * 20.0
	measured := value + noise
	if math.IsNaN(measured) || math.IsInf(measured, 0) {
		measured = 0
	}
	return clamp(measured, 0, 160)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
