package protein

import (
	"fmt"

	"protein_lab_go/seqrand"
)

// Candidate is one row of a screening panel. Lab is only meaningful when
// HasLab is set; a fresh panel has predictions but no measurements.
type Candidate struct {
	ID       string
	Sequence string
	Fold     float64
	Activity float64
	Lab      float64
	HasLab   bool
}

// GeneratePanel builds and scores count candidates of the given length. A
// single RNG seeded from seed is threaded through all sequences in order,
// so the whole panel is reproducible from (prompt, count, length, seed).
// IDs are assigned sequentially starting at cand_1.
func GeneratePanel(prompt string, count, length int, seed uint32) []Candidate {
	if count <= 0 {
		return nil
	}
	rng := seqrand.New(seed)
	panel := make([]Candidate, count)
	for i := range panel {
		seq := Generate(length, rng)
		panel[i] = Candidate{
			ID:       fmt.Sprintf("cand_%d", i+1),
			Sequence: seq,
			Fold:     FoldScore(seq),
			Activity: ActivityScore(seq, prompt),
		}
	}
	return panel
}

// RunLab fills in a simulated measurement for every candidate, in row
// order, consuming one draw per row from the supplied RNG. The measurement
// is the noisy, clamped version of the predicted activity.
func RunLab(panel []Candidate, rng *seqrand.RNG) {
	for i := range panel {
		panel[i].Lab = LabSimulate(panel[i].Activity, rng)
		panel[i].HasLab = true
	}
}
