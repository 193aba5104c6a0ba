package panel_report

import (
	"gonum.org/v1/gonum/stat"

	"protein_lab_go/protein"
)

// PanelStats summarizes a screened candidate panel for the report.
type PanelStats struct {
	Count          int
	Prompt         string
	SeqLength      int
	MeanFold       float64
	FoldStdDev     float64
	MinFold        float64
	MaxFold        float64
	MeanActivity   float64
	ActivityStdDev float64
	MeanHydroFrac  float64
	MeanLab        float64
	HasLab         bool
	TopCandidate   string
	TopActivity    float64
}

// FoldScores extracts the fold column for plotting.
func FoldScores(panel []protein.Candidate) []float64 {
	out := make([]float64, len(panel))
	for i, c := range panel {
		out[i] = c.Fold
	}
	return out
}

// ActivityScores extracts the activity column for plotting.
func ActivityScores(panel []protein.Candidate) []float64 {
	out := make([]float64, len(panel))
	for i, c := range panel {
		out[i] = c.Activity
	}
	return out
}

// ComputeStats reduces a panel to the summary shown at the top of the
// report. An empty panel yields the zero value.
func ComputeStats(prompt string, panel []protein.Candidate) PanelStats {
	if len(panel) == 0 {
		return PanelStats{Prompt: prompt}
	}

	folds := FoldScores(panel)
	activities := ActivityScores(panel)

	s := PanelStats{
		Count:          len(panel),
		Prompt:         prompt,
		SeqLength:      len(panel[0].Sequence),
		MeanFold:       stat.Mean(folds, nil),
		FoldStdDev:     stat.StdDev(folds, nil),
		MinFold:        folds[0],
		MaxFold:        folds[0],
		MeanActivity:   stat.Mean(activities, nil),
		ActivityStdDev: stat.StdDev(activities, nil),
		TopCandidate:   panel[0].ID,
		TopActivity:    panel[0].Activity,
	}

	var hydroSum, labSum float64
	labCount := 0
	for _, c := range panel {
		if c.Fold < s.MinFold {
			s.MinFold = c.Fold
		}
		if c.Fold > s.MaxFold {
			s.MaxFold = c.Fold
		}
		if c.Activity > s.TopActivity {
			s.TopActivity = c.Activity
			s.TopCandidate = c.ID
		}
		hydroSum += protein.Compose(c.Sequence).HydroFrac
		if c.HasLab {
			labSum += c.Lab
			labCount++
		}
	}
	s.MeanHydroFrac = hydroSum / float64(len(panel))
	if labCount > 0 {
		s.HasLab = true
		s.MeanLab = labSum / float64(labCount)
	}
	return s
}
