package protein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protein_lab_go/seqrand"
)

func TestGeneratePanel(t *testing.T) {
	panel := GeneratePanel("soluble kinase", 8, 25, 1)
	require.Len(t, panel, 8)
	for i, c := range panel {
		assert.Equalf(t, len(c.Sequence), 25, "row %d", i)
		assert.False(t, c.HasLab)
		assert.GreaterOrEqual(t, c.Fold, 0.0)
		assert.LessOrEqual(t, c.Fold, 100.0)
	}
	assert.Equal(t, "cand_1", panel[0].ID)
	assert.Equal(t, "cand_8", panel[7].ID)
}

func TestGeneratePanelEmpty(t *testing.T) {
	assert.Nil(t, GeneratePanel("x", 0, 10, 1))
	assert.Nil(t, GeneratePanel("x", -3, 10, 1))
}

func TestGeneratePanelReproducible(t *testing.T) {
	a := GeneratePanel("heat tolerant", 5, 30, 99)
	b := GeneratePanel("heat tolerant", 5, 30, 99)
	assert.Equal(t, a, b)
}

func TestGeneratePanelRowsDiffer(t *testing.T) {
	// One RNG threads through the panel, so rows are distinct draws.
	panel := GeneratePanel("x", 3, 40, 7)
	assert.NotEqual(t, panel[0].Sequence, panel[1].Sequence)
	assert.NotEqual(t, panel[1].Sequence, panel[2].Sequence)
}

func TestRunLab(t *testing.T) {
	panel := GeneratePanel("x", 4, 20, 3)
	RunLab(panel, seqrand.New(3))
	for _, c := range panel {
		require.True(t, c.HasLab)
		require.GreaterOrEqual(t, c.Lab, 0.0)
		require.LessOrEqual(t, c.Lab, 160.0)
	}
}

func TestRunLabReproducible(t *testing.T) {
	a := GeneratePanel("x", 4, 20, 3)
	b := GeneratePanel("x", 4, 20, 3)
	RunLab(a, seqrand.New(11))
	RunLab(b, seqrand.New(11))
	assert.Equal(t, a, b)
}
