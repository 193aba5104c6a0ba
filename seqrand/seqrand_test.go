package seqrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameStream(t *testing.T) {
	seeds := []uint32{0, 1, 7, 123, 4294967295}
	for _, seed := range seeds {
		a := New(seed)
		b := New(seed)
		for i := 0; i < 1000; i++ {
			require.Equal(t, a.Next(), b.Next(), "seed %d diverged at draw %d", seed, i)
		}
	}
}

func TestFirstDrawBitIdentical(t *testing.T) {
	// The concrete repeatability check the classroom demo relies on.
	first := New(123).Next()
	second := New(123).Next()
	assert.Equal(t, first, second)
}

func TestDrawRange(t *testing.T) {
	r := New(42)
	for i := 0; i < 10000; i++ {
		d := r.Next()
		require.GreaterOrEqual(t, d, 0.0)
		require.Less(t, d, 1.0)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	assert.False(t, same, "seeds 1 and 2 produced identical first 10 draws")
}

func TestIntN(t *testing.T) {
	r := New(9)
	for i := 0; i < 5000; i++ {
		v := r.IntN(20)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 20)
	}
}

func TestPromptHash(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"deterministic", "thermostable enzyme", "thermostable enzyme", true},
		{"case sensitive", "Heat stable", "heat stable", false},
		{"order sensitive", "ab", "ba", false},
		{"empty vs space", "", " ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, PromptHash(tt.a), PromptHash(tt.b))
			} else {
				assert.NotEqual(t, PromptHash(tt.a), PromptHash(tt.b))
			}
		})
	}
}

func TestPromptHashRange(t *testing.T) {
	prompts := []string{"", "a", "binds copper", "大腸菌", "x y z 123 !@#"}
	for _, p := range prompts {
		h := PromptHash(p)
		require.GreaterOrEqual(t, h, 0.0)
		require.Less(t, h, 1.0, "prompt %q", p)
	}
}
