package self_check

import (
	"flag"
	"fmt"
	"os"

	"protein_lab_go/backbone"
	"protein_lab_go/protein"
	"protein_lab_go/seqrand"
)

// A check reports one deterministic invariant of the toolkit. The checks
// mirror what the classroom demo promises: same seed, same results.
type check struct {
	name string
	ok   func() bool
}

func checks() []check {
	return []check{
		{"rng twin seeds agree on first draw", func() bool {
			return seqrand.New(123).Next() == seqrand.New(123).Next()
		}},
		{"rng twin seeds agree on first 100 draws", func() bool {
			a, b := seqrand.New(42), seqrand.New(42)
			for i := 0; i < 100; i++ {
				if a.Next() != b.Next() {
					return false
				}
			}
			return true
		}},
		{"rng draws stay in [0,1)", func() bool {
			r := seqrand.New(7)
			for i := 0; i < 1000; i++ {
				if d := r.Next(); d < 0 || d >= 1 {
					return false
				}
			}
			return true
		}},
		{"generated sequence has requested length", func() bool {
			return len(protein.Generate(10, seqrand.New(1))) == 10
		}},
		{"generated symbols come from the alphabet", func() bool {
			seq := protein.Generate(200, seqrand.New(2))
			for i := 0; i < len(seq); i++ {
				found := false
				for j := 0; j < len(protein.Alphabet); j++ {
					if seq[i] == protein.Alphabet[j] {
						found = true
						break
					}
				}
				if !found {
					return false
				}
			}
			return true
		}},
		{"fold score bounded on empty sequence", func() bool {
			s := protein.FoldScore("")
			return s >= 0 && s <= 100
		}},
		{"fold score bounded on full alphabet", func() bool {
			s := protein.FoldScore(protein.Alphabet)
			return s >= 0 && s <= 100
		}},
		{"lab simulation clamps 1000 to 160", func() bool {
			return protein.LabSimulate(1000, seqrand.New(1)) == 160
		}},
		{"backbone of empty sequence is empty", func() bool {
			return len(backbone.Build("", 99)) == 0
		}},
		{"backbone has one point per residue", func() bool {
			return len(backbone.Build("ACDEFGHIK", 7)) == 9
		}},
		{"activity score is pure", func() bool {
			a := protein.ActivityScore(protein.Alphabet, "test prompt")
			b := protein.ActivityScore(protein.Alphabet, "test prompt")
			return a == b
		}},
	}
}

func Run(args []string) {

	fs := flag.NewFlagSet("self_check", flag.ExitOnError)
	quiet := fs.Bool("quiet", false, "Only print failures and the summary line")

	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	failed := 0
	all := checks()
	for _, c := range all {
		if c.ok() {
			if !*quiet {
				fmt.Printf("PASS  %s\n", c.name)
			}
		} else {
			failed++
			fmt.Printf("FAIL  %s\n", c.name)
		}
	}

	fmt.Printf("self_check: %d/%d checks passed\n", len(all)-failed, len(all))
	if failed > 0 {
		os.Exit(1)
	}
}
