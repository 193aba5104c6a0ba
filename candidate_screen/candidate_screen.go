package candidate_screen

import (
	"flag"
	"fmt"
	"os"

	"protein_lab_go/config"
	"protein_lab_go/protein"
	"protein_lab_go/seqrand"
)

func Run(args []string) {

	fs := flag.NewFlagSet("candidate_screen", flag.ExitOnError) 	// Isolated flag set specifically for "candidate_screen" subcommand

	prompt := fs.String("prompt", "", "Free-text design prompt")
	count := fs.Int("count", 5, "Number of candidates to screen")
	length := fs.Int("length", 30, "Candidate sequence length")
	seed := fs.Uint("seed", 1, "Seed for the deterministic RNG (32-bit)")
	lab := fs.Bool("lab", false, "Run the simulated lab pass after screening")
	preset := fs.String("preset", "", "YAML preset file with prompt/count/length/seed/lab")
	csvOut := fs.Bool("csv_out", false, "Output the screened panel in csv form")
	outFile := fs.String("out_file", "candidate_panel", "Prefix for CSV output")

	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)				// Check for outright input failures
		os.Exit(1)												// e.g., expected int by recieved str
	}

	if len(fs.Args()) > 0 {										// If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())	// Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	p := config.DefaultPreset()
	if *preset != "" {
		p, err = config.LoadPreset(*preset)
		if err != nil {
			fmt.Println("Failed to load preset:", err)
			os.Exit(1)
		}
	}

	// Flags given explicitly on the command line win over the preset.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			p.Prompt = *prompt
		case "count":
			p.Count = *count
		case "length":
			p.Length = *length
		case "seed":
			p.Seed = uint32(*seed)
		case "lab":
			p.Lab = *lab
		}
	})

	if p.Count < 1 {
		fmt.Println("Error: count must be at least 1")
		os.Exit(1)
	}

	panel := protein.GeneratePanel(p.Prompt, p.Count, p.Length, p.Seed)
	if p.Lab {
		// The lab pass uses its own RNG seeded the same way, so re-running
		// the lab on the same panel setup repeats the measurements.
		protein.RunLab(panel, seqrand.New(p.Seed))
	}

	if *csvOut {
		if err := WriteCSVPanel(*outFile, p.Prompt, panel); err != nil {
			fmt.Println("Failed to write CSV:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote panel to %s.csv\n", *outFile)
		return
	}

	PrintPanel(os.Stdout, p.Prompt, panel)
}
