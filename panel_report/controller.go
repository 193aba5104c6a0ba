package panel_report

import (
	"flag"
	"fmt"
	"os"

	"protein_lab_go/config"
	"protein_lab_go/protein"
	"protein_lab_go/seqrand"
)

func Run(args []string) {

	fs := flag.NewFlagSet("panel_report", flag.ExitOnError) 	// Isolated flag set specifically for "panel_report" subcommand

	prompt := fs.String("prompt", "", "Free-text design prompt")
	count := fs.Int("count", 50, "Number of candidates in the panel")
	length := fs.Int("length", 30, "Candidate sequence length")
	seed := fs.Uint("seed", 1, "Seed for the deterministic RNG (32-bit)")
	lab := fs.Bool("lab", false, "Include a simulated lab pass in the report")
	preset := fs.String("preset", "", "YAML preset file with prompt/count/length/seed/lab")
	outFile := fs.String("out_file", "panel_report", "Prefix for HTML report")

	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)				// Check for outright input failures
		os.Exit(1)
	}

	if len(fs.Args()) > 0 {										// If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())	// Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	p := config.DefaultPreset()
	p.Count = 50 // report default favors a fuller distribution
	if *preset != "" {
		p, err = config.LoadPreset(*preset)
		if err != nil {
			fmt.Println("Failed to load preset:", err)
			os.Exit(1)
		}
	}
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

	if p.Count < 2 {
		fmt.Println("Error: a report needs at least 2 candidates")
		os.Exit(1)
	}

	panel := protein.GeneratePanel(p.Prompt, p.Count, p.Length, p.Seed)
	if p.Lab {
		protein.RunLab(panel, seqrand.New(p.Seed))
	}

	stats := ComputeStats(p.Prompt, panel)

	svgFold, err := GenerateScoreLinePlotSVG(FoldScores(panel), "Fold Score Distribution", "Fold Score")
	if err != nil {
		fmt.Println("Failed to plot fold scores:", err)
		os.Exit(1)
	}
	svgActivity, err := GenerateScoreLinePlotSVG(ActivityScores(panel), "Activity Score Distribution", "Activity Score")
	if err != nil {
		fmt.Println("Failed to plot activity scores:", err)
		os.Exit(1)
	}

	if err := WriteHTMLReport(*outFile, stats, panel, svgFold, svgActivity); err != nil {
		fmt.Println("Failed to write HTML report:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote report to %s.html\n", *outFile)
}
