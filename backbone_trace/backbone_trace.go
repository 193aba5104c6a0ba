package backbone_trace

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"protein_lab_go/backbone"
	common "protein_lab_go/utils"
)

// FormatXYZ renders the trace in the plain XYZ chemistry format: atom
// count, a comment line, then one pseudo-atom per residue.
func FormatXYZ(name string, points []backbone.Point) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%d\n", len(points))
	fmt.Fprintf(&out, "backbone trace %s\n", name)
	for _, p := range points {
		fmt.Fprintf(&out, "CA %.4f %.4f %.4f\n", p.X, p.Y, p.Z)
	}
	return out.String()
}

// FormatCSV renders the trace as index,x,y,z rows with a header.
func FormatCSV(points []backbone.Point) string {
	var out strings.Builder
	out.WriteString("index,x,y,z\n")
	for i, p := range points {
		fmt.Fprintf(&out, "%d,%.4f,%.4f,%.4f\n", i, p.X, p.Y, p.Z)
	}
	return out.String()
}

func Run(args []string) {

	fs := flag.NewFlagSet("backbone_trace", flag.ExitOnError)

	seq := fs.String("seq", "", "Sequence to trace")
	inFile := fs.String("in_file", "", "FASTA file; the first record is traced")
	seed := fs.Uint("seed", 7, "Seed for the trace RNG (32-bit)")
	format := fs.String("format", "xyz", "Output format: xyz or csv")
	outFile := fs.String("out_file", "", "Output file (stdout if omitted)")

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

	name := "seq"
	sequence := *seq
	if *inFile != "" {
		if sequence != "" {
			fmt.Println("Error: use either -seq or -in_file, not both")
			os.Exit(1)
		}
		name, sequence, err = common.ReadFirstFasta(*inFile)
		if err != nil {
			fmt.Println("Failed to read FASTA:", err)
			os.Exit(1)
		}
	}
	if sequence == "" {
		fmt.Println("Error: no sequence given (use -seq or -in_file)")
		os.Exit(1)
	}

	points := backbone.Build(sequence, uint32(*seed))

	var rendered string
	switch *format {
	case "xyz":
		rendered = FormatXYZ(name, points)
	case "csv":
		rendered = FormatCSV(points)
	default:
		fmt.Printf("Unknown format: %s\n", *format)
		os.Exit(1)
	}

	if *outFile == "" {
		fmt.Print(rendered)
		return
	}
	if err := os.WriteFile(*outFile, []byte(rendered), 0644); err != nil {
		fmt.Println("Error writing to file:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote trace to %s\n", *outFile)
}
