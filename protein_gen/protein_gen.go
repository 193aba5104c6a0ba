package protein_gen

import (
	"compress/gzip"
	"flag"
	"fmt"
	"os"
	"strings"

	"protein_lab_go/protein"
	"protein_lab_go/seqrand"
)

// Wrap sequence every `width` characters for FASTA formatting
func wrapFasta(seq string, width int) string {
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}

func Run(args []string) {

	fs := flag.NewFlagSet("protein_gen", flag.ExitOnError)

	prompt := fs.String("prompt", "", "Free-text design prompt (biases activity scores)")
	count := fs.Int("count", 1, "Number of candidate sequences")
	length := fs.Int("length", 30, "Length of each candidate sequence")
	seed := fs.Uint("seed", 1, "Seed for the deterministic RNG (32-bit)")
	name := fs.String("name", "cand", "Sequence name prefix (FASTA header)")
	scores := fs.Bool("scores", false, "Annotate FASTA headers with fold/activity scores")
	outFile := fs.String("out_file", "", "Output FASTA file")
	gzipOption := fs.Bool("gzip", false, "Compress output using gzip (.gz)")

	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)				// Check for outright input failures
		os.Exit(1)												// E.g., expected int by recieved str
	}

	if len(fs.Args()) > 0 {										// If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())	// Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *count < 1 {
		fmt.Println("Error: count must be at least 1")
		os.Exit(1)
	}
	if *length < 0 {
		fmt.Println("Error: length must be non-negative")
		os.Exit(1)
	}

	// One RNG threads through every candidate, so the whole batch is
	// reproducible from the seed alone.
	rng := seqrand.New(uint32(*seed))

	var fastaOut strings.Builder
	for i := 1; i <= *count; i++ {
		seq := protein.Generate(*length, rng)
		header := fmt.Sprintf(">%s_%d", *name, i)
		if *scores {
			header += fmt.Sprintf(" fold=%.2f activity=%.2f",
				protein.FoldScore(seq), protein.ActivityScore(seq, *prompt))
		}
		fastaOut.WriteString(header + "\n" + wrapFasta(seq, 60))
	}
	fasta := fastaOut.String()

	// Output the result
	if *outFile == "" {
		if *gzipOption {
			fmt.Fprintln(os.Stderr, "Cannot gzip to stdout directly. Please specify an output file.")
			os.Exit(1)
		}
		fmt.Print(fasta)
		return
	}

	outputPath := *outFile
	if *gzipOption {
		outputPath += ".gz"
		file, err := os.Create(outputPath)
		if err != nil {
			fmt.Println("Error creating gzip file:", err)
			os.Exit(1)
		}
		defer file.Close()

		writer := gzip.NewWriter(file)
		defer writer.Close()

		_, err = writer.Write([]byte(fasta))
		if err != nil {
			fmt.Println("Error writing compressed data:", err)
			os.Exit(1)
		}

		fmt.Printf("Wrote compressed sequences to %s\n", outputPath)
	} else {
		err := os.WriteFile(outputPath, []byte(fasta), 0644)
		if err != nil {
			fmt.Println("Error writing to file:", err)
			os.Exit(1)
		}

		fmt.Printf("Wrote sequences to %s\n", outputPath)
	}
}
