package candidate_screen

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"protein_lab_go/protein"
)

// WriteCSVPanel writes the screened panel to <filename>.csv, one candidate
// per row. The Lab column is blank for candidates without a measurement.
func WriteCSVPanel(filename, prompt string, panel []protein.Candidate) error {
	f, err := os.Create(filename + ".csv")
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	headers := []string{"ID", "Sequence", "FoldScore", "ActivityScore", "Lab", "Prompt"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, c := range panel {
		labField := ""
		if c.HasLab {
			labField = fmt.Sprintf("%.2f", c.Lab)
		}
		row := []string{
			c.ID,
			c.Sequence,
			fmt.Sprintf("%.2f", c.Fold),
			fmt.Sprintf("%.2f", c.Activity),
			labField,
			prompt,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// PrintPanel renders the panel as an aligned text table.
func PrintPanel(w io.Writer, prompt string, panel []protein.Candidate) {
	if prompt != "" {
		fmt.Fprintf(w, "Prompt: %s\n", prompt)
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSequence\tFold\tActivity\tLab")
	for _, c := range panel {
		labField := "-"
		if c.HasLab {
			labField = fmt.Sprintf("%.2f", c.Lab)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%s\n", c.ID, c.Sequence, c.Fold, c.Activity, labField)
	}
	tw.Flush()
}
