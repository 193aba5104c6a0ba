package panel_report

import (
	"fmt"
	"os"
	"strings"

	"protein_lab_go/protein"
)

func labCell(c protein.Candidate) string {
	if c.HasLab {
		return fmt.Sprintf("%.2f", c.Lab)
	}
	return "&ndash;"
}

// WriteHTMLReport writes the full panel report to <filename>.html: summary
// metrics, the screened candidate table, and the embedded SVG plots.
func WriteHTMLReport(filename string, stats PanelStats, panel []protein.Candidate, svgFold, svgActivity string) error {
	f, err := os.Create(filename + ".html")
	if err != nil {
		return err
	}
	defer f.Close()

	var rows strings.Builder
	for _, c := range panel {
		fmt.Fprintf(&rows, "\t\t<tr><td>%s</td><td class=\"seq\">%s</td><td>%.2f</td><td>%.2f</td><td>%s</td></tr>\n",
			c.ID, c.Sequence, c.Fold, c.Activity, labCell(c))
	}

	labRow := ""
	if stats.HasLab {
		labRow = fmt.Sprintf("\t\t<tr><td>Mean Lab Measurement</td><td>%.2f</td></tr>\n", stats.MeanLab)
	}

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<title>Protein Lab Panel Report</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
		.seq { font-family: monospace; }
	</style>
</head>
<body>
	<h1>Protein Lab Panel Report</h1>
	<table>
		<tr><th>Metric</th><th>Value</th></tr>
		<tr><td>Prompt</td><td>%s</td></tr>
		<tr><td>Candidates</td><td>%d</td></tr>
		<tr><td>Sequence Length</td><td>%d</td></tr>
		<tr><td>Mean Fold Score</td><td>%.2f</td></tr>
		<tr><td>Fold Score StdDev</td><td>%.2f</td></tr>
		<tr><td>Fold Score Range</td><td>%.2f &ndash; %.2f</td></tr>
		<tr><td>Mean Activity Score</td><td>%.2f</td></tr>
		<tr><td>Activity Score StdDev</td><td>%.2f</td></tr>
		<tr><td>Mean Hydrophobic Fraction</td><td>%.3f</td></tr>
%s		<tr><td>Top Candidate</td><td>%s (activity %.2f)</td></tr>
	</table>

	<h2>Screened Candidates</h2>
	<table>
		<tr><th>ID</th><th>Sequence</th><th>Fold</th><th>Activity</th><th>Lab</th></tr>
%s	</table>

	<h2>Fold Score Distribution</h2>
	%s

	<h2>Activity Score Distribution</h2>
	%s
</body>
</html>
`,
		stats.Prompt, stats.Count, stats.SeqLength,
		stats.MeanFold, stats.FoldStdDev, stats.MinFold, stats.MaxFold,
		stats.MeanActivity, stats.ActivityStdDev, stats.MeanHydroFrac,
		labRow, stats.TopCandidate, stats.TopActivity,
		rows.String(), svgFold, svgActivity)

	_, err = f.WriteString(html)
	return err
}
