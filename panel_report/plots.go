package panel_report

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// GenerateScoreLinePlotSVG draws the distribution of a score column as a
// binned line plot with a fitted normal overlay, in SVG form for embedding
// in the HTML report.
func GenerateScoreLinePlotSVG(values []float64, title, xLabel string) (string, error) {
	if len(values) < 2 {
		return "", fmt.Errorf("need at least 2 values to plot a distribution")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Candidate Count"

	// A. Build observed histogram over the value range
	binCount := 40
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	span := maxVal - minVal
	if span == 0 {
		span = 1 // all values identical; a single hot bin is fine
	}
	binWidth := span / float64(binCount)
	observed := make([]float64, binCount)
	for _, v := range values {
		bin := int((v - minVal) / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		observed[bin]++
	}

	// B. Compute mean and stddev of the scores
	mean := stat.Mean(values, nil)
	stddev := stat.StdDev(values, nil)

	// C. Build expected normal curve (normalized to same total)
	total := float64(len(values))
	expected := make([]float64, binCount)
	if stddev > 0 {
		normDist := distuv.Normal{Mu: mean, Sigma: stddev}
		scaleFactor := total * binWidth // for normalization to observed scale
		for i := 0; i < binCount; i++ {
			x := minVal + binWidth*float64(i) + binWidth/2
			expected[i] = normDist.Prob(x) * scaleFactor
		}
	}

	// D. Convert to line plots
	observedXY := make(plotter.XYs, binCount)
	expectedXY := make(plotter.XYs, binCount)
	for i := 0; i < binCount; i++ {
		x := minVal + binWidth*float64(i) + binWidth/2
		observedXY[i].X = x
		observedXY[i].Y = observed[i]
		expectedXY[i].X = x
		expectedXY[i].Y = expected[i]
	}

	// E. Add lines
	obsLine, err := plotter.NewLine(observedXY)
	if err != nil {
		return "", err
	}
	obsLine.Color = color.RGBA{B: 255, A: 255}
	obsLine.Width = vg.Points(2)
	p.Add(obsLine)
	p.Legend.Add("Observed", obsLine)

	if stddev > 0 {
		expLine, err := plotter.NewLine(expectedXY)
		if err != nil {
			return "", err
		}
		expLine.Color = color.RGBA{R: 200, A: 255}
		expLine.Width = vg.Points(1)
		expLine.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(expLine)
		p.Legend.Add("Normal Fit", expLine)
	}
	p.Legend.Top = true

	// Write to SVG
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
