package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Primitives      int           // Shapes in the scene
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Primary rays traced
	Elapsed         time.Duration // Wall time of the pixel loop
}

// SamplesPerSecond returns the primary ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

// Table formats the statistics as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Primitives", "SPP", "Max depth", "Samples", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", s.Width, s.Height),
		fmt.Sprintf("%d", s.Primitives),
		fmt.Sprintf("%d", s.SamplesPerPixel),
		fmt.Sprintf("%d", s.MaxDepth),
		fmt.Sprintf("%d", s.TotalSamples),
		s.Elapsed.Round(time.Millisecond).String(),
	})
	table.SetFooter([]string{"", "", "", "", "SAMPLES/SEC", fmt.Sprintf("%.0f", s.SamplesPerSecond())})

	table.Render()
	return buf.String()
}
