package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/sortviz/internal/trace"
)

const (
	panelWidth  = 600
	panelHeight = 200
	panelGap    = 30
)

// BarsToSVG draws values as a bar chart sized width x height, bars scaled
// to the largest value.
func BarsToSVG(values []int, width, height int, fill string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))
	writeBars(&sb, values, 0, 0, float64(width), float64(height), fill)
	sb.WriteString("</svg>")
	return sb.String()
}

// TraceToSVG draws the trace input above its sorted output.
func TraceToSVG(tr *trace.Trace) string {
	width := panelWidth
	height := 2*panelHeight + 3*panelGap

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#cccccc" font-family="monospace" font-size="14">
<text x="4" y="20">%s input (%d)</text>
<text x="4" y="%d">%s output: %.0f comparisons, %.0f swaps</text>
</g>
`, width, height, width, height,
		tr.Algorithm, len(tr.Input),
		panelHeight+2*panelGap-10, tr.Algorithm, tr.Metrics["comparisons"], tr.Metrics["swaps"]))

	writeBars(&sb, tr.Input, 0, panelGap, float64(width), panelHeight, "#3498db")
	writeBars(&sb, tr.Output, 0, float64(panelHeight+2*panelGap), float64(width), panelHeight, "#2ecc71")
	sb.WriteString("</svg>")
	return sb.String()
}

// WriteTraceSVG writes TraceToSVG(tr) to w.
func WriteTraceSVG(w io.Writer, tr *trace.Trace) error {
	_, err := io.WriteString(w, TraceToSVG(tr))
	return err
}

func writeBars(sb *strings.Builder, values []int, x, y, width, height float64, fill string) {
	if len(values) == 0 {
		return
	}
	maxVal := 1
	for _, v := range values {
		maxVal = max(maxVal, v)
	}

	slot := width / float64(len(values))
	barWidth := slot * 0.8
	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", fill))
	for i, v := range values {
		h := float64(v) / float64(maxVal) * height
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, x+float64(i)*slot+(slot-barWidth)/2, y+height-h, barWidth, h))
	}
	sb.WriteString("</g>\n")
}
