package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/trace"
)

func TestBarsToSVG(t *testing.T) {
	svg := BarsToSVG([]int{1, 2, 4}, 300, 100, "#3498db")

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete svg document")
	}
	if got := strings.Count(svg, "<rect x="); got != 3 {
		t.Errorf("expected 3 bars, got %d", got)
	}
	// The tallest bar spans the full height.
	if !strings.Contains(svg, `y="0.0" width="80.0" height="100.0"`) {
		t.Errorf("tallest bar not full height:\n%s", svg)
	}
}

func TestBarsToSVGEmpty(t *testing.T) {
	svg := BarsToSVG(nil, 100, 100, "#fff")
	if strings.Contains(svg, "<rect x=") {
		t.Error("empty input should draw no bars")
	}
}

func TestWriteTraceSVG(t *testing.T) {
	tr := &trace.Trace{
		Algorithm: "bubble",
		Input:     []int{3, 1, 2},
		Output:    []int{1, 2, 3},
		Metrics:   map[string]float64{"comparisons": 3, "swaps": 2},
	}

	var buf bytes.Buffer
	if err := WriteTraceSVG(&buf, tr); err != nil {
		t.Fatalf("WriteTraceSVG: %v", err)
	}
	svg := buf.String()
	if got := strings.Count(svg, "<rect x="); got != 6 {
		t.Errorf("expected 6 bars, got %d", got)
	}
	if !strings.Contains(svg, "3 comparisons, 2 swaps") {
		t.Error("missing metrics caption")
	}
}
