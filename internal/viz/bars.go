package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/step"
)

type mark uint8

const (
	markNone mark = iota
	markCompare
	markSwap
	markHighlight
	markSorted
)

// applyEvent updates bar marks the way the event recolors the display.
func applyEvent(marks []mark, e step.Event) {
	set := func(i int, m mark) {
		if i >= 0 && i < len(marks) {
			marks[i] = m
		}
	}

	switch e.Kind {
	case step.Compare:
		set(e.I, markCompare)
		set(e.J, markCompare)
	case step.Swap:
		set(e.I, markSwap)
		set(e.J, markSwap)
	case step.Highlight:
		set(e.I, markHighlight)
	case step.Reset:
		set(e.I, markNone)
		set(e.J, markNone)
	case step.Render:
		clear(marks)
	case step.Sorted:
		for i := range marks {
			marks[i] = markSorted
		}
	}
}

func (t Theme) color(m mark) lipgloss.Color {
	switch m {
	case markCompare:
		return t.Compare
	case markSwap:
		return t.Swap
	case markHighlight:
		return t.Highlight
	case markSorted:
		return t.Sorted
	}
	return t.Bar
}

var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// renderBars draws values as vertical bars rows high, scaled to the largest
// value. Each bar is one column wide, separated by gap spaces.
func renderBars(values []int, marks []mark, rows, gap int, theme Theme) string {
	if len(values) == 0 || rows <= 0 {
		return lipgloss.NewStyle().Foreground(theme.Muted).Render("(empty array: press g)")
	}

	maxVal := 1
	for _, v := range values {
		maxVal = max(maxVal, v)
	}

	styles := make(map[mark]lipgloss.Style)
	styleFor := func(m mark) lipgloss.Style {
		st, ok := styles[m]
		if !ok {
			st = lipgloss.NewStyle().Foreground(theme.color(m))
			styles[m] = st
		}
		return st
	}

	// Heights are in eighths of a row.
	heights := make([]int, len(values))
	for i, v := range values {
		heights[i] = v * rows * 8 / maxVal
		if v > 0 && heights[i] == 0 {
			heights[i] = 1
		}
	}

	spacer := strings.Repeat(" ", gap)
	var b strings.Builder
	for row := rows - 1; row >= 0; row-- {
		for i, h := range heights {
			fill := h - row*8
			var r rune
			switch {
			case fill >= 8:
				r = blocks[8]
			case fill <= 0:
				r = blocks[0]
			default:
				r = blocks[fill]
			}
			m := markNone
			if i < len(marks) {
				m = marks[i]
			}
			b.WriteString(styleFor(m).Render(string(r)))
			if i < len(heights)-1 {
				b.WriteString(spacer)
			}
		}
		if row > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
