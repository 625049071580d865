package viz

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/step"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	s := session.New(
		session.WithGenerator(array.NewGenerator(7)),
		session.WithSpec(array.Spec{Size: 12, Min: 1, Max: 40, Shape: array.ShapeRandom}),
		session.WithBaseDelay(0),
	)
	m := NewModel(s, ThemeClassic)
	m = update(t, m, generateMsg{})
	if len(m.session.Values()) != 12 {
		t.Fatalf("expected 12 values after generate, got %d", len(m.session.Values()))
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// drain follows the returned commands until the run stops scheduling.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 10000 {
			t.Fatal("run did not finish")
		}
		var next tea.Model
		next, cmd = m.Update(cmd())
		m = next.(Model)
	}
	return m
}

func TestApplyEvent(t *testing.T) {
	marks := make([]mark, 4)

	applyEvent(marks, step.CompareOf(0, 1))
	if marks[0] != markCompare || marks[1] != markCompare {
		t.Errorf("compare marks = %v", marks)
	}

	applyEvent(marks, step.SwapOf(0, 1))
	if marks[0] != markSwap || marks[1] != markSwap {
		t.Errorf("swap marks = %v", marks)
	}

	applyEvent(marks, step.ResetOf(0, 1))
	applyEvent(marks, step.HighlightOf(3))
	if !slices.Equal(marks, []mark{markNone, markNone, markNone, markHighlight}) {
		t.Errorf("reset/highlight marks = %v", marks)
	}

	applyEvent(marks, step.RenderAll())
	if !slices.Equal(marks, make([]mark, 4)) {
		t.Errorf("render should clear marks, got %v", marks)
	}

	applyEvent(marks, step.SortedAll())
	for i, m := range marks {
		if m != markSorted {
			t.Errorf("mark %d = %v after sorted", i, m)
		}
	}
}

func TestApplyEventIgnoresOutOfRange(t *testing.T) {
	marks := make([]mark, 2)
	applyEvent(marks, step.CompareOf(1, 5))
	if marks[1] != markCompare {
		t.Errorf("in-range index not marked: %v", marks)
	}
}

func litBars(marks []mark) int {
	n := 0
	for _, m := range marks {
		if m != markNone {
			n++
		}
	}
	return n
}

// While an event is on screen only the pair it names, plus the highlighted
// position, may be colored. Nothing stays colored once the strategy ends.
func TestStrategiesRestoreMarks(t *testing.T) {
	inputs := [][]int{
		{7, 3, 11, 1, 9, 4, 12, 2, 8, 5, 10, 6},
		{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		{4, 2, 4, 1, 2, 4, 3, 1, 3, 2, 4, 1},
	}

	r := sorting.NewRegistry()
	for _, name := range r.Names() {
		strategy, _ := r.Get(name)
		for _, in := range inputs {
			marks := make([]mark, len(in))
			for e := range strategy(array.New(in)) {
				applyEvent(marks, e)
				if !e.Kind.Paced() {
					continue
				}
				if lit := litBars(marks); lit > 3 {
					t.Fatalf("%s %v: %d bars colored during %v", name, in, lit, e)
				}
			}
			if lit := litBars(marks); lit != 0 {
				t.Errorf("%s %v: %d bars still colored after the last event: %v", name, in, lit, marks)
			}
		}
	}
}

func TestRenderBars(t *testing.T) {
	out := ansi.Strip(renderBars([]int{4, 8}, make([]mark, 2), 1, 0, ThemeClassic))
	if out != "▄█" {
		t.Errorf("renderBars = %q, want %q", out, "▄█")
	}

	out = ansi.Strip(renderBars([]int{1, 2}, make([]mark, 2), 2, 1, ThemeClassic))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if lines[0] != "  █" || lines[1] != "█ █" {
		t.Errorf("unexpected bars:\n%s", out)
	}
}

func TestRenderBarsEmpty(t *testing.T) {
	out := ansi.Strip(renderBars(nil, nil, 5, 1, ThemeClassic))
	if !strings.Contains(out, "empty") {
		t.Errorf("expected empty placeholder, got %q", out)
	}
}

func TestSortRunsToCompletion(t *testing.T) {
	m := newTestModel(t)
	if m.Algorithm() != "bubble" {
		t.Fatalf("default algorithm = %q", m.Algorithm())
	}

	next, cmd := m.Update(keyPress("enter"))
	m = next.(Model)
	if m.session.State() != session.Sorting {
		t.Fatalf("state = %v after start", m.session.State())
	}
	if cmd == nil {
		t.Fatal("start should schedule the first step")
	}

	m = drain(t, m, cmd)

	if m.session.State() != session.Idle {
		t.Errorf("state = %v after run", m.session.State())
	}
	if !slices.IsSorted(m.session.Values()) {
		t.Errorf("values not sorted: %v", m.session.Values())
	}
	for i, mk := range m.marks {
		if mk != markSorted {
			t.Errorf("bar %d not marked sorted", i)
		}
	}
	if got := m.tally.Values()["comparisons"]; got != 66 {
		t.Errorf("comparisons = %v, want 66", got)
	}
	if !strings.Contains(m.status, "finished") {
		t.Errorf("status = %q", m.status)
	}
}

func TestEveryAlgorithmFromTUI(t *testing.T) {
	m := newTestModel(t)
	for range m.algorithms {
		m = update(t, m, keyPress("g"))
		next, cmd := m.Update(keyPress("enter"))
		m = drain(t, next.(Model), cmd)
		if !slices.IsSorted(m.session.Values()) {
			t.Errorf("%s left values unsorted: %v", m.Algorithm(), m.session.Values())
		}
		m = update(t, m, keyPress("tab"))
	}
	if m.Algorithm() != "bubble" {
		t.Errorf("tab should wrap to the first algorithm, got %q", m.Algorithm())
	}
}

func TestBusyWhileSorting(t *testing.T) {
	m := newTestModel(t)
	before := m.session.Values()

	next, cmd := m.Update(keyPress("s"))
	m = next.(Model)

	m = update(t, m, keyPress("g"))
	if !strings.Contains(m.status, "busy") {
		t.Errorf("generate while sorting: status = %q", m.status)
	}
	if !slices.Equal(m.session.Values(), before) {
		t.Error("generate while sorting changed the array")
	}

	gen := m.gen
	next, again := m.Update(keyPress("enter"))
	m = next.(Model)
	if again != nil || m.gen != gen {
		t.Error("second start while sorting should be ignored")
	}

	m = drain(t, m, cmd)
	if m.session.State() != session.Idle {
		t.Errorf("state = %v", m.session.State())
	}
}

func TestStaleStepIgnored(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	values := m.session.Values()
	next, cmd := m.Update(stepMsg{gen: m.gen - 1})
	m = next.(Model)
	if cmd != nil || m.last.Kind != 0 {
		t.Error("stale step should not advance the run")
	}
	if !slices.Equal(values, m.session.Values()) {
		t.Error("stale step changed the array")
	}
}

func TestSpeedKeys(t *testing.T) {
	m := newTestModel(t)
	start := m.session.Speed()

	m = update(t, m, keyPress("+"))
	if got := m.session.Speed(); got != start*speedFactor {
		t.Errorf("faster: speed = %v", got)
	}
	m = update(t, m, keyPress("-"))
	m = update(t, m, keyPress("-"))
	if got := m.session.Speed(); got >= start {
		t.Errorf("slower: speed = %v", got)
	}

	for range 100 {
		m = update(t, m, keyPress("-"))
	}
	if got := m.session.Speed(); got != step.MinSpeed {
		t.Errorf("speed should bottom out at %v, got %v", step.MinSpeed, got)
	}
	for range 100 {
		m = update(t, m, keyPress("+"))
	}
	if got := m.session.Speed(); got != maxSpeed {
		t.Errorf("speed should top out at %v, got %v", maxSpeed, got)
	}
}

func TestShapeAndThemeKeys(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyPress("r"))
	if m.session.Spec().Shape != array.ShapeSorted {
		t.Errorf("shape = %q", m.session.Spec().Shape)
	}
	if !slices.IsSorted(m.session.Values()) {
		t.Error("sorted shape should regenerate a sorted array")
	}

	m = update(t, m, keyPress("t"))
	if m.theme.Name != ThemeRetroGreen.Name {
		t.Errorf("theme = %q", m.theme.Name)
	}
}

func TestQuitClosesRun(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	next, cmd := m.Update(keyPress("q"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.session.State() != session.Idle {
		t.Errorf("state = %v after quit", m.session.State())
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := ansi.Strip(m.View())
	for _, want := range []string{"SORTVIZ", "[bubble]", "quick", "idle", "n=12", "generate"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("missing").Name != ThemeClassic.Name {
		t.Error("unknown theme should fall back to classic")
	}
	if GetTheme("ocean").Name != "ocean" {
		t.Error("ocean theme not found")
	}
	if NextTheme(ThemeSunset).Name != ThemeClassic.Name {
		t.Error("NextTheme should wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}
