package viz

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/step"
)

const (
	maxSpeed    = 100.0
	speedFactor = 1.25

	defaultWidth  = 100
	defaultHeight = 30
	chromeRows    = 10
	minBarRows    = 4
)

// stepMsg asks the model to pull the next event of run gen.
type stepMsg struct{ gen int }

type generateMsg struct{}

// Model is the bubbletea model driving one session.
type Model struct {
	session *session.Session
	keys    keyMap
	help    help.Model
	theme   Theme

	algorithms []string
	selected   int

	run   *session.Run
	gen   int
	marks []mark
	last  step.Event
	tally *metrics.Tally

	status        string
	width, height int
}

func NewModel(s *session.Session, theme Theme) Model {
	return Model{
		session:    s,
		keys:       newKeyMap(),
		help:       help.New(),
		theme:      theme,
		algorithms: s.Algorithms(),
		marks:      make([]mark, len(s.Values())),
		tally:      metrics.Default(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

// Run starts the TUI on s and blocks until the user quits.
func Run(s *session.Session, theme string) error {
	_, err := tea.NewProgram(NewModel(s, GetTheme(theme)), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	if len(m.marks) > 0 {
		return nil
	}
	return func() tea.Msg { return generateMsg{} }
}

func (m Model) Algorithm() string {
	if len(m.algorithms) == 0 {
		return ""
	}
	return m.algorithms[m.selected]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case generateMsg:
		m.generate()

	case stepMsg:
		return m.advance(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			if m.run != nil {
				m.run.Close()
				m.run = nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.generate):
			m.generate()
		case key.Matches(msg, m.keys.start):
			return m.start()
		case key.Matches(msg, m.keys.next):
			if len(m.algorithms) > 0 {
				m.selected = (m.selected + 1) % len(m.algorithms)
			}
		case key.Matches(msg, m.keys.prev):
			if len(m.algorithms) > 0 {
				m.selected = (m.selected + len(m.algorithms) - 1) % len(m.algorithms)
			}
		case key.Matches(msg, m.keys.faster):
			m.session.SetSpeed(min(m.session.Speed()*speedFactor, maxSpeed))
		case key.Matches(msg, m.keys.slower):
			m.session.SetSpeed(max(m.session.Speed()/speedFactor, step.MinSpeed))
		case key.Matches(msg, m.keys.shape):
			m.cycleShape()
		case key.Matches(msg, m.keys.theme):
			m.theme = NextTheme(m.theme)
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *Model) generate() {
	values, err := m.session.Generate()
	if err != nil {
		m.status = statusFor(err)
		return
	}
	m.marks = make([]mark, len(values))
	m.last = step.Event{}
	m.tally.Reset()
	m.status = fmt.Sprintf("generated %d values", len(values))
}

func (m *Model) cycleShape() {
	spec := m.session.Spec()
	if spec.Shape == "" {
		spec.Shape = array.ShapeRandom
	}
	shapes := array.Shapes()
	spec.Shape = shapes[(slices.Index(shapes, spec.Shape)+1)%len(shapes)]
	if err := m.session.SetSpec(spec); err != nil {
		m.status = err.Error()
		return
	}
	m.generate()
}

func (m Model) start() (tea.Model, tea.Cmd) {
	run, err := m.session.Begin(m.Algorithm())
	if err != nil {
		m.status = statusFor(err)
		return m, nil
	}
	m.run = run
	m.gen++
	m.marks = make([]mark, len(m.session.Values()))
	m.last = step.Event{}
	m.tally.Reset()
	m.status = "sorting with " + run.Algorithm()
	return m, m.tick(0)
}

// advance pulls one event from the active run and schedules the next pull,
// one delay later for paced kinds and immediately otherwise.
func (m Model) advance(msg stepMsg) (tea.Model, tea.Cmd) {
	if m.run == nil || msg.gen != m.gen {
		return m, nil
	}

	e, ok := m.run.Next()
	if !ok {
		m.status = m.run.Algorithm() + " finished"
		m.run = nil
		return m, nil
	}

	if len(m.marks) != len(m.session.Values()) {
		m.marks = make([]mark, len(m.session.Values()))
	}
	applyEvent(m.marks, e)
	m.tally.Emit(e)
	m.last = e

	if e.Kind.Paced() {
		return m, m.tick(step.DelayWithBase(m.session.BaseDelay(), m.session.Speed()))
	}
	return m, m.tick(0)
}

func (m Model) tick(d time.Duration) tea.Cmd {
	gen := m.gen
	if d <= 0 {
		return func() tea.Msg { return stepMsg{gen: gen} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return stepMsg{gen: gen} })
}

func statusFor(err error) string {
	switch {
	case errors.Is(err, session.ErrBusy):
		return "busy: wait for the current sort to finish"
	default:
		return err.Error()
	}
}

func (m Model) View() string {
	t := m.theme
	title := lipgloss.NewStyle().Foreground(t.Title).Bold(true)
	text := lipgloss.NewStyle().Foreground(t.Text)
	muted := lipgloss.NewStyle().Foreground(t.Muted)
	warn := lipgloss.NewStyle().Foreground(t.Warning)

	var b strings.Builder
	b.WriteString(title.Render("SORTVIZ"))
	b.WriteString(muted.Render("  " + t.Name))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.algorithms))
	for i, name := range m.algorithms {
		if i == m.selected {
			tabs[i] = title.Render("[" + name + "]")
		} else {
			tabs[i] = muted.Render(" " + name + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")
	b.WriteString(muted.Render(m.session.Describe(m.Algorithm())))
	b.WriteString("\n\n")

	values := m.session.Values()
	gap := 0
	if len(values)*2 <= m.width {
		gap = 1
	}
	rows := max(m.height-chromeRows, minBarRows)
	b.WriteString(renderBars(values, m.marks, rows, gap, t))
	b.WriteString("\n\n")

	counts := m.tally.Values()
	speed := m.session.Speed()
	stats := fmt.Sprintf("%s  n=%d  comparisons=%.0f  swaps=%.0f  speed=%.2fx  delay=%s",
		m.session.State(), len(values), counts["comparisons"], counts["swaps"],
		speed, step.DelayWithBase(m.session.BaseDelay(), speed).Round(time.Microsecond))
	b.WriteString(text.Render(stats))
	if m.last.Kind != 0 {
		b.WriteString(muted.Render("  last=" + m.last.String()))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(warn.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
