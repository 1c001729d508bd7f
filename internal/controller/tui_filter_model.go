package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/deflake/internal/model"
)

type classState int

const (
	classRunning classState = iota
	classStabilized
	classHalted
)

// classProgress is what the TUI knows about one class being filtered.
type classProgress struct {
	name      string
	state     classState
	iteration int
	repairs   int
	flaky     map[string]struct{}
	last      string
}

// filterModel handles the TUI display while classes are filtered.
type filterModel struct {
	width       int
	spinner     spinner.Model
	progressBar progress.Model
	total       int
	classes     map[string]*classProgress
	finished    bool
	interrupt   func()
}

func newFilterModel(total int, interrupt func()) filterModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return filterModel{
		width:   80,
		spinner: sp,
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
		total:     total,
		classes:   make(map[string]*classProgress),
		interrupt: interrupt,
	}
}

func (fm filterModel) Init() tea.Cmd {
	return fm.spinner.Tick
}

func (fm filterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fm.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if fm.interrupt != nil {
				fm.interrupt()
			}

			return fm, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd

		fm.spinner, cmd = fm.spinner.Update(msg)

		return fm, cmd

	case eventMsg:
		fm = fm.handleEvent(msg.event)

	case finishedMsg:
		fm.finished = true

		return fm, tea.Quit
	}

	return fm, nil
}

func (fm filterModel) handleEvent(e m.Event) filterModel {
	c, ok := fm.classes[e.Class]
	if !ok {
		c = &classProgress{name: e.Class, flaky: make(map[string]struct{})}
		fm.classes[e.Class] = c
	}

	c.iteration = e.Iteration

	switch e.Kind {
	case m.EventCompileRepaired:
		c.repairs++
		c.last = fmt.Sprintf("repaired line %d", e.Line)
	case m.EventFlakyFound:
		c.flaky[e.Method] = struct{}{}
		c.last = fmt.Sprintf("%s line %d", e.Method, e.Line)
	case m.EventStabilized:
		c.state = classStabilized
		c.last = e.Message
	case m.EventHalted:
		c.state = classHalted
		c.last = e.Message
	}

	return fm
}

func (fm filterModel) completed() int {
	n := 0

	for _, c := range fm.classes {
		if c.state != classRunning {
			n++
		}
	}

	return n
}

// expected is the class count shown to the user; suites are loaded after the
// display starts, so it grows with the classes seen so far.
func (fm filterModel) expected() int {
	return max(fm.total, len(fm.classes))
}

func (fm filterModel) flakyCount() int {
	n := 0
	for _, c := range fm.classes {
		n += len(c.flaky)
	}

	return n
}

func (fm filterModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render("deflake: filtering flaky assertions")
	summary := summaryStyle.Render(fmt.Sprintf(
		"Classes: %s / %s  •  Flaky methods: %s",
		accentStyle.Render(fmt.Sprintf("%d", fm.completed())),
		accentStyle.Render(fmt.Sprintf("%d", fm.expected())),
		accentStyle.Render(fmt.Sprintf("%d", fm.flakyCount())),
	))

	percent := 0.0
	if n := fm.expected(); n > 0 {
		percent = float64(fm.completed()) / float64(n)
	}

	bar := lipgloss.NewStyle().Padding(0, 2).Render(fm.progressBar.ViewAs(percent))

	parts := []string{title, summary, bar, fm.renderClasses()}

	if !fm.finished {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 2).
			Render("Press q to abort"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (fm filterModel) renderClasses() string {
	if len(fm.classes) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(fm.spinner.View() + " starting…")
	}

	names := make([]string, 0, len(fm.classes))
	for name := range fm.classes {
		names = append(names, name)
	}

	sort.Strings(names)

	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	lines := make([]string, 0, len(names))

	for _, name := range names {
		c := fm.classes[name]

		var marker string

		switch c.state {
		case classStabilized:
			marker = okStyle.Render("✓")
		case classHalted:
			marker = failStyle.Render("✗")
		default:
			marker = fm.spinner.View()
		}

		detail := fmt.Sprintf("iteration %d  flaky %d", c.iteration+1, len(c.flaky))
		if c.repairs > 0 {
			detail += fmt.Sprintf("  repairs %d", c.repairs)
		}

		line := fmt.Sprintf("%s %s  %s", marker, nameStyle.Render(name), dimStyle.Render(detail))
		if c.last != "" {
			line += "  " + truncate(c.last, fm.width-lipgloss.Width(line)-6)
		}

		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Render(strings.Join(lines, "\n"))
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	if width <= 1 {
		return "…"
	}

	runes := []rune(text)

	out := make([]rune, 0, width)
	for _, r := range runes {
		if lipgloss.Width(string(out))+lipgloss.Width(string(r)) > width-1 {
			break
		}

		out = append(out, r)
	}

	return string(out) + "…"
}
