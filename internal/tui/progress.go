// Package tui shows live sampling progress while the engine runs.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fieldtopo/internal/topo"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg time.Time

type resultMsg []topo.PathSample

type model struct {
	engine  *topo.Engine
	total   int
	start   time.Time
	samples []topo.PathSample
	done    bool
}

// Run samples n paths on the engine while displaying a progress bar, and
// returns the collected samples. The engine always runs to completion; there
// is no cancellation of in-flight trials.
func Run(engine *topo.Engine, n int) ([]topo.PathSample, error) {
	m := model{engine: engine, total: n, start: time.Now()}
	p := tea.NewProgram(m)

	go func() {
		p.Send(resultMsg(engine.Run(n)))
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	fm := final.(model)
	if fm.samples == nil {
		return nil, fmt.Errorf("tui: sampling view closed before completion")
	}
	return fm.samples, nil
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tick()
	case resultMsg:
		m.samples = msg
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	completed := int(m.engine.Completed())
	frac := 1.0
	if m.total > 0 {
		frac = float64(completed) / float64(m.total)
	}
	filled := int(frac * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	bar := barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", barWidth-filled))

	var b strings.Builder
	b.WriteString(titleStyle.Render("sampling topology"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %d/%d\n", bar, completed, m.total))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  elapsed %s",
		time.Since(m.start).Round(time.Millisecond))))
	b.WriteString("\n")
	return b.String()
}
