// Package tui renders interactive progress displays for batch operations.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/recode-cli/recode/style"
	"github.com/recode-cli/recode/util"
)

type advanceMsg string

type endMsg struct{}

// batchModel is the bubbletea model behind the batch progress display.
type batchModel struct {
	desc    string
	total   int
	done    int
	current string
	width   int

	bar  progress.Model
	spin spinner.Model
}

func newBatchModel(desc string, total int) batchModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = style.New().Foreground(style.AccentColor)

	bar := progress.New(progress.WithDefaultGradient())

	width := 80
	if w, _, err := util.TerminalSize(); err == nil {
		width = w
	}

	return batchModel{desc: desc, total: total, bar: bar, spin: spin, width: width}
}

func (m batchModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(msg.Width-10, 60)
		return m, nil

	case advanceMsg:
		m.done++
		m.current = string(msg)
		if m.total == 0 {
			return m, nil
		}
		return m, m.bar.SetPercent(float64(m.done) / float64(m.total))

	case endMsg:
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m batchModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n",
		m.spin.View(),
		style.Bold(m.desc),
		style.Faint(fmt.Sprintf("(%d/%d)", m.done, m.total)),
	)
	b.WriteString(m.bar.View())
	b.WriteString("\n")

	if m.current != "" {
		file := truncate.StringWithTail(m.current, uint(max(m.width-2, 10)), "…")
		b.WriteString(style.Faint(file))
		b.WriteString("\n")
	}
	return b.String()
}
