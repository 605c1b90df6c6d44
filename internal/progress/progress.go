// Package progress reports batch render progress, as a bubbletea bar on a
// terminal or as periodic log lines otherwise.
package progress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/iburimskiy/geometry-visualization/internal/logging"
)

// Job does the work, calling report after each finished unit.
type Job func(ctx context.Context, report func(done, total int)) error

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#FFD700")
	errorFg   = lipgloss.Color("#FF4500")
	borderCol = lipgloss.Color("#243141")

	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	textStyle  = lipgloss.NewStyle().Foreground(baseFg)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(errorFg).Bold(true)
)

const barWidth = 48

type frameMsg struct{ done, total int }

type doneMsg struct{ err error }

type model struct {
	title  string
	bar    progress.Model
	done   int
	total  int
	err    error
	quit   bool
	cancel context.CancelFunc
}

func newModel(title string, cancel context.CancelFunc) model {
	bar := progress.New(progress.WithGradient("#FFD700", "#FF4500"), progress.WithWidth(barWidth))
	return model{title: title, bar: bar, cancel: cancel}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
		}
	case tea.WindowSizeMsg:
		m.bar.Width = min(barWidth, max(10, msg.Width-8))
	case frameMsg:
		m.done, m.total = msg.done, msg.total
	case doneMsg:
		m.err = msg.err
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString("\n")
	switch {
	case m.quit && m.err != nil:
		b.WriteString(errStyle.Render("failed: " + m.err.Error()))
	case m.quit:
		b.WriteString(textStyle.Render(fmt.Sprintf("%d frames done", m.done)))
	default:
		b.WriteString(textStyle.Render(fmt.Sprintf("frame %d/%d", m.done, m.total)))
		b.WriteString(dimStyle.Render("  q to cancel"))
	}
	return boxStyle.Render(b.String()) + "\n"
}

// Interactive reports whether f is a terminal.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Run executes job, drawing a progress bar on out when interactive. Pressing
// q, esc or ctrl+c cancels the job's context.
func Run(ctx context.Context, title string, out io.Writer, interactive bool, job Job) error {
	if !interactive {
		return runPlain(ctx, title, job)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(title, cancel), tea.WithOutput(out))
	errc := make(chan error, 1)
	go func() {
		err := job(ctx, func(done, total int) { p.Send(frameMsg{done, total}) })
		errc <- err
		p.Send(doneMsg{err})
	}()
	if _, err := p.Run(); err != nil {
		cancel()
		return errors.Join(fmt.Errorf("progress: %w", err), <-errc)
	}
	return <-errc
}

// runPlain logs roughly every tenth of the job.
func runPlain(ctx context.Context, title string, job Job) error {
	log := logging.Logger().With("job", title)
	last := -1
	err := job(ctx, func(done, total int) {
		if total <= 0 {
			return
		}
		tenth := done * 10 / total
		if tenth == last && done != total {
			return
		}
		last = tenth
		log.Info("progress", "frame", done, "total", total)
	})
	if err != nil {
		log.Error("failed", "err", err)
		return err
	}
	log.Info("done")
	return nil
}
