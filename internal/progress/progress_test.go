package progress

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iburimskiy/geometry-visualization/internal/logging"
)

func TestModelUpdate(t *testing.T) {
	cancelled := false
	var m tea.Model = newModel("temple", func() { cancelled = true })

	m, _ = m.Update(frameMsg{done: 3, total: 12})
	if got := m.(model).percent(); got != 0.25 {
		t.Fatalf("percent = %v, want 0.25", got)
	}
	if v := m.View(); !strings.Contains(v, "frame 3/12") || !strings.Contains(v, "temple") {
		t.Fatalf("view missing counters: %q", v)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !cancelled {
		t.Fatal("q should cancel the job")
	}

	m, cmd := m.Update(doneMsg{err: context.Canceled})
	if cmd == nil {
		t.Fatal("done should quit")
	}
	if v := m.View(); !strings.Contains(v, "failed") {
		t.Fatalf("view should show the failure: %q", v)
	}
}

func TestModelResizeClampsBar(t *testing.T) {
	var m tea.Model = newModel("x", func() {})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if w := m.(model).bar.Width; w != 22 {
		t.Fatalf("bar width = %d, want 22", w)
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 400, Height: 10})
	if w := m.(model).bar.Width; w != barWidth {
		t.Fatalf("bar width = %d, want %d", w, barWidth)
	}
}

func TestPercentWithoutTotal(t *testing.T) {
	if p := newModel("x", func() {}).percent(); p != 0 {
		t.Fatalf("percent = %v", p)
	}
}

func TestRunPlainLogsTenths(t *testing.T) {
	t.Cleanup(func() { logging.SetLogger(nil) })
	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	err := Run(t.Context(), "pentagon", nil, false, func(ctx context.Context, report func(int, int)) error {
		for i := 1; i <= 100; i++ {
			report(i, 100)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "msg=progress"); n != 11 {
		t.Fatalf("logged %d progress lines, want 11:\n%s", n, out)
	}
	if !strings.Contains(out, "job=pentagon") || !strings.Contains(out, "msg=done") {
		t.Fatalf("missing job attrs:\n%s", out)
	}
}

func TestRunPlainReturnsJobError(t *testing.T) {
	boom := errors.New("boom")
	err := Run(t.Context(), "x", nil, false, func(context.Context, func(int, int)) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}
