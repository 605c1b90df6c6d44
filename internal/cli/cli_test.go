package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/geometry-visualization/internal/logging"
	"github.com/iburimskiy/geometry-visualization/internal/scenes"
)

func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logging.SetLogger(nil) })
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env"), "--log-level", "warn"}, args...))
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestList(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := execute(t, t.Context(), "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range scenes.Names() {
		if !strings.Contains(out, name) {
			t.Fatalf("list output missing %s:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "14.0s") || !strings.Contains(out, "Circles to Temple") {
		t.Fatalf("list output missing duration or title:\n%s", out)
	}
}

func TestRenderWritesFrames(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out, err := execute(t, t.Context(), "render", "hidden-five-reveal", "--width", "32", "--height", "18", "--fps", "2", "-o", "frames", "-q")
	if err != nil {
		t.Fatal(err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "frames", "hidden-five-reveal", "frame_*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 21 {
		t.Fatalf("wrote %d frames, want 21", len(files))
	}
	if !strings.Contains(out, "21 frames") {
		t.Fatalf("summary missing: %q", out)
	}
}

func TestRenderCancelled(t *testing.T) {
	t.Chdir(t.TempDir())
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := execute(t, ctx, "render", "odd-symmetry", "--quality", "low", "-q")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestStill(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		suffix string
		marker string
	}{
		{"png", []string{"still", "circles-to-temple", "--at", "2.5"}, "circles-to-temple_002.50s.png", "\x89PNG"},
		{"svg from end", []string{"still", "pattern-of-five", "--at", "-1", "--format", "svg"}, "pattern-of-five_016.50s.svg", "<svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			args := append([]string{"--width", "64", "--height", "36", "--fps", "4"}, tt.args...)
			out, err := execute(t, t.Context(), args...)
			if err != nil {
				t.Fatal(err)
			}
			path := strings.TrimSpace(out)
			if filepath.Base(path) != tt.suffix {
				t.Fatalf("path = %q, want %s", path, tt.suffix)
			}
			data, err := os.ReadFile(filepath.Join(dir, path))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte(tt.marker)) && !bytes.Contains(data, []byte(tt.marker)) {
				t.Fatalf("%s does not look like %s", path, tt.name)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"unknown scene", []string{"still", "spiral"}, scenes.ErrUnknownScene},
		{"unknown scene in render", []string{"render", "spiral"}, scenes.ErrUnknownScene},
		{"bad quality", []string{"list", "--quality", "ultra"}, nil},
		{"bad format", []string{"still", "odd-symmetry", "--format", "gif"}, nil},
		{"missing argument", []string{"render"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			_, err := execute(t, t.Context(), tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("err = %v, want %v", err, tt.is)
			}
		})
	}
}
