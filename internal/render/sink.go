package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/logging"
)

// Sink receives finished frames in order.
type Sink interface {
	WriteFrame(i int, r *Renderer) error
	Close() error
}

// PNGSequence writes frame_00000.png, frame_00001.png, ... into Dir.
type PNGSequence struct {
	Dir string
}

// NewPNGSequence creates dir if needed.
func NewPNGSequence(dir string) (*PNGSequence, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create output dir: %w", err)
	}
	return &PNGSequence{Dir: dir}, nil
}

// FramePath is the file frame i is written to.
func (s *PNGSequence) FramePath(i int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("frame_%05d.png", i))
}

func (s *PNGSequence) WriteFrame(i int, r *Renderer) error {
	return r.Context().SavePNG(s.FramePath(i))
}

func (s *PNGSequence) Close() error { return nil }

// Memory keeps copies of every frame.
type Memory struct {
	Frames []*image.RGBA
}

func (m *Memory) WriteFrame(_ int, r *Renderer) error {
	m.Frames = append(m.Frames, r.Image())
	return nil
}

func (m *Memory) Close() error { return nil }

// Progress is told how many of total frames are done.
type Progress func(done, total int)

// RenderScene draws every frame of p into sink, stopping early when ctx is
// cancelled. The sink is closed in all cases.
func RenderScene(ctx context.Context, p *anim.Player, r *Renderer, sink Sink, progress Progress) (err error) {
	defer func() {
		err = errors.Join(err, sink.Close())
	}()
	total := p.FrameCount()
	log := logging.Logger().With("scene", p.Scene().Name)
	log.Info("render started", "frames", total, "fps", p.FPS(), "duration", p.Duration())
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn("render cancelled", "frame", i)
			return err
		}
		if err := p.Frame(i); err != nil {
			return fmt.Errorf("render: seek frame %d: %w", i, err)
		}
		if err := r.Draw(p.Scene()); err != nil {
			return err
		}
		if err := sink.WriteFrame(i, r); err != nil {
			return fmt.Errorf("render: write frame %d: %w", i, err)
		}
		if progress != nil {
			progress(i+1, total)
		}
	}
	log.Info("render finished", "frames", total)
	return nil
}
