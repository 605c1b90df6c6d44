package anim

import (
	"fmt"
	"math"
)

// Builder records a scene from scratch. It must be deterministic: the
// player calls it again whenever it needs to rewind.
type Builder func() (*Scene, error)

// Player replays a scene timeline at arbitrary times.
type Player struct {
	build Builder
	fps   int

	scene     *Scene
	now       float64
	idx       int
	stepStart float64
	begun     bool
}

// NewPlayer builds the scene and positions it at t = 0.
func NewPlayer(build Builder, fps int) (*Player, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("anim: fps must be positive, got %d", fps)
	}
	p := &Player{build: build, fps: fps}
	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) reset() error {
	sc, err := p.build()
	if err != nil {
		return err
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scene %q: %w", sc.Name, err)
	}
	p.scene = sc
	p.now, p.idx, p.stepStart, p.begun = 0, 0, 0, false
	p.advance(0)
	return nil
}

// Scene is the live scene at the current time.
func (p *Player) Scene() *Scene { return p.scene }

// Time is the current position in seconds.
func (p *Player) Time() float64 { return p.now }

// FPS is the frame rate frames are counted in.
func (p *Player) FPS() int { return p.fps }

// Duration is the length of the timeline in seconds.
func (p *Player) Duration() float64 { return p.scene.Duration() }

// FrameCount is the number of frames needed to cover the timeline, at
// least one.
func (p *Player) FrameCount() int {
	n := int(math.Ceil(p.Duration()*float64(p.fps) - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}

// Frame positions the scene at the start of frame i.
func (p *Player) Frame(i int) error {
	return p.Seek(float64(i) / float64(p.fps))
}

// Done reports whether every step has finished.
func (p *Player) Done() bool { return p.idx >= len(p.scene.steps) }

// Seek positions the scene at t seconds, clamped to the timeline. Seeking
// backward rebuilds the scene and replays it.
func (p *Player) Seek(t float64) error {
	t = math.Max(0, math.Min(t, p.Duration()))
	if t < p.now {
		if err := p.reset(); err != nil {
			return err
		}
	}
	p.advance(t)
	return nil
}

// Advance moves forward by dt seconds.
func (p *Player) Advance(dt float64) error {
	return p.Seek(p.now + dt)
}

// Step moves forward one frame.
func (p *Player) Step() error {
	return p.Advance(1 / float64(p.fps))
}

func (p *Player) advance(t float64) {
	sc := p.scene
	for p.idx < len(sc.steps) {
		st := sc.steps[p.idx]
		if st.action != nil {
			st.action(sc)
			p.idx++
			continue
		}
		if !p.begun {
			for _, a := range st.anims {
				a.Begin(sc)
			}
			p.begun = true
		}
		end := p.stepStart + st.runTime
		if t < end {
			alpha := (t - p.stepStart) / st.runTime
			for _, a := range st.anims {
				a.Interpolate(alpha)
			}
			p.tick(t)
			return
		}
		for _, a := range st.anims {
			a.Finish(sc)
		}
		p.tick(end)
		p.stepStart = end
		p.idx++
		p.begun = false
	}
	p.tick(t)
}

func (p *Player) tick(t float64) {
	dt := t - p.now
	if dt < 0 {
		dt = 0
	}
	p.now = t
	p.scene.update(dt)
}
