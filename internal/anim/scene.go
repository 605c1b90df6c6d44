package anim

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/geometry-visualization/internal/camera"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
	"github.com/iburimskiy/geometry-visualization/internal/shape"
)

// ErrNegativeDuration is recorded when a play or wait step is given a
// negative run time.
var ErrNegativeDuration = errors.New("anim: negative duration")

// Run times one play step. A zero Time means one second; a nil Rate keeps
// each animation's own easing.
type Run struct {
	Time float64
	Rate RateFunc
}

// For is a Run of d seconds.
func For(d float64) Run { return Run{Time: d} }

// With overrides the easing of every animation in the step.
func (r Run) With(rate RateFunc) Run {
	r.Rate = rate
	return r
}

type step struct {
	anims   []Animation
	runTime float64
	action  func(*Scene)
}

// Scene is a recorded timeline of steps plus the live display list they
// act on when a Player replays them.
type Scene struct {
	Name       string
	Background palette.Color
	Camera     *camera.Camera

	stage []*shape.Shape
	steps []step
	errs  []error
}

// NewScene starts an empty timeline filmed by cam on a black background.
func NewScene(name string, cam *camera.Camera) *Scene {
	return &Scene{Name: name, Background: palette.Black, Camera: cam}
}

// Play appends a step running anims together.
func (s *Scene) Play(run Run, anims ...Animation) {
	if run.Time < 0 {
		s.fail(fmt.Errorf("%w: play %v", ErrNegativeDuration, run.Time))
		return
	}
	if run.Time == 0 {
		run.Time = 1
	}
	for _, a := range anims {
		for _, t := range a.Shapes() {
			s.check(t)
		}
		if run.Rate != nil {
			a.setRate(run.Rate)
		}
	}
	s.steps = append(s.steps, step{anims: anims, runTime: run.Time})
}

// Wait appends a pause of d seconds during which only updaters run.
func (s *Scene) Wait(d float64) {
	if d < 0 {
		s.fail(fmt.Errorf("%w: wait %v", ErrNegativeDuration, d))
		return
	}
	s.steps = append(s.steps, step{runTime: d})
}

// Add puts shapes on stage at this point of the timeline.
func (s *Scene) Add(shapes ...*shape.Shape) {
	for _, sh := range shapes {
		s.check(sh)
	}
	s.steps = append(s.steps, step{action: func(sc *Scene) {
		for _, sh := range shapes {
			sc.add(sh)
		}
	}})
}

// Remove takes shapes off stage at this point of the timeline.
func (s *Scene) Remove(shapes ...*shape.Shape) {
	s.steps = append(s.steps, step{action: func(sc *Scene) {
		for _, sh := range shapes {
			sc.remove(sh)
		}
	}})
}

// SetCameraOrientation points the camera at this point of the timeline.
func (s *Scene) SetCameraOrientation(phi, theta float64) {
	s.steps = append(s.steps, step{action: func(sc *Scene) {
		sc.Camera.SetOrientation(phi, theta)
	}})
}

// BeginAmbientRotation starts the camera orbit at this point of the timeline.
func (s *Scene) BeginAmbientRotation(rate float64) {
	s.steps = append(s.steps, step{action: func(sc *Scene) {
		sc.Camera.BeginAmbientRotation(rate)
	}})
}

// Redraw returns a shape rebuilt by draw on every frame it is on stage.
func (s *Scene) Redraw(draw func() *shape.Shape) *shape.Shape {
	sh := draw()
	s.check(sh)
	return sh.SetUpdater(func(m *shape.Shape) { m.Become(draw()) })
}

// Err reports every problem recorded while the timeline was built.
func (s *Scene) Err() error { return errors.Join(s.errs...) }

// Duration is the total run time of the timeline.
func (s *Scene) Duration() float64 {
	var d float64
	for _, st := range s.steps {
		d += st.runTime
	}
	return d
}

// Stage lists the top-level shapes on stage in draw order.
func (s *Scene) Stage() []*shape.Shape { return s.stage }

func (s *Scene) fail(err error) { s.errs = append(s.errs, err) }

func (s *Scene) check(sh *shape.Shape) {
	if err := sh.Err(); err != nil {
		s.fail(fmt.Errorf("shape %q: %w", sh.Name, err))
	}
}

// add puts sh on stage unless it is already there, directly or inside a
// group. Top-level entries that sh covers are taken off first so nothing is
// drawn twice.
func (s *Scene) add(sh *shape.Shape) {
	for _, m := range s.stage {
		if covers(m, sh) {
			return
		}
	}
	kept := s.stage[:0:0]
	for _, m := range s.stage {
		if !covers(sh, m) {
			kept = append(kept, m)
		}
	}
	s.stage = append(kept, sh)
}

// covers reports whether m, or every leaf of m, belongs to the family of sh.
func covers(sh, m *shape.Shape) bool {
	if sh.Contains(m) {
		return true
	}
	if len(m.Children) == 0 {
		return false
	}
	for _, c := range m.Children {
		if !covers(sh, c) {
			return false
		}
	}
	return true
}

// remove takes sh off stage. Groups holding sh are split so their other
// members stay.
func (s *Scene) remove(sh *shape.Shape) {
	s.stage = without(s.stage, sh)
}

func without(list []*shape.Shape, target *shape.Shape) []*shape.Shape {
	var out []*shape.Shape
	for _, m := range list {
		switch {
		case m == target:
		case m.Contains(target):
			out = append(out, without(m.Children, target)...)
		default:
			out = append(out, m)
		}
	}
	return out
}

func (s *Scene) update(dt float64) {
	s.Camera.Tick(dt)
	for _, m := range s.stage {
		m.Update()
	}
}
