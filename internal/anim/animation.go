// Package anim is the choreography layer: animations that reveal, fade,
// grow, morph and rotate shapes, the scene timeline they are played on and
// the player that steps that timeline frame by frame.
package anim

import (
	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
	"github.com/iburimskiy/geometry-visualization/internal/shape"
)

// Animation drives shapes (or trackers, or the camera) over one play step.
// Interpolate receives linear progress; the animation applies its own rate.
type Animation interface {
	Begin(s *Scene)
	Interpolate(alpha float64)
	Finish(s *Scene)

	// Shapes lists the shapes the animation moves.
	Shapes() []*shape.Shape
	setRate(RateFunc)
}

// Option tunes an animation.
type Option func(*timing)

// Rate overrides the easing of one animation.
func Rate(r RateFunc) Option { return func(t *timing) { t.rate = r } }

// Lag staggers the members of a group: each starts lag of its own duration
// after the previous one.
func Lag(l float64) Option { return func(t *timing) { t.lag = l } }

type timing struct {
	rate RateFunc
	lag  float64
}

func newTiming(def RateFunc, opts []Option) timing {
	t := timing{rate: def}
	for _, o := range opts {
		o(&t)
	}
	return t
}

func (t *timing) setRate(r RateFunc) { t.rate = r }

func (t *timing) ease(a float64) float64 {
	if t.rate == nil {
		return Smooth(a)
	}
	return t.rate(a)
}

// Create draws the outlines of target progressively, one leaf after another.
// Lag(0) draws every leaf at once.
func Create(target *shape.Shape, opts ...Option) Animation {
	return &create{timing: newTiming(Smooth, append([]Option{Lag(1)}, opts...)), target: target}
}

// Write reveals a label character by character at a constant pace.
func Write(target *shape.Shape, opts ...Option) Animation {
	return &create{timing: newTiming(Linear, opts), target: target}
}

type create struct {
	timing
	target *shape.Shape
	leaves []*shape.Shape
}

func (c *create) Shapes() []*shape.Shape { return []*shape.Shape{c.target} }

func (c *create) Begin(s *Scene) {
	s.add(c.target)
	c.target.Suspend()
	c.leaves = c.target.Leaves()
	c.target.SetDrawn(0)
}

func (c *create) Interpolate(alpha float64) {
	n := len(c.leaves)
	for i, l := range c.leaves {
		l.SetDrawn(c.ease(lagged(alpha, i, n, c.lag)))
	}
}

func (c *create) Finish(*Scene) {
	c.Interpolate(1)
	c.target.Resume()
}

// FadeIn raises target from transparent to its current opacity.
func FadeIn(target *shape.Shape, opts ...Option) Animation {
	return &fade{timing: newTiming(Smooth, opts), target: target, in: true}
}

// FadeOut lowers target to transparent and takes it off stage.
func FadeOut(target *shape.Shape, opts ...Option) Animation {
	return &fade{timing: newTiming(Smooth, opts), target: target}
}

type fade struct {
	timing
	target     *shape.Shape
	in         bool
	start, end *shape.Shape
}

func (f *fade) Shapes() []*shape.Shape { return []*shape.Shape{f.target} }

func (f *fade) Begin(s *Scene) {
	s.add(f.target)
	f.target.Suspend()
	shown, hidden := f.target.Copy(), f.target.Copy().SetOpacity(0)
	if f.in {
		f.start, f.end = hidden, shown
	} else {
		f.start, f.end = shown, hidden
	}
}

func (f *fade) Interpolate(alpha float64) {
	shape.Interpolate(f.target, f.start, f.end, f.ease(alpha))
}

func (f *fade) Finish(s *Scene) {
	f.Interpolate(1)
	f.target.Resume()
	if !f.in {
		s.remove(f.target)
		shape.Assign(f.target, f.start)
	}
}

// GrowFromCenter scales target up from a point at its center.
func GrowFromCenter(target *shape.Shape, opts ...Option) Animation {
	return &grow{timing: newTiming(Smooth, opts), target: target}
}

// GrowFromPoint scales target up from p.
func GrowFromPoint(target *shape.Shape, p geom.Vec, opts ...Option) Animation {
	return &grow{timing: newTiming(Smooth, opts), target: target, point: &p}
}

type grow struct {
	timing
	target     *shape.Shape
	point      *geom.Vec
	start, end *shape.Shape
}

func (g *grow) Shapes() []*shape.Shape { return []*shape.Shape{g.target} }

func (g *grow) Begin(s *Scene) {
	s.add(g.target)
	g.target.Suspend()
	p := g.target.Center()
	if g.point != nil {
		p = *g.point
	}
	g.end = g.target.Copy()
	g.start = g.target.Copy().ScaleAbout(0, p)
}

func (g *grow) Interpolate(alpha float64) {
	shape.Interpolate(g.target, g.start, g.end, g.ease(alpha))
}

func (g *grow) Finish(*Scene) {
	g.Interpolate(1)
	g.target.Resume()
}

// DrawBorderThenFill traces the outline during the first half and brings in
// the fill during the second.
func DrawBorderThenFill(target *shape.Shape, opts ...Option) Animation {
	return &borderFill{timing: newTiming(DoubleSmooth, opts), target: target}
}

type borderFill struct {
	timing
	target         *shape.Shape
	outline, final *shape.Shape
}

func (b *borderFill) Shapes() []*shape.Shape { return []*shape.Shape{b.target} }

func (b *borderFill) Begin(s *Scene) {
	s.add(b.target)
	b.target.Suspend()
	b.final = b.target.Copy()
	b.outline = b.target.Copy().SetFillOpacity(0)
	for _, m := range b.outline.Family() {
		m.Stroke.Width = 2
	}
}

func (b *borderFill) Interpolate(alpha float64) {
	p := b.ease(alpha)
	if p < 0.5 {
		shape.Assign(b.target, b.outline)
		b.target.SetDrawn(2 * p)
		return
	}
	shape.Interpolate(b.target, b.outline, b.final, 2*p-1)
}

func (b *borderFill) Finish(*Scene) {
	b.Interpolate(1)
	b.target.Resume()
}

// Animate morphs target into the state produced by mutate. With Lag, the
// children of target morph one after another.
func Animate(target *shape.Shape, mutate func(*shape.Shape), opts ...Option) Animation {
	return &transform{timing: newTiming(Smooth, opts), target: target, mutate: mutate}
}

type transform struct {
	timing
	target     *shape.Shape
	mutate     func(*shape.Shape)
	start, end *shape.Shape
}

func (t *transform) Shapes() []*shape.Shape { return []*shape.Shape{t.target} }

func (t *transform) Begin(s *Scene) {
	s.add(t.target)
	t.target.Suspend()
	t.start = t.target.Copy()
	t.end = t.target.Copy()
	t.mutate(t.end)
}

func (t *transform) Interpolate(alpha float64) {
	n := len(t.target.Children)
	if t.lag == 0 || n == 0 {
		shape.Interpolate(t.target, t.start, t.end, t.ease(alpha))
		return
	}
	for i, ch := range t.target.Children {
		shape.Interpolate(ch, t.start.Children[i], t.end.Children[i], t.ease(lagged(alpha, i, n, t.lag)))
	}
}

func (t *transform) Finish(*Scene) {
	t.Interpolate(1)
	t.target.Resume()
}

// Rotate turns target by angle around its center in the screen plane.
func Rotate(target *shape.Shape, angle float64, opts ...Option) Animation {
	return &rotate{timing: newTiming(Smooth, opts), target: target, angle: angle, axis: geom.Out}
}

// RotateAbout turns target by angle around axis through p.
func RotateAbout(target *shape.Shape, angle float64, axis, p geom.Vec, opts ...Option) Animation {
	return &rotate{timing: newTiming(Smooth, opts), target: target, angle: angle, axis: axis, about: &p}
}

type rotate struct {
	timing
	target *shape.Shape
	angle  float64
	axis   geom.Vec
	about  *geom.Vec
	pivot  geom.Vec
	start  *shape.Shape
}

func (r *rotate) Shapes() []*shape.Shape { return []*shape.Shape{r.target} }

func (r *rotate) Begin(s *Scene) {
	s.add(r.target)
	r.target.Suspend()
	r.start = r.target.Copy()
	r.pivot = r.target.Center()
	if r.about != nil {
		r.pivot = *r.about
	}
}

func (r *rotate) Interpolate(alpha float64) {
	turned := r.start.Copy().RotateAbout(r.angle*r.ease(alpha), r.axis, r.pivot)
	shape.Assign(r.target, turned)
}

func (r *rotate) Finish(*Scene) {
	r.Interpolate(1)
	r.target.Resume()
}

// SetValue moves a tracker to v.
func SetValue(tr *Tracker, v float64, opts ...Option) Animation {
	return &setValue{timing: newTiming(Smooth, opts), tracker: tr, to: v}
}

type setValue struct {
	timing
	tracker  *Tracker
	from, to float64
}

func (v *setValue) Shapes() []*shape.Shape { return nil }

func (v *setValue) Begin(*Scene) { v.from = v.tracker.Value() }

func (v *setValue) Interpolate(alpha float64) {
	p := v.ease(alpha)
	v.tracker.Set(v.from + (v.to-v.from)*p)
}

func (v *setValue) Finish(*Scene) { v.Interpolate(1) }

// SetColor blends a color tracker to c.
func SetColor(tr *ColorTracker, c palette.Color, opts ...Option) Animation {
	return &setColor{timing: newTiming(Smooth, opts), tracker: tr, to: c}
}

type setColor struct {
	timing
	tracker  *ColorTracker
	from, to palette.Color
}

func (c *setColor) Shapes() []*shape.Shape { return nil }

func (c *setColor) Begin(*Scene) { c.from = c.tracker.Value() }

func (c *setColor) Interpolate(alpha float64) {
	c.tracker.Set(palette.Lerp(c.from, c.to, c.ease(alpha)))
}

func (c *setColor) Finish(*Scene) { c.Interpolate(1) }

// MoveCamera swings the camera to a new orientation.
func MoveCamera(phi, theta float64, opts ...Option) Animation {
	return &moveCamera{timing: newTiming(Smooth, opts), phi: phi, theta: theta}
}

type moveCamera struct {
	timing
	scene              *Scene
	phi, theta         float64
	fromPhi, fromTheta float64
}

func (m *moveCamera) Shapes() []*shape.Shape { return nil }

func (m *moveCamera) Begin(s *Scene) {
	m.scene = s
	m.fromPhi, m.fromTheta = s.Camera.Phi, s.Camera.Theta
}

func (m *moveCamera) Interpolate(alpha float64) {
	p := m.ease(alpha)
	m.scene.Camera.SetOrientation(
		m.fromPhi+(m.phi-m.fromPhi)*p,
		m.fromTheta+(m.theta-m.fromTheta)*p,
	)
}

func (m *moveCamera) Finish(*Scene) { m.Interpolate(1) }

// LaggedStart plays anims in a staggered cascade. Its own rate is linear;
// members keep theirs.
func LaggedStart(lag float64, anims ...Animation) Animation {
	return &cascade{timing: timing{rate: Linear, lag: lag}, anims: anims}
}

type cascade struct {
	timing
	anims []Animation
}

func (c *cascade) Shapes() []*shape.Shape {
	var out []*shape.Shape
	for _, a := range c.anims {
		out = append(out, a.Shapes()...)
	}
	return out
}

func (c *cascade) Begin(s *Scene) {
	for _, a := range c.anims {
		a.Begin(s)
	}
}

func (c *cascade) Interpolate(alpha float64) {
	p := c.ease(alpha)
	n := len(c.anims)
	for i, a := range c.anims {
		a.Interpolate(lagged(p, i, n, c.lag))
	}
}

func (c *cascade) Finish(s *Scene) {
	for _, a := range c.anims {
		a.Finish(s)
	}
}
