// Package shape is the scene graph: styled polylines, dots, solids and text
// labels arranged in groups that animations move, restyle and reveal.
package shape

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
)

// Stroke styles the outline of a shape. Width is in stroke units, one unit
// being a hundredth of a scene unit.
type Stroke struct {
	Color   palette.Color
	Width   float64
	Opacity float64
}

// Fill styles the interior of closed paths and solid faces.
type Fill struct {
	Color   palette.Color
	Opacity float64
}

// Path is one polyline of a shape.
type Path struct {
	Points []geom.Vec
	Closed bool
}

// Shape is a node of the scene graph. Leaves carry geometry, groups carry
// children; style setters always apply to the whole family.
type Shape struct {
	Name  string
	Paths []Path

	Stroke Stroke
	Fill   Fill

	// Sheen brightens the stroke toward SheenDir by the given factor.
	Sheen    float64
	SheenDir geom.Vec

	// DotRadius > 0 draws the single point of Paths as a disc facing the camera.
	DotRadius float64

	// Solid leaves are closed faces of a 3D mesh, depth sorted and lit.
	Solid bool

	Label *Label

	Children []*Shape

	// Drawn is the proportion of each path currently visible, in [0, 1].
	Drawn float64

	updater   func(*Shape)
	suspended int
	err       error
}

func newLeaf(name string) *Shape {
	return &Shape{
		Name:     name,
		Drawn:    1,
		SheenDir: geom.UR,
		Stroke:   Stroke{Color: palette.White, Width: 4, Opacity: 1},
		Fill:     Fill{Color: palette.White},
	}
}

// Group collects shapes. Children are shared, not copied.
func Group(children ...*Shape) *Shape {
	g := newLeaf("group")
	g.Stroke.Width = 0
	g.Children = append(g.Children, children...)
	return g
}

// Add appends children to s.
func (s *Shape) Add(children ...*Shape) *Shape {
	s.Children = append(s.Children, children...)
	return s
}

// Slice returns a new group holding children [i, j) of s, mirroring the
// "all layers but the last" selections made on glow groups.
func (s *Shape) Slice(i, j int) *Shape {
	if j < 0 {
		j += len(s.Children)
	}
	return Group(s.Children[i:j]...)
}

// Last returns the final child, or s itself when it has none.
func (s *Shape) Last() *Shape {
	if len(s.Children) == 0 {
		return s
	}
	return s.Children[len(s.Children)-1]
}

// Family lists s and all descendants in draw order.
func (s *Shape) Family() []*Shape {
	out := []*Shape{s}
	for _, c := range s.Children {
		out = append(out, c.Family()...)
	}
	return out
}

// Leaves lists the family members without children.
func (s *Shape) Leaves() []*Shape {
	var out []*Shape
	for _, m := range s.Family() {
		if len(m.Children) == 0 {
			out = append(out, m)
		}
	}
	return out
}

// Contains reports whether other is s or one of its descendants.
func (s *Shape) Contains(other *Shape) bool {
	for _, m := range s.Family() {
		if m == other {
			return true
		}
	}
	return false
}

// Err returns the first construction error found in the family.
func (s *Shape) Err() error {
	var errs []error
	for _, m := range s.Family() {
		if m.err != nil {
			errs = append(errs, m.err)
		}
	}
	return errors.Join(errs...)
}

// Points gathers every point of the family, label anchors included.
func (s *Shape) Points() []geom.Vec {
	var pts []geom.Vec
	for _, m := range s.Family() {
		for _, p := range m.Paths {
			pts = append(pts, p.Points...)
		}
		if m.Label != nil {
			pts = append(pts, m.Label.Anchor)
		}
	}
	return pts
}

// Bounds is the axis-aligned box of the family's points.
func (s *Shape) Bounds() (lo, hi geom.Vec) {
	lo, hi, _ = geom.Bounds(s.Points())
	return lo, hi
}

// Center is the middle of the bounding box.
func (s *Shape) Center() geom.Vec {
	lo, hi := s.Bounds()
	return geom.Lerp(lo, hi, 0.5)
}

// Bottom is the center of the lower (minimum y) face of the bounding box.
func (s *Shape) Bottom() geom.Vec {
	c := s.Center()
	lo, _ := s.Bounds()
	c.Y = lo.Y
	return c
}

// Width is the x extent of the bounding box.
func (s *Shape) Width() float64 {
	lo, hi := s.Bounds()
	return hi.X - lo.X
}

// Copy deep copies the family. Updaters are not carried over.
func (s *Shape) Copy() *Shape {
	c := *s
	c.updater = nil
	c.suspended = 0
	c.Paths = make([]Path, len(s.Paths))
	for i, p := range s.Paths {
		c.Paths[i] = Path{Points: append([]geom.Vec(nil), p.Points...), Closed: p.Closed}
	}
	if s.Label != nil {
		l := *s.Label
		l.Runs = append([]Run(nil), s.Label.Runs...)
		c.Label = &l
	}
	c.Children = make([]*Shape, len(s.Children))
	for i, ch := range s.Children {
		c.Children[i] = ch.Copy()
	}
	return &c
}

// Become replaces the geometry and style of s with a copy of other, keeping
// its identity and updater.
func (s *Shape) Become(other *Shape) *Shape {
	upd, susp := s.updater, s.suspended
	*s = *other.Copy()
	s.updater, s.suspended = upd, susp
	return s
}

// apply maps every point of the family through f.
func (s *Shape) apply(f func(geom.Vec) geom.Vec) {
	for _, m := range s.Family() {
		for i := range m.Paths {
			for j, p := range m.Paths[i].Points {
				m.Paths[i].Points[j] = f(p)
			}
		}
		if m.Label != nil {
			m.Label.Anchor = f(m.Label.Anchor)
		}
	}
}

// Shift translates the family by v.
func (s *Shape) Shift(v geom.Vec) *Shape {
	s.apply(func(p geom.Vec) geom.Vec { return r3.Add(p, v) })
	return s
}

// MoveTo centers the family on p.
func (s *Shape) MoveTo(p geom.Vec) *Shape {
	return s.Shift(r3.Sub(p, s.Center()))
}

// Scale scales the family around its center.
func (s *Shape) Scale(f float64) *Shape {
	return s.ScaleAbout(f, s.Center())
}

// ScaleAbout scales the family around about. Dot radii and label sizes
// scale along; stroke widths do not.
func (s *Shape) ScaleAbout(f float64, about geom.Vec) *Shape {
	s.apply(func(p geom.Vec) geom.Vec { return geom.ScaleAbout(p, geom.Uniform(f), about) })
	for _, m := range s.Family() {
		m.DotRadius *= math.Abs(f)
		if m.Label != nil {
			m.Label.Size *= math.Abs(f)
		}
	}
	return s
}

// Stretch scales only along dim (0 = x, 1 = y, 2 = z) around the center.
func (s *Shape) Stretch(f float64, dim int) *Shape {
	factor := geom.Uniform(1)
	switch dim {
	case 0:
		factor.X = f
	case 1:
		factor.Y = f
	default:
		factor.Z = f
	}
	c := s.Center()
	s.apply(func(p geom.Vec) geom.Vec { return geom.ScaleAbout(p, factor, c) })
	return s
}

// Rotate turns the family around its center in the screen plane.
func (s *Shape) Rotate(angle float64) *Shape {
	return s.RotateAbout(angle, geom.Out, s.Center())
}

// RotateAbout turns the family by angle around axis through about.
func (s *Shape) RotateAbout(angle float64, axis, about geom.Vec) *Shape {
	s.apply(func(p geom.Vec) geom.Vec { return geom.RotateAbout(p, angle, axis, about) })
	return s
}

// NextTo places s against other on the side given by dir, buff units away.
// Axes not named by dir are centered on other.
func (s *Shape) NextTo(other *Shape, dir geom.Vec, buff float64) *Shape {
	olo, ohi := other.Bounds()
	slo, shi := s.Bounds()
	oc, sc := geom.Lerp(olo, ohi, 0.5), geom.Lerp(slo, shi, 0.5)
	axis := func(d, olo, ohi, slo, shi, oc, sc float64) float64 {
		switch {
		case d > 0:
			return ohi + buff - slo
		case d < 0:
			return olo - buff - shi
		default:
			return oc - sc
		}
	}
	return s.Shift(geom.Vec{
		X: axis(dir.X, olo.X, ohi.X, slo.X, shi.X, oc.X, sc.X),
		Y: axis(dir.Y, olo.Y, ohi.Y, slo.Y, shi.Y, oc.Y, sc.Y),
		Z: axis(dir.Z, olo.Z, ohi.Z, slo.Z, shi.Z, oc.Z, sc.Z),
	})
}

// SetUpdater installs a function run on every frame while s is on stage.
func (s *Shape) SetUpdater(f func(*Shape)) *Shape {
	s.updater = f
	return s
}

// Suspend pauses the updaters of the family; calls nest.
func (s *Shape) Suspend() {
	for _, m := range s.Family() {
		m.suspended++
	}
}

// Resume undoes one Suspend.
func (s *Shape) Resume() {
	for _, m := range s.Family() {
		if m.suspended > 0 {
			m.suspended--
		}
	}
}

// Update runs the active updaters of the family.
func (s *Shape) Update() {
	for _, m := range s.Family() {
		if m.updater != nil && m.suspended == 0 {
			m.updater(m)
		}
	}
}
