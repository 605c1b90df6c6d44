// Package render turns the stage of a scene into pixels with gg, or into
// SVG for stills, and hands finished frames to sinks.
package render

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/camera"
	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
	"github.com/iburimskiy/geometry-visualization/internal/shape"
)

// strokeScale converts stroke units to scene units.
const strokeScale = 0.01

// light points from the scene toward the key light.
var light = r3.Unit(geom.Vec{X: -7, Y: -9, Z: 10})

type kind int

const (
	kindPath kind = iota
	kindDot
	kindFace
	kindLabel
)

type pt struct{ X, Y float64 }

// item is one primitive ready to paint, in pixel space.
type item struct {
	kind   kind
	points []pt
	closed bool

	stroke      palette.Color
	strokeAlpha float64
	width       float64

	fill      palette.Color
	fillAlpha float64

	// Sheen gradient from sheenFrom to sheenTo, stroke color to sheenColor.
	sheen              bool
	sheenFrom, sheenTo pt
	sheenColor         palette.Color

	radius float64
	depth  float64

	label *shape.Label
	size  float64
}

// collect flattens the stage into paint order. Consecutive solid leaves are
// depth sorted together, far faces first.
func collect(sc *anim.Scene) []item {
	cam := sc.Camera
	ppu := cam.PixelsPerUnit()
	var out, faces []item
	flush := func() {
		sort.SliceStable(faces, func(i, j int) bool { return faces[i].depth < faces[j].depth })
		out = append(out, faces...)
		faces = faces[:0]
	}
	for _, m := range members(sc.Stage()) {
		switch {
		case m.Solid:
			faces = append(faces, solidFaces(cam, m)...)
		case m.Label != nil:
			flush()
			if it, ok := labelItem(cam, m); ok {
				out = append(out, it)
			}
		case m.DotRadius > 0:
			flush()
			if it, ok := dotItem(cam, m); ok {
				out = append(out, it)
			}
		default:
			flush()
			out = append(out, pathItems(cam, m, ppu)...)
		}
	}
	flush()
	return out
}

// members flattens the stage into family members, keeping only the last
// occurrence of a member shared by several entries.
func members(stage []*shape.Shape) []*shape.Shape {
	var all []*shape.Shape
	for _, top := range stage {
		all = append(all, top.Family()...)
	}
	seen := make(map[*shape.Shape]bool, len(all))
	out := make([]*shape.Shape, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if !seen[all[i]] {
			seen[all[i]] = true
			out = append(out, all[i])
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func project(cam *camera.Camera, pts []geom.Vec) []pt {
	out := make([]pt, len(pts))
	for i, p := range pts {
		x, y, _ := cam.Project(p)
		out[i] = pt{x, y}
	}
	return out
}

func pathItems(cam *camera.Camera, m *shape.Shape, ppu float64) []item {
	if m.Drawn <= 0 {
		return nil
	}
	strokeAlpha := m.Stroke.Opacity
	if m.Stroke.Width <= 0 {
		strokeAlpha = 0
	}
	if strokeAlpha <= 0 && m.Fill.Opacity <= 0 {
		return nil
	}
	var out []item
	for _, p := range m.Paths {
		pts := p.Points
		closed := p.Closed
		if m.Drawn < 1 {
			pts = geom.Partial(pts, p.Closed, 0, m.Drawn)
			closed = false
		}
		if len(pts) < 2 {
			continue
		}
		it := item{
			kind:        kindPath,
			points:      project(cam, pts),
			closed:      closed,
			stroke:      m.Stroke.Color,
			strokeAlpha: strokeAlpha,
			width:       m.Stroke.Width * strokeScale * ppu,
			fill:        m.Fill.Color,
		}
		if len(pts) >= 3 {
			it.fillAlpha = m.Fill.Opacity
		}
		if m.Sheen != 0 {
			applySheen(&it, cam, m, pts)
		}
		out = append(out, it)
	}
	return out
}

// applySheen spans the gradient over the projected extent of pts along the
// sheen direction.
func applySheen(it *item, cam *camera.Camera, m *shape.Shape, pts []geom.Vec) {
	lo, hi, ok := geom.Bounds(pts)
	if !ok {
		return
	}
	c := geom.Lerp(lo, hi, 0.5)
	half := r3.Scale(0.5, r3.Sub(hi, lo))
	dir := m.SheenDir
	if r3.Norm(dir) == 0 {
		return
	}
	dir = r3.Unit(dir)
	reach := math.Abs(dir.X*half.X) + math.Abs(dir.Y*half.Y) + math.Abs(dir.Z*half.Z)
	x0, y0, _ := cam.Project(r3.Sub(c, r3.Scale(reach, dir)))
	x1, y1, _ := cam.Project(r3.Add(c, r3.Scale(reach, dir)))
	it.sheen = true
	it.sheenFrom, it.sheenTo = pt{x0, y0}, pt{x1, y1}
	if m.Sheen > 0 {
		it.sheenColor = palette.Lighten(m.Stroke.Color, math.Min(m.Sheen, 1))
	} else {
		it.sheenColor = palette.Shade(m.Stroke.Color, 1+m.Sheen)
	}
}

func dotItem(cam *camera.Camera, m *shape.Shape) (item, bool) {
	if len(m.Paths) == 0 || len(m.Paths[0].Points) == 0 || m.Fill.Opacity <= 0 || m.Drawn <= 0 {
		return item{}, false
	}
	x, y, z := cam.Project(m.Paths[0].Points[0])
	q := cam.Orient(m.Paths[0].Points[0])
	r := m.DotRadius * cam.PixelsPerUnit() * cam.Perspective(q.Z)
	return item{
		kind:      kindDot,
		points:    []pt{{x, y}},
		fill:      m.Fill.Color,
		fillAlpha: m.Fill.Opacity,
		radius:    r,
		depth:     z,
	}, true
}

func solidFaces(cam *camera.Camera, m *shape.Shape) []item {
	if m.Drawn <= 0 {
		return nil
	}
	ppu := cam.PixelsPerUnit()
	var out []item
	for _, p := range m.Paths {
		if len(p.Points) < 3 {
			continue
		}
		depth := cam.Orient(geom.Centroid(p.Points)).Z
		lit := 0.35 + 0.65*math.Abs(r3.Dot(geom.Normal(p.Points), light))
		out = append(out, item{
			kind:        kindFace,
			points:      project(cam, p.Points),
			closed:      true,
			stroke:      palette.Shade(m.Stroke.Color, lit),
			strokeAlpha: m.Stroke.Opacity * m.Drawn,
			width:       m.Stroke.Width * strokeScale * ppu,
			fill:        palette.Shade(m.Fill.Color, lit),
			fillAlpha:   m.Fill.Opacity * m.Drawn,
			depth:       depth,
		})
	}
	return out
}

func labelItem(cam *camera.Camera, m *shape.Shape) (item, bool) {
	l := m.Label
	if l.Opacity <= 0 || l.Reveal <= 0 || l.Size <= 0 {
		return item{}, false
	}
	x, y, _ := cam.Project(l.Anchor)
	q := cam.Orient(l.Anchor)
	return item{
		kind:   kindLabel,
		points: []pt{{x, y}},
		label:  l,
		size:   l.Size * cam.PixelsPerUnit() * cam.Perspective(q.Z),
	}, true
}
