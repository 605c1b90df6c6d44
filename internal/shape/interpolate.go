package shape

import (
	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
)

// Interpolate sets dst to the blend of a and b at t. a and b are expected to
// be copies of dst that went through different transforms; any part whose
// structure differs between them snaps to b.
func Interpolate(dst, a, b *Shape, t float64) {
	dst.Stroke = Stroke{
		Color:   palette.Lerp(a.Stroke.Color, b.Stroke.Color, t),
		Width:   lerp(a.Stroke.Width, b.Stroke.Width, t),
		Opacity: clamp01(lerp(a.Stroke.Opacity, b.Stroke.Opacity, t)),
	}
	dst.Fill = Fill{
		Color:   palette.Lerp(a.Fill.Color, b.Fill.Color, t),
		Opacity: clamp01(lerp(a.Fill.Opacity, b.Fill.Opacity, t)),
	}
	dst.Sheen = lerp(a.Sheen, b.Sheen, t)
	dst.DotRadius = lerp(a.DotRadius, b.DotRadius, t)
	dst.Drawn = clamp01(lerp(a.Drawn, b.Drawn, t))

	if samePaths(a, b) && len(dst.Paths) == len(a.Paths) {
		for i := range dst.Paths {
			pa, pb := a.Paths[i].Points, b.Paths[i].Points
			if len(dst.Paths[i].Points) != len(pa) {
				dst.Paths[i].Points = make([]geom.Vec, len(pa))
			}
			for j := range pa {
				dst.Paths[i].Points[j] = geom.Lerp(pa[j], pb[j], t)
			}
		}
	} else {
		dst.Paths = b.Copy().Paths
	}

	interpolateLabel(dst, a, b, t)

	if len(dst.Children) == len(a.Children) && len(a.Children) == len(b.Children) {
		for i := range dst.Children {
			Interpolate(dst.Children[i], a.Children[i], b.Children[i], t)
		}
	}
}

// Assign copies the state of src into dst in place, keeping the identity of
// every family member that has a counterpart in src.
func Assign(dst, src *Shape) { Interpolate(dst, src, src, 0) }

func interpolateLabel(dst, a, b *Shape, t float64) {
	if a.Label == nil || b.Label == nil || dst.Label == nil {
		return
	}
	la, lb, l := a.Label, b.Label, dst.Label
	l.Anchor = geom.Lerp(la.Anchor, lb.Anchor, t)
	l.Size = lerp(la.Size, lb.Size, t)
	l.Opacity = clamp01(lerp(la.Opacity, lb.Opacity, t))
	l.Reveal = clamp01(lerp(la.Reveal, lb.Reveal, t))
	if len(la.Runs) == len(lb.Runs) && len(l.Runs) == len(la.Runs) {
		for i := range l.Runs {
			l.Runs[i].Color = palette.Lerp(la.Runs[i].Color, lb.Runs[i].Color, t)
		}
	}
}

func samePaths(a, b *Shape) bool {
	if len(a.Paths) != len(b.Paths) {
		return false
	}
	for i := range a.Paths {
		if len(a.Paths[i].Points) != len(b.Paths[i].Points) {
			return false
		}
	}
	return true
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
