package shape

import (
	"fmt"
	"math"

	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
)

// PlaneOptions configure a polar grid.
type PlaneOptions struct {
	RadiusMax  float64
	RadiusStep float64
	// Divisions is the number of azimuth spokes, labeled in degrees.
	Divisions  int
	Color      palette.Color
	Opacity    float64
	LabelSize  float64
	LabelColor palette.Color
}

// PolarPlane builds a faint polar grid: circles every RadiusStep up to
// RadiusMax, spokes every 360/Divisions degrees and, when LabelSize is set,
// degree and radius labels.
func PolarPlane(o PlaneOptions) *Shape {
	plane := Group()
	plane.Name = "polar-plane"
	if o.RadiusStep <= 0 || o.RadiusMax < 0 || o.Divisions < 1 {
		plane.err = fmt.Errorf("%w: polar plane %+v", geom.ErrInvalidGeometry, o)
		return plane
	}

	rings := Group()
	for r := o.RadiusStep; r <= o.RadiusMax+1e-9; r += o.RadiusStep {
		rings.Add(Circle(r, o.Color).SetStroke(o.Color, 2, o.Opacity))
	}
	spokes := Group()
	for i := 0; i < o.Divisions; i++ {
		a := 2 * math.Pi * float64(i) / float64(o.Divisions)
		spokes.Add(Line(geom.Origin, geom.Polar(o.RadiusMax, a), o.Color).SetStroke(o.Color, 2, o.Opacity))
	}
	plane.Add(rings, spokes)

	if o.LabelSize > 0 {
		labels := Group()
		for i := 0; i < o.Divisions; i++ {
			deg := 360 * i / o.Divisions
			a := float64(deg) * geom.Degrees
			l := Plain(o.LabelSize, fmt.Sprintf("%d°", deg), o.LabelColor)
			l.Label.Anchor = geom.Polar(o.RadiusMax+o.LabelSize*1.4, a)
			labels.Add(l)
		}
		for r := o.RadiusStep; r < o.RadiusMax; r += o.RadiusStep {
			l := Plain(o.LabelSize, fmt.Sprintf("%g", r), o.LabelColor)
			l.Label.Anchor = geom.Vec{X: r, Y: -o.LabelSize * 0.8}
			labels.Add(l)
		}
		plane.Add(labels)
	}
	return plane
}
