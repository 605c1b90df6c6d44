package shape

import (
	"strings"

	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
)

// Run is a span of label text in one color.
type Run struct {
	Text  string
	Color palette.Color
}

// Label is text anchored at a point of the scene. AlignX and AlignY pick the
// point of the text box placed on Anchor: (0, 0) top-left, (0.5, 0.5) center.
type Label struct {
	Runs    []Run
	Anchor  geom.Vec
	AlignX  float64
	AlignY  float64
	Size    float64
	Opacity float64
	Reveal  float64
}

// String joins the runs.
func (l *Label) String() string {
	var b strings.Builder
	for _, r := range l.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Visible cuts the runs down to the revealed proportion of runes.
func (l *Label) Visible() []Run {
	total := 0
	for _, r := range l.Runs {
		total += len([]rune(r.Text))
	}
	keep := int(float64(total)*clamp01(l.Reveal) + 0.5)
	var out []Run
	for _, r := range l.Runs {
		if keep <= 0 {
			break
		}
		rs := []rune(r.Text)
		if len(rs) > keep {
			rs = rs[:keep]
		}
		keep -= len(rs)
		out = append(out, Run{Text: string(rs), Color: r.Color})
	}
	return out
}

// Text is a label of em height size, centered on the origin.
func Text(size float64, runs ...Run) *Shape {
	s := newLeaf("text")
	s.Stroke.Width = 0
	s.Label = &Label{
		Runs:    runs,
		AlignX:  0.5,
		AlignY:  0.5,
		Size:    size,
		Opacity: 1,
		Reveal:  1,
	}
	return s
}

// Plain is a single-color label.
func Plain(size float64, text string, c palette.Color) *Shape {
	return Text(size, Run{Text: text, Color: c})
}

// ToCorner pins a label to a frame corner with a margin, aligning the text
// box corner that faces it.
func (s *Shape) ToCorner(frameWidth, frameHeight float64, corner geom.Vec, margin float64) *Shape {
	if s.Label == nil {
		return s
	}
	s.Label.Anchor = geom.Vec{
		X: corner.X * (frameWidth/2 - margin),
		Y: corner.Y * (frameHeight/2 - margin),
	}
	s.Label.AlignX = (1 + corner.X) / 2
	s.Label.AlignY = (1 - corner.Y) / 2
	return s
}

// Below anchors a label under another one, sharing its horizontal alignment.
func (s *Shape) Below(other *Shape, gap float64) *Shape {
	if s.Label == nil || other.Label == nil {
		return s
	}
	o := other.Label
	s.Label.AlignX = o.AlignX
	s.Label.AlignY = 0
	s.Label.Anchor = geom.Vec{
		X: o.Anchor.X,
		Y: o.Anchor.Y - (1-o.AlignY)*o.Size - gap,
		Z: o.Anchor.Z,
	}
	return s
}
