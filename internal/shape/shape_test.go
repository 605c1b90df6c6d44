package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestGlowLayers(t *testing.T) {
	base := Circle(2.5, palette.Gold).SetStrokeWidth(5)
	g := Glow(base, palette.Gold, 4, 20, 0.4)

	if len(g.Children) != 5 {
		t.Fatalf("glow has %d children, want 5", len(g.Children))
	}
	if g.Last() != base {
		t.Fatalf("original shape must be the last child")
	}
	for i, layer := range g.Children[:4] {
		wantW := 20 * float64(i+1) / 4
		wantO := 0.4 * (1 - float64(i)/4)
		if !approx(layer.Stroke.Width, wantW) {
			t.Errorf("layer %d width = %v, want %v", i, layer.Stroke.Width, wantW)
		}
		if !approx(layer.Stroke.Opacity, wantO) {
			t.Errorf("layer %d opacity = %v, want %v", i, layer.Stroke.Opacity, wantO)
		}
		if layer.Fill.Opacity != 0 {
			t.Errorf("layer %d fill opacity = %v, want 0", i, layer.Fill.Opacity)
		}
	}
	if base.Stroke.Width != 5 {
		t.Errorf("base width changed to %v", base.Stroke.Width)
	}
	if h := Halos(g); len(h.Children) != 4 {
		t.Errorf("Halos returned %d layers, want 4", len(h.Children))
	}
}

func TestMoveToAndScaleKeepCenter(t *testing.T) {
	c := Circle(1, palette.White).MoveTo(geom.Vec{X: 3, Y: -2})
	if got := c.Center(); !approx(got.X, 3) || !approx(got.Y, -2) {
		t.Fatalf("center = %v, want (3, -2)", got)
	}
	c.Scale(0.5)
	if got := c.Center(); !approx(got.X, 3) || !approx(got.Y, -2) {
		t.Fatalf("scale moved center to %v", got)
	}
	if w := c.Width(); !approx(w, 1) {
		t.Fatalf("width after scale = %v, want 1", w)
	}
}

func TestNextToStacksOnTop(t *testing.T) {
	base := Cube(1, palette.Gold).Stretch(0.4, 2)
	spire := Cone(0.5, 1, palette.Gold).NextTo(base, geom.Out, 0)
	_, baseHi := base.Bounds()
	spireLo, _ := spire.Bounds()
	if !approx(spireLo.Z, baseHi.Z) {
		t.Fatalf("spire floor %v, want base top %v", spireLo.Z, baseHi.Z)
	}
	if c := spire.Center(); !approx(c.X, 0) || !approx(c.Y, 0) {
		t.Fatalf("spire not centered over base: %v", c)
	}
}

func TestCopyIsDeep(t *testing.T) {
	g := Group(Circle(1, palette.White), Plain(0.5, "n = 1", palette.Orange))
	c := g.Copy()
	c.Shift(geom.Vec{X: 1}).SetColor(palette.Pink)
	if g.Center().X != 0 {
		t.Errorf("shifting the copy moved the original")
	}
	if g.Children[1].Label.Runs[0].Color != palette.Orange {
		t.Errorf("recoloring the copy changed the original label")
	}
}

func TestInterpolateHalfway(t *testing.T) {
	s := Circle(1, palette.Black)
	a := s.Copy()
	b := s.Copy().Shift(geom.Vec{X: 2}).SetStrokeOpacity(0)
	Interpolate(s, a, b, 0.5)
	if c := s.Center(); !approx(c.X, 1) {
		t.Errorf("center x = %v, want 1", c.X)
	}
	if !approx(s.Stroke.Opacity, 0.5) {
		t.Errorf("opacity = %v, want 0.5", s.Stroke.Opacity)
	}
}

func TestInvalidGeometrySurfacesInErr(t *testing.T) {
	g := Group(Circle(1, palette.White), Circle(-1, palette.White))
	if err := g.Err(); !errors.Is(err, geom.ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
	if err := Circle(1, palette.White).Err(); err != nil {
		t.Fatalf("valid circle reported %v", err)
	}
}

func TestLabelVisibleRunes(t *testing.T) {
	l := Text(1, Run{Text: "r = cos(", Color: palette.White}, Run{Text: "n", Color: palette.Orange}, Run{Text: "θ)", Color: palette.White}).Label
	l.Reveal = 0.5
	var got string
	for _, r := range l.Visible() {
		got += r.Text
	}
	if got != "r = co" {
		t.Fatalf("half reveal = %q", got)
	}
	l.Reveal = 1
	if n := len(l.Visible()); n != 3 {
		t.Fatalf("full reveal has %d runs, want 3", n)
	}
}

func TestToCornerAlignsTopLeft(t *testing.T) {
	l := Plain(0.5, "x", palette.White).ToCorner(14, 8, geom.UL, 0.5)
	if l.Label.AlignX != 0 || l.Label.AlignY != 0 {
		t.Fatalf("align = (%v, %v), want (0, 0)", l.Label.AlignX, l.Label.AlignY)
	}
	if !approx(l.Label.Anchor.X, -6.5) || !approx(l.Label.Anchor.Y, 3.5) {
		t.Fatalf("anchor = %v, want (-6.5, 3.5)", l.Label.Anchor)
	}
}

func TestUpdaterSuspension(t *testing.T) {
	calls := 0
	s := Circle(1, palette.White).SetUpdater(func(*Shape) { calls++ })
	s.Update()
	s.Suspend()
	s.Update()
	s.Resume()
	s.Update()
	if calls != 2 {
		t.Fatalf("updater ran %d times, want 2", calls)
	}
}

func TestPolarPlane(t *testing.T) {
	tests := []struct {
		name          string
		opts          PlaneOptions
		rings, spokes int
		labels        int
		invalid       bool
	}{
		{"rings and spokes", PlaneOptions{RadiusMax: 4, RadiusStep: 1, Divisions: 12, Opacity: 0.3}, 4, 12, 0, false},
		{"labeled", PlaneOptions{RadiusMax: 3, RadiusStep: 1, Divisions: 8, LabelSize: 0.2}, 3, 8, 8 + 2, false},
		{"zero step", PlaneOptions{RadiusMax: 4, Divisions: 12}, 0, 0, 0, true},
		{"no spokes", PlaneOptions{RadiusMax: 4, RadiusStep: 1}, 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PolarPlane(tt.opts)
			if tt.invalid {
				if err := p.Err(); !errors.Is(err, geom.ErrInvalidGeometry) {
					t.Fatalf("Err = %v, want ErrInvalidGeometry", err)
				}
				return
			}
			if err := p.Err(); err != nil {
				t.Fatal(err)
			}
			if got := len(p.Children[0].Children); got != tt.rings {
				t.Fatalf("rings = %d, want %d", got, tt.rings)
			}
			if got := len(p.Children[1].Children); got != tt.spokes {
				t.Fatalf("spokes = %d, want %d", got, tt.spokes)
			}
			if tt.labels == 0 {
				if len(p.Children) != 2 {
					t.Fatalf("unlabeled plane has %d parts", len(p.Children))
				}
				return
			}
			if got := len(p.Children[2].Children); got != tt.labels {
				t.Fatalf("labels = %d, want %d", got, tt.labels)
			}
			if w := p.Children[0].Children[len(p.Children[0].Children)-1].Width(); !approx(w, 2*tt.opts.RadiusMax) {
				t.Fatalf("outer ring width = %v, want %v", w, 2*tt.opts.RadiusMax)
			}
		})
	}
}
