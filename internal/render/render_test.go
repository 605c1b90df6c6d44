package render

import (
	"bytes"
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/camera"
	"github.com/iburimskiy/geometry-visualization/internal/geom"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
	"github.com/iburimskiy/geometry-visualization/internal/shape"
)

func dotScene() (*anim.Scene, error) {
	s := anim.NewScene("dot", camera.New(80, 80))
	s.Add(shape.Dot(geom.Origin, 1, palette.White))
	s.Wait(0.5)
	return s, nil
}

func TestDrawDot(t *testing.T) {
	p, err := anim.NewPlayer(dotScene, 10)
	if err != nil {
		t.Fatal(err)
	}
	r, err := New(80, 80)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if err := r.Draw(p.Scene()); err != nil {
		t.Fatal(err)
	}
	img := r.Image()
	if c := img.RGBAAt(40, 40); c.R < 200 || c.G < 200 || c.B < 200 {
		t.Fatalf("center pixel = %v, want white", c)
	}
	if c := img.RGBAAt(2, 2); c.R > 10 {
		t.Fatalf("corner pixel = %v, want background", c)
	}
}

func TestRenderSceneToMemory(t *testing.T) {
	p, err := anim.NewPlayer(dotScene, 10)
	if err != nil {
		t.Fatal(err)
	}
	r, err := New(80, 80)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	var mem Memory
	var last int
	err = RenderScene(context.Background(), p, r, &mem, func(done, total int) { last = done })
	if err != nil {
		t.Fatal(err)
	}
	if len(mem.Frames) != 5 || last != 5 {
		t.Fatalf("frames = %d, progress = %d, want 5", len(mem.Frames), last)
	}
}

func TestRenderSceneCancelled(t *testing.T) {
	p, err := anim.NewPlayer(dotScene, 10)
	if err != nil {
		t.Fatal(err)
	}
	r, err := New(80, 80)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var mem Memory
	if err := RenderScene(ctx, p, r, &mem, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(mem.Frames) != 0 {
		t.Fatalf("wrote %d frames after cancel", len(mem.Frames))
	}
}

func TestPNGSequenceNames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	s, err := NewPNGSequence(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.FramePath(7), filepath.Join(dir, "frame_00007.png"); got != want {
		t.Fatalf("FramePath(7) = %q, want %q", got, want)
	}
}

func TestCollectSortsSolidFaces(t *testing.T) {
	s := anim.NewScene("solid", camera.New(100, 100))
	cam := s.Camera
	cam.SetOrientation(70*geom.Degrees, -45*geom.Degrees)
	p, err := anim.NewPlayer(func() (*anim.Scene, error) {
		s.Add(shape.Cube(1, palette.Gold))
		return s, nil
	}, 10)
	if err != nil {
		t.Fatal(err)
	}
	items := collect(p.Scene())
	if len(items) != 6 {
		t.Fatalf("items = %d, want 6 faces", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].depth < items[i-1].depth {
			t.Fatalf("faces not sorted far to near at %d", i)
		}
	}
	// The nearest face sits half a side from the center along its normal.
	nearest := math.Inf(-1)
	for _, n := range []geom.Vec{geom.Right, geom.Left, geom.Up, geom.Down, geom.Out, geom.In} {
		nearest = math.Max(nearest, cam.Orient(r3.Scale(0.5, n)).Z)
	}
	if got := items[len(items)-1].depth; math.Abs(got-nearest) > 1e-9 {
		t.Fatalf("nearest face depth = %v, want %v", got, nearest)
	}
}

func TestPartialPathAndHiddenShapes(t *testing.T) {
	s := anim.NewScene("partial", camera.New(100, 100))
	c := shape.Circle(1, palette.Teal).SetDrawn(0.5)
	hidden := shape.Circle(2, palette.Teal).SetOpacity(0)
	s.Add(c, hidden)
	p, err := anim.NewPlayer(func() (*anim.Scene, error) { return s, nil }, 10)
	if err != nil {
		t.Fatal(err)
	}
	items := collect(p.Scene())
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].closed {
		t.Fatal("a partially drawn outline should stay open")
	}
}

func TestWriteSVG(t *testing.T) {
	s := anim.NewScene("still", camera.New(160, 90))
	s.Add(
		shape.Circle(1, palette.Blue),
		shape.Line(geom.Left, geom.Right, palette.Gold).SetDrawn(0.5),
		shape.Dot(geom.Up, 0.1, palette.Pink),
		shape.Text(0.3, shape.Run{Text: "φ = ", Color: palette.White}, shape.Run{Text: "1.618", Color: palette.YellowD}),
	)
	p, err := anim.NewPlayer(func() (*anim.Scene, error) { return s, nil }, 10)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, p.Scene()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "<polygon", "<polyline", "<circle", "1.618", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg output lacks %q", want)
		}
	}
}
