package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
)

// WriteSVG writes the current stage of sc as a vector still. Sheen is
// flattened to the base stroke color.
func WriteSVG(w io.Writer, sc *anim.Scene) error {
	cam := sc.Camera
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(float64(cam.PixelWidth), float64(cam.PixelHeight))
	canvas.Title(sc.Name)
	canvas.Rect(0, 0, float64(cam.PixelWidth), float64(cam.PixelHeight), "fill:"+sc.Background.Hex())
	for _, it := range collect(sc) {
		switch it.kind {
		case kindDot:
			canvas.Circle(it.points[0].X, it.points[0].Y, it.radius,
				fill(it.fill, it.fillAlpha))
		case kindLabel:
			writeLabel(canvas, it)
		default:
			xs, ys := coords(it.points)
			if it.fillAlpha > 0 {
				canvas.Polygon(xs, ys, fill(it.fill, it.fillAlpha))
			}
			if it.strokeAlpha > 0 && it.width > 0 {
				style := stroke(it.stroke, it.strokeAlpha, it.width)
				if it.closed {
					canvas.Polygon(xs, ys, style)
				} else {
					canvas.Polyline(xs, ys, style)
				}
			}
		}
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("render: write svg: %w", ew.err)
	}
	return nil
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func writeLabel(canvas *svg.SVG, it item) {
	l := it.label
	anchor := "start"
	switch {
	case l.AlignX >= 0.75:
		anchor = "end"
	case l.AlignX >= 0.25:
		anchor = "middle"
	}
	baseline := it.points[0].Y - it.size*l.AlignY + it.size*0.8
	canvas.Textspan(it.points[0].X, baseline, "",
		fmt.Sprintf("font-family:Go,sans-serif;font-size:%.1fpx;text-anchor:%s;fill-opacity:%.3f", it.size, anchor, l.Opacity))
	for _, run := range l.Visible() {
		canvas.Span(run.Text, "fill:"+run.Color.Clamped().Hex())
	}
	canvas.TextEnd()
}

func coords(pts []pt) (xs, ys []float64) {
	xs, ys = make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func fill(c palette.Color, alpha float64) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f;stroke:none", c.Clamped().Hex(), alpha)
}

func stroke(c palette.Color, alpha, width float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.3f;stroke-width:%.2f;stroke-linecap:round;stroke-linejoin:round",
		c.Clamped().Hex(), alpha, width)
}
