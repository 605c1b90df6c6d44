package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/logging"
	"github.com/iburimskiy/geometry-visualization/internal/palette"
)

// Renderer rasterizes scenes onto a reusable gg canvas.
type Renderer struct {
	dc    *gg.Context
	font  *text.FontSource
	faces map[int]text.Face
}

// New allocates a width x height canvas.
func New(width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid canvas %dx%d", width, height)
	}
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &Renderer{
		dc:    gg.NewContext(width, height),
		font:  src,
		faces: make(map[int]text.Face),
	}, nil
}

// Context exposes the canvas holding the last drawn frame.
func (r *Renderer) Context() *gg.Context { return r.dc }

// Image copies the last drawn frame.
func (r *Renderer) Image() *image.RGBA {
	if img, ok := r.dc.Image().(*image.RGBA); ok {
		return img
	}
	src := r.dc.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

// Close releases the canvas.
func (r *Renderer) Close() error { return r.dc.Close() }

// Draw paints the current stage of sc over its background.
func (r *Renderer) Draw(sc *anim.Scene) error {
	r.dc.ClearWithColor(rgba(sc.Background, 1))
	items := collect(sc)
	for i := range items {
		if err := r.paint(&items[i]); err != nil {
			return fmt.Errorf("render: %s item %d: %w", sc.Name, i, err)
		}
	}
	logging.Logger().Debug("frame drawn", "scene", sc.Name, "items", len(items))
	return nil
}

func (r *Renderer) paint(it *item) error {
	dc := r.dc
	switch it.kind {
	case kindDot:
		if it.radius <= 0 {
			return nil
		}
		dc.DrawCircle(it.points[0].X, it.points[0].Y, it.radius)
		setRGBA(dc, it.fill, it.fillAlpha)
		return dc.Fill()
	case kindLabel:
		r.drawLabel(it)
		return nil
	}

	if it.fillAlpha > 0 {
		r.trace(it.points, true)
		setRGBA(dc, it.fill, it.fillAlpha)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	if it.strokeAlpha > 0 && it.width > 0 {
		r.trace(it.points, it.closed)
		dc.SetLineWidth(it.width)
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		if it.sheen {
			dc.SetStrokeBrush(gg.NewLinearGradientBrush(it.sheenFrom.X, it.sheenFrom.Y, it.sheenTo.X, it.sheenTo.Y).
				AddColorStop(0, rgba(it.stroke, it.strokeAlpha)).
				AddColorStop(1, rgba(it.sheenColor, it.strokeAlpha)))
		} else {
			setRGBA(dc, it.stroke, it.strokeAlpha)
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) trace(pts []pt, closed bool) {
	r.dc.ClearPath()
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	if closed {
		r.dc.ClosePath()
	}
}

// drawLabel lays out the full text to place it, then draws only the
// revealed runs so text does not drift while it is written.
func (r *Renderer) drawLabel(it *item) {
	dc := r.dc
	dc.SetFont(r.face(it.size))
	l := it.label
	w, h := dc.MeasureString(l.String())
	x := it.points[0].X - w*l.AlignX
	top := it.points[0].Y - h*l.AlignY
	baseline := top + h*0.8
	for _, run := range l.Visible() {
		setRGBA(dc, run.Color, l.Opacity)
		dc.DrawString(run.Text, x, baseline)
		rw, _ := dc.MeasureString(run.Text)
		x += rw
	}
}

func (r *Renderer) face(px float64) text.Face {
	key := int(math.Round(px))
	if key < 1 {
		key = 1
	}
	f, ok := r.faces[key]
	if !ok {
		f = r.font.Face(float64(key))
		r.faces[key] = f
	}
	return f
}

func setRGBA(dc *gg.Context, c palette.Color, alpha float64) {
	v := rgba(c, alpha)
	dc.SetRGBA(v.R, v.G, v.B, v.A)
}

func rgba(c palette.Color, alpha float64) gg.RGBA {
	c = c.Clamped()
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: math.Max(0, math.Min(1, alpha))}
}
