package shape

import "github.com/iburimskiy/geometry-visualization/internal/palette"

// Glow wraps s in halo layers: copies of its outline, each wider and fainter
// than the previous, without fill. Layer i (from 0) has width
// maxWidth*(i+1)/layers and opacity baseOpacity*(1-i/layers). The returned
// group holds the layers followed by s itself, so s draws on top.
func Glow(s *Shape, c palette.Color, layers int, maxWidth, baseOpacity float64) *Shape {
	g := Group()
	g.Name = "glow"
	for i := 0; i < layers; i++ {
		width := maxWidth * float64(i+1) / float64(layers)
		opacity := baseOpacity * (1 - float64(i)/float64(layers))
		layer := s.Copy().SetStroke(c, width, opacity).SetFillOpacity(0)
		layer.Name = "glow-layer"
		g.Add(layer)
	}
	g.Add(s)
	return g
}

// Halos returns the glow layers of a Glow group, everything but the last child.
func Halos(g *Shape) *Shape {
	if len(g.Children) == 0 {
		return Group()
	}
	return g.Slice(0, -1)
}
