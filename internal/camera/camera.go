// Package camera maps scene space to pixels: a fixed 8-unit-tall frame,
// an optional 3D orientation with perspective and an ambient orbit.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/geometry-visualization/internal/geom"
)

const (
	// FrameHeight is the visible height of the frame in scene units.
	FrameHeight = 8.0
	// FocalDistance sets the strength of the 3D perspective.
	FocalDistance = 20.0
)

// Camera projects scene points onto a PixelWidth x PixelHeight image.
//
// Phi is the polar angle from the z axis, Theta the azimuth and Gamma the
// roll. The default orientation, phi = 0 and theta = -90 degrees, looks
// straight down the z axis and leaves x and y untouched.
type Camera struct {
	PixelWidth  int
	PixelHeight int

	Phi, Theta, Gamma float64

	// AmbientRate is the orbit speed around the z axis in radians per second.
	AmbientRate float64
	ambient     bool
}

// New returns a camera in the default orientation.
func New(width, height int) *Camera {
	return &Camera{
		PixelWidth:  width,
		PixelHeight: height,
		Theta:       -90 * geom.Degrees,
	}
}

// FrameWidth is the visible width of the frame in scene units.
func (c *Camera) FrameWidth() float64 {
	return FrameHeight * float64(c.PixelWidth) / float64(c.PixelHeight)
}

// PixelsPerUnit converts scene units to pixels.
func (c *Camera) PixelsPerUnit() float64 {
	return float64(c.PixelHeight) / FrameHeight
}

// SetOrientation points the camera.
func (c *Camera) SetOrientation(phi, theta float64) {
	c.Phi, c.Theta = phi, theta
}

// BeginAmbientRotation starts orbiting at rate radians per second.
func (c *Camera) BeginAmbientRotation(rate float64) {
	c.AmbientRate = rate
	c.ambient = true
}

// Orbiting reports whether an ambient rotation is active.
func (c *Camera) Orbiting() bool { return c.ambient }

// Tick advances the ambient orbit by dt seconds.
func (c *Camera) Tick(dt float64) {
	if c.ambient {
		c.Theta += c.AmbientRate * dt
	}
}

// Flat reports whether the camera is in the default orientation, where the
// projection is a plain 2D mapping.
func (c *Camera) Flat() bool {
	return c.Phi == 0 && c.Gamma == 0 && math.Abs(c.Theta+90*geom.Degrees) < 1e-12
}

// Orient rotates p into camera space: z toward the viewer.
func (c *Camera) Orient(p geom.Vec) geom.Vec {
	p = geom.RotateAbout(p, -c.Theta-90*geom.Degrees, geom.Out, geom.Origin)
	p = geom.RotateAbout(p, -c.Phi, geom.Right, geom.Origin)
	return geom.RotateAbout(p, c.Gamma, geom.Out, geom.Origin)
}

// Project returns pixel coordinates of p and its depth; larger depth is
// closer to the viewer.
func (c *Camera) Project(p geom.Vec) (x, y, depth float64) {
	q := c.Orient(p)
	f := c.Perspective(q.Z)
	ppu := c.PixelsPerUnit()
	x = float64(c.PixelWidth)/2 + q.X*f*ppu
	y = float64(c.PixelHeight)/2 - q.Y*f*ppu
	return x, y, q.Z
}

// Perspective is the scale applied to a point at camera-space depth z.
func (c *Camera) Perspective(z float64) float64 {
	if c.Flat() {
		return 1
	}
	d := FocalDistance - z
	if d < 1e-3 {
		d = 1e-3
	}
	return FocalDistance / d
}

// ViewDir is the unit vector from the scene toward the viewer in world space.
func (c *Camera) ViewDir() geom.Vec {
	v := geom.RotateAbout(geom.Out, -c.Gamma, geom.Out, geom.Origin)
	v = geom.RotateAbout(v, c.Phi, geom.Right, geom.Origin)
	v = geom.RotateAbout(v, c.Theta+90*geom.Degrees, geom.Out, geom.Origin)
	return r3.Unit(v)
}
