// Package palette holds the named colors shared by the scenes and the
// helpers used to parse and blend them.
package palette

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with components in [0, 1].
type Color = colorful.Color

// ErrInvalidColor is returned for hex strings that cannot be parsed.
var ErrInvalidColor = errors.New("palette: invalid color")

// Standard colors, matching the values the scene scripts were tuned against.
var (
	White   = MustParse("#FFFFFF")
	Black   = MustParse("#000000")
	Yellow  = MustParse("#FFFF00")
	YellowD = MustParse("#F4D345")
	Gold    = MustParse("#F0AC5F")
	Pink    = MustParse("#D147BD")
	Teal    = MustParse("#5CD0B3")
	Orange  = MustParse("#FF862F")
	RedD    = MustParse("#CF5044")
	Blue    = MustParse("#58C4DD")
	BlueE   = MustParse("#1C758A")
)

var named = map[string]Color{
	"white":    White,
	"black":    Black,
	"yellow":   Yellow,
	"yellow_d": YellowD,
	"gold":     Gold,
	"pink":     Pink,
	"teal":     Teal,
	"orange":   Orange,
	"red_d":    RedD,
	"blue":     Blue,
	"blue_e":   BlueE,
}

// Parse accepts "#RRGGBB", "#RGB" or one of the named colors above.
func Parse(s string) (Color, error) {
	if c, ok := named[s]; ok {
		return c, nil
	}
	return parseHex(s)
}

// MustParse parses a hex literal; it panics on malformed input.
func MustParse(s string) Color {
	c, err := parseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return c, nil
}

// Lerp blends a toward b in RGB space, t in [0, 1].
func Lerp(a, b Color, t float64) Color {
	return a.BlendRgb(b, t).Clamped()
}

// Lighten moves c toward white by amount.
func Lighten(c Color, amount float64) Color {
	return Lerp(c, White, amount)
}

// Shade scales the brightness of c, used for lit 3D faces.
func Shade(c Color, factor float64) Color {
	return Color{R: c.R * factor, G: c.G * factor, B: c.B * factor}.Clamped()
}
