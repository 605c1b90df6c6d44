package palette

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-3 }

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		r, g, b float64
	}{
		{"hex6", "#FFD700", 1, 215.0 / 255, 0},
		{"hex3", "#fff", 1, 1, 1},
		{"named", "teal", Teal.R, Teal.G, Teal.B},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if !near(c.R, tt.r) || !near(c.G, tt.g) || !near(c.B, tt.b) {
				t.Errorf("Parse(%q) = %v, want (%v, %v, %v)", tt.in, c, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("not-a-color")
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a, b := Yellow, Pink
	if got := Lerp(a, b, 0); !near(got.R, a.R) || !near(got.G, a.G) || !near(got.B, a.B) {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); !near(got.R, b.R) || !near(got.G, b.G) || !near(got.B, b.B) {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	mid := Lerp(Black, White, 0.5)
	if !near(mid.R, 0.5) {
		t.Errorf("Lerp(black, white, 0.5).R = %v, want 0.5", mid.R)
	}
	// Channels blend independently in RGB.
	rb := Lerp(Color{R: 1}, Color{B: 1}, 0.5)
	if !near(rb.R, 0.5) || !near(rb.G, 0) || !near(rb.B, 0.5) {
		t.Errorf("Lerp(red, blue, 0.5) = %v, want (0.5, 0, 0.5)", rb)
	}
}

func TestShadeClamps(t *testing.T) {
	c := Shade(White, 2)
	if c.R > 1 || c.G > 1 || c.B > 1 {
		t.Errorf("Shade overflowed: %v", c)
	}
}
