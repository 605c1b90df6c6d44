package preview

import (
	"fmt"
	"image/color"
	"math"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hueColor converts HSV (hue 0-360, saturation and value 0-1) to an opaque color
// with the given alpha.
func hueColor(h, s, v float64, alpha uint8) color.RGBA {
	r, g, b := colorful.Hsv(math.Mod(h, 360), s, v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// seconds converts a timeline position to a duration.
func seconds(t float64) time.Duration {
	return time.Duration(t * float64(time.Second))
}
