package preview

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelWindow is how many recent samples the meter reads per frame.
const levelWindow = 2048

// voiceTap passes the narration through to the speaker and keeps the most
// recent samples for the level meter. Stream runs on the speaker goroutine,
// levels on the ebiten one.
type voiceTap struct {
	beep.Streamer

	mu    sync.Mutex
	ring  [][2]float64
	head  int // next write position
	count int // samples held, at most len(ring)
}

func newVoiceTap(src beep.Streamer, size int) *voiceTap {
	return &voiceTap{Streamer: src, ring: make([][2]float64, size)}
}

func (t *voiceTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Streamer.Stream(samples)
	t.mu.Lock()
	t.record(samples[:n])
	t.mu.Unlock()
	return n, ok
}

func (t *voiceTap) record(s [][2]float64) {
	size := len(t.ring)
	if size == 0 || len(s) == 0 {
		return
	}
	if len(s) > size {
		s = s[len(s)-size:]
	}
	k := copy(t.ring[t.head:], s)
	copy(t.ring, s[k:])
	t.head = (t.head + len(s)) % size
	t.count = min(size, t.count+len(s))
}

// snapshot returns up to the last n samples, oldest first.
func (t *voiceTap) snapshot(n int) [][2]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	n = min(n, t.count)
	if n <= 0 {
		return nil
	}
	out := make([][2]float64, n)
	start := (t.head - n + len(t.ring)) % len(t.ring)
	k := copy(out, t.ring[start:])
	copy(out[k:], t.ring)
	return out
}

// levels advances the meter one frame from prev.
func (t *voiceTap) levels(prev []float64, factor float64) []float64 {
	return bands(t.snapshot(levelWindow), prev, factor)
}

// bands splits samples into len(prev) segments and returns a compressed RMS
// level for each, smoothed against prev by factor.
func bands(samples [][2]float64, prev []float64, factor float64) []float64 {
	n := len(prev)
	out := make([]float64, n)
	copy(out, prev)
	if len(samples) == 0 || n == 0 {
		return out
	}
	size := max(1, len(samples)/n)
	for i := 0; i < n; i++ {
		start := i * size
		if start >= len(samples) {
			break
		}
		end := min(start+size, len(samples))
		var sum float64
		for _, s := range samples[start:end] {
			mono := (s[0] + s[1]) * 0.5
			sum += mono * mono
		}
		mag := math.Pow(math.Sqrt(sum/float64(end-start)), 0.3)
		out[i] = factor*prev[i] + (1-factor)*mag
	}
	return out
}
