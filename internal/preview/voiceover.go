package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/geometry-visualization/internal/config"
)

// ErrUnsupportedAudio is returned for files that are not wav, mp3 or flac.
var ErrUnsupportedAudio = errors.New("preview: unsupported audio file")

// voiceover is a narration track kept in step with the timeline.
type voiceover struct {
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *voiceTap
	ended    atomic.Bool
}

// decode opens path and picks the decoder from its extension.
func decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedAudio, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("preview: decode %s: %w", path, err)
	}
	return f, streamer, format, nil
}

func newVoiceover(path string) (*voiceover, error) {
	f, streamer, format, err := decode(path)
	if err != nil {
		return nil, err
	}
	t := newVoiceTap(streamer, config.VisualRingSize)
	return &voiceover{
		path:     path,
		file:     f,
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: t},
		tap:      t,
	}, nil
}

func (v *voiceover) duration() time.Duration {
	return v.format.SampleRate.D(v.streamer.Len())
}

// play hands the track to the speaker, which must already run at the
// track's sample rate.
func (v *voiceover) play() {
	v.ended.Store(false)
	speaker.Play(beep.Seq(v.ctrl, beep.Callback(func() { v.ended.Store(true) })))
}

func (v *voiceover) setPaused(paused bool) {
	speaker.Lock()
	v.ctrl.Paused = paused
	speaker.Unlock()
}

// seek moves the track to timeline position t. A track that already ran out
// is queued again.
func (v *voiceover) seek(t float64) error {
	pos := v.format.SampleRate.N(seconds(t))
	pos = max(0, min(pos, v.streamer.Len()-1))
	speaker.Lock()
	err := v.streamer.Seek(pos)
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("preview: seek voiceover: %w", err)
	}
	if v.ended.Load() && t < v.duration().Seconds() {
		v.play()
	}
	return nil
}

func (v *voiceover) close() {
	_ = v.streamer.Close()
	_ = v.file.Close()
}

// speakerState tracks the one speaker the process may open.
type speakerState struct {
	rate beep.SampleRate
}

// prepare initializes the speaker for rate, or clears it when it already
// runs. Reinitializing happens only when the rate changes.
func (s *speakerState) prepare(rate beep.SampleRate) error {
	bufferSize := rate.N(time.Second / 20)
	switch {
	case s.rate == 0:
		if err := speaker.Init(rate, bufferSize); err != nil {
			return fmt.Errorf("preview: speaker: %w", err)
		}
	case s.rate != rate:
		speaker.Clear()
		if err := speaker.Init(rate, bufferSize); err != nil {
			return fmt.Errorf("preview: speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	s.rate = rate
	return nil
}
