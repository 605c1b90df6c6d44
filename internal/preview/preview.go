// Package preview plays a scene in a window in real time, optionally in step
// with a voiceover track.
package preview

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/geometry-visualization/internal/anim"
	"github.com/iburimskiy/geometry-visualization/internal/config"
	"github.com/iburimskiy/geometry-visualization/internal/logging"
	"github.com/iburimskiy/geometry-visualization/internal/render"
)

const levelBands = 32

// Options configures a preview window.
type Options struct {
	Title     string
	Width     int
	Height    int
	FPS       int
	Voiceover string
}

// Game is the ebiten game driving one scene.
type Game struct {
	title    string
	player   *anim.Player
	renderer *render.Renderer
	frame    *ebiten.Image
	dirty    bool

	voice   *voiceover
	audio   speakerState
	levels  []float64

	// progress bar
	barHovered  bool
	barDragging bool
	lastSeek    time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	paused  bool
	notice  string
	lastErr error
}

// NewGame builds the scene and an off-screen renderer for it.
func NewGame(build anim.Builder, opts Options) (*Game, error) {
	p, err := anim.NewPlayer(build, opts.FPS)
	if err != nil {
		return nil, err
	}
	r, err := render.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	g := &Game{
		title:    opts.Title,
		player:   p,
		renderer: r,
		frame:    ebiten.NewImage(opts.Width, opts.Height),
		dirty:    true,
		levels:   make([]float64, levelBands),
		prevKey:  map[ebiten.Key]bool{},
	}
	if opts.Voiceover != "" {
		if err := g.loadVoiceover(opts.Voiceover); err != nil {
			_ = r.Close()
			return nil, err
		}
	}
	return g, nil
}

// Run opens the window and blocks until it is closed.
func Run(build anim.Builder, opts Options) error {
	g, err := NewGame(build, opts)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(opts.Title + " - Space: pause, R: restart, ←/→: seek, O: voiceover, S: save, Esc/Q: quit")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Close releases the renderer and the voiceover.
func (g *Game) Close() {
	if g.voice != nil {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
		g.voice.close()
		g.voice = nil
	}
	_ = g.renderer.Close()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.report(g.openVoiceoverDialog())
		}
		g.buttonPressed = false
	}

	g.barHovered = barHit(mouseX, mouseY, config.WindowWidth, config.WindowHeight)
	if g.barHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.barDragging = true
		if err := g.seek(barFraction(mouseX, config.WindowWidth) * g.player.Duration()); err != nil {
			return err
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.barDragging = false
	}
	if g.barDragging && time.Since(g.lastSeek) >= 50*time.Millisecond {
		want := barFraction(mouseX, config.WindowWidth)
		if math.Abs(want-g.progress()) > 0.01 {
			if err := g.seek(want * g.player.Duration()); err != nil {
				return err
			}
		}
	}

	keys := map[ebiten.Key]bool{}
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyR, ebiten.KeyLeft, ebiten.KeyRight, ebiten.KeyO, ebiten.KeyS, ebiten.KeyEscape, ebiten.KeyQ} {
		keys[k] = justPressed(k)
	}
	if keys[ebiten.KeyEscape] || keys[ebiten.KeyQ] {
		return ebiten.Termination
	}
	if keys[ebiten.KeySpace] {
		g.togglePause()
	}
	if keys[ebiten.KeyR] {
		if err := g.restart(); err != nil {
			return err
		}
	}
	if keys[ebiten.KeyLeft] {
		if err := g.seek(g.player.Time() - config.SeekStep); err != nil {
			return err
		}
	}
	if keys[ebiten.KeyRight] {
		if err := g.seek(g.player.Time() + config.SeekStep); err != nil {
			return err
		}
	}
	if keys[ebiten.KeyO] {
		g.report(g.openVoiceoverDialog())
	}
	if keys[ebiten.KeyS] {
		g.report(g.saveFrameDialog())
	}

	if !g.paused && !g.barDragging {
		if err := g.player.Advance(1 / float64(ebiten.TPS())); err != nil {
			return err
		}
		g.dirty = true
		if g.player.Done() {
			g.setPaused(true)
		}
	}
	if g.voice != nil {
		g.levels = g.voice.tap.levels(g.levels, config.SmoothingFactor)
	}
	if g.dirty {
		if err := g.renderer.Draw(g.player.Scene()); err != nil {
			return err
		}
		g.frame.WritePixels(g.renderer.Image().Pix)
		g.dirty = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	w, h := g.frame.Bounds().Dx(), g.frame.Bounds().Dy()
	scale, ox, oy := fit(w, h, config.WindowWidth, config.WindowHeight)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(ox, oy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.frame, op)

	g.drawButton(screen)
	g.drawProgressBar(screen)
	g.drawLevelMeter(screen)

	var status string
	switch {
	case g.player.Done():
		status = "Finished - R or Space to replay"
	case g.paused:
		status = "Paused - Space to play"
	default:
		status = "Playing - Space to pause"
	}
	status = fmt.Sprintf("%s | %s", g.title, status)
	if g.voice != nil {
		status += " | voiceover"
	}
	if g.notice != "" {
		status += " | " + g.notice
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.ButtonX+config.ButtonWidth+16, config.ButtonY+10)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) report(err error) {
	if err != nil {
		g.lastErr = err
		logging.Logger().Warn("preview", "err", err)
	}
}

func (g *Game) progress() float64 {
	if d := g.player.Duration(); d > 0 {
		return clamp01(g.player.Time() / d)
	}
	return 0
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if g.voice != nil {
		g.voice.setPaused(paused)
	}
}

func (g *Game) togglePause() {
	if g.paused && g.player.Done() {
		g.report(g.restart())
		g.setPaused(false)
		return
	}
	g.setPaused(!g.paused)
}

func (g *Game) restart() error {
	return g.seek(0)
}

// seek moves the timeline and the voiceover to t seconds.
func (g *Game) seek(t float64) error {
	if err := g.player.Seek(t); err != nil {
		return err
	}
	g.lastSeek = time.Now()
	g.dirty = true
	if g.voice != nil {
		g.report(g.voice.seek(g.player.Time()))
	}
	return nil
}

func (g *Game) openVoiceoverDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open voiceover"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadVoiceover(filename)
}

// loadVoiceover replaces the current track and starts it at the timeline
// position.
func (g *Game) loadVoiceover(path string) error {
	v, err := newVoiceover(path)
	if err != nil {
		return err
	}
	if err := g.audio.prepare(v.format.SampleRate); err != nil {
		v.close()
		return err
	}
	if g.voice != nil {
		g.voice.close()
	}
	g.voice = v
	v.ctrl.Paused = g.paused
	if err := v.seek(g.player.Time()); err != nil {
		return err
	}
	v.play()
	g.notice = "loaded " + path
	logging.Logger().Info("voiceover loaded", "path", path, "duration", v.duration())
	return nil
}

func (g *Game) saveFrameDialog() error {
	name := fmt.Sprintf("%s_%05.2fs.png", g.player.Scene().Name, g.player.Time())
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save frame"),
		zenity.ConfirmOverwrite(),
		zenity.Filename(name),
		zenity.FileFilters{{Name: "PNG", Patterns: []string{"*.png"}}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := g.renderer.Context().SavePNG(filename); err != nil {
		return fmt.Errorf("preview: save %s: %w", filename, err)
	}
	g.notice = "saved " + filename
	logging.Logger().Info("frame saved", "path", filename, "t", g.player.Time())
	return nil
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bg color.Color
	switch {
	case g.buttonPressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case g.buttonHovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bg, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	label := "Open voiceover"
	textX := config.ButtonX + (config.ButtonWidth-len(label)*6)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, label, textX, textY)
}

func (g *Game) drawProgressBar(screen *ebiten.Image) {
	x, y, w, h := barRect(config.WindowWidth, config.WindowHeight)
	progress := g.progress()

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	if progress > 0 {
		fill := hueColor(45-45*progress, 0.9, 1, 220)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(progress*float64(w)), float32(h), fill, false)
	}
	ix := float32(float64(x) + progress*float64(w))
	iy := float32(y + h/2)
	vector.DrawFilledCircle(screen, ix, iy, 7, color.White, true)
	vector.StrokeCircle(screen, ix, iy, 7, 2, color.RGBA{R: 100, G: 110, B: 130, A: 255}, true)

	total := seconds(g.player.Duration())
	ebitenutil.DebugPrintAt(screen, formatDuration(seconds(g.player.Time())), x, y-18)
	totalText := formatDuration(total)
	ebitenutil.DebugPrintAt(screen, totalText, x+w-len(totalText)*6, y-18)

	if !g.barHovered {
		return
	}
	mouseX, mouseY := ebiten.CursorPosition()
	tip := formatDuration(time.Duration(barFraction(mouseX, config.WindowWidth) * float64(total)))
	tipW := len(tip)*6 + 10
	tipX := max(0, min(mouseX-tipW/2, config.WindowWidth-tipW))
	tipY := mouseY - 28
	vector.DrawFilledRect(screen, float32(tipX), float32(tipY), float32(tipW), 20, color.RGBA{A: 200}, false)
	vector.StrokeRect(screen, float32(tipX), float32(tipY), float32(tipW), 20, 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, tip, tipX+5, tipY+2)
}

// drawLevelMeter shows the voiceover loudness as a strip of bars in the top
// right corner.
func (g *Game) drawLevelMeter(screen *ebiten.Image) {
	if g.voice == nil {
		return
	}
	const (
		barW   = 4
		meterH = 32
	)
	x0 := config.WindowWidth - config.ProgressBarMargin - levelBands*(barW+1)
	y0 := config.ButtonY
	vector.DrawFilledRect(screen, float32(x0-2), float32(y0-2), float32(levelBands*(barW+1)+3), meterH+4, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	for i, lv := range g.levels {
		h := math.Max(1, clamp01(lv)*meterH)
		c := hueColor(50-40*clamp01(lv), 0.85, 1, uint8(120+135*clamp01(lv)))
		vector.DrawFilledRect(screen, float32(x0+i*(barW+1)), float32(float64(y0+meterH)-h), barW, float32(h), c, false)
	}
}

// barRect is the progress bar in window pixels.
func barRect(winW, winH int) (x, y, w, h int) {
	return config.ProgressBarMargin,
		winH - config.ProgressBarMargin - config.ProgressBarHeight,
		winW - 2*config.ProgressBarMargin,
		config.ProgressBarHeight
}

// barHit reports whether the cursor is over the bar, with some vertical slop.
func barHit(mx, my, winW, winH int) bool {
	x, y, w, h := barRect(winW, winH)
	return mx >= x && mx <= x+w && my >= y-config.ProgressHitSlop && my <= y+h+config.ProgressHitSlop
}

// barFraction maps a cursor x to a position along the bar.
func barFraction(mx, winW int) float64 {
	x, _, w, _ := barRect(winW, 0)
	return clamp01(float64(mx-x) / float64(w))
}

// fit scales a src-sized frame to fit dst, centered.
func fit(srcW, srcH, dstW, dstH int) (scale, offX, offY float64) {
	scale = math.Min(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))
	offX = (float64(dstW) - float64(srcW)*scale) / 2
	offY = (float64(dstH) - float64(srcH)*scale) / 2
	return scale, offX, offY
}
