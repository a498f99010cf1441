//go:build !js

// Command preview runs the background engine in a desktop window. Left and
// right arrows cycle effects, Space pauses the optional audio track and Esc
// quits.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/simukka/backdrop/background"
	"github.com/simukka/backdrop/notify"
	"github.com/simukka/backdrop/prefs"
	"github.com/simukka/backdrop/raster"
	"github.com/simukka/backdrop/spectrum"
)

const (
	visualizerWidth  = 256
	visualizerHeight = 48
	visualizerMargin = 16
)

type preview struct {
	engine *background.Engine
	sched  *background.ManualScheduler
	host   *raster.Host
	note   notify.Notifier

	width, height int
	started       time.Time

	ctrl   *beep.Ctrl
	tap    *spectrum.Tap
	bars   *raster.Canvas
	barImg *ebiten.Image

	mu    sync.Mutex
	title string
}

func (p *preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		p.engine.SwitchEffect(p.engine.Active().Step(1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		p.engine.SwitchEffect(p.engine.Active().Step(-1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = !p.ctrl.Paused
		speaker.Unlock()
	}

	x, y := ebiten.CursorPosition()
	p.engine.MovePointer(float64(x), float64(y))

	p.sched.Step(float64(time.Since(p.started).Milliseconds()))

	p.mu.Lock()
	title := p.title
	p.mu.Unlock()
	ebiten.SetWindowTitle(title)
	return nil
}

func (p *preview) Draw(screen *ebiten.Image) {
	if c := p.host.Canvas(); c != nil {
		if px := c.PixelData(); len(px) == 4*p.width*p.height {
			screen.WritePixels(px)
		}
	}

	if p.tap == nil {
		return
	}
	spectrum.Draw(p.bars, p.tap.Levels(spectrum.DefaultBarCount*4))
	p.barImg.WritePixels(premultiply(p.bars.PixelData()))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(visualizerMargin, float64(p.height-visualizerHeight-visualizerMargin))
	screen.DrawImage(p.barImg, op)
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != p.width || outsideHeight != p.height {
		p.width, p.height = outsideWidth, outsideHeight
		p.engine.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (p *preview) setTitle(light bool) {
	mode := "dark"
	if light {
		mode = "light"
	}
	p.mu.Lock()
	p.title = "Backdrop preview (" + mode + ") - arrows: switch, space: pause, esc: quit"
	p.mu.Unlock()
}

// playAudio decodes path and starts it on the speaker behind a tap.
func (p *preview) playAudio(path string) error {
	streamer, format, err := spectrum.Open(path)
	if err != nil {
		return err
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		streamer.Close()
		return err
	}

	p.tap = spectrum.NewTap(streamer, spectrum.RingSize)
	p.ctrl = &beep.Ctrl{Streamer: p.tap}
	p.bars = raster.New(visualizerWidth, visualizerHeight)
	p.barImg = ebiten.NewImage(visualizerWidth, visualizerHeight)

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		streamer.Close()
		p.note.Show("Track finished", notify.Info, notify.DefaultDuration)
	})))
	return nil
}

// premultiply converts straight RGBA to the premultiplied form ebiten expects.
func premultiply(px []uint8) []uint8 {
	out := make([]uint8, len(px))
	for i := 0; i+3 < len(px); i += 4 {
		a := uint16(px[i+3])
		out[i] = uint8(uint16(px[i]) * a / 255)
		out[i+1] = uint8(uint16(px[i+1]) * a / 255)
		out[i+2] = uint8(uint16(px[i+2]) * a / 255)
		out[i+3] = px[i+3]
	}
	return out
}

func openStore(path string, note notify.Notifier) (prefs.Storage, func()) {
	if path == "" {
		var err error
		if path, err = prefs.DefaultDBPath(); err != nil {
			notify.Warn(note, "No config dir, preference will not be saved")
			return prefs.NewMemoryStorage(), func() {}
		}
	}
	store, err := prefs.OpenSQLite(path)
	if err != nil {
		log.Printf("[PREVIEW] %v", err)
		notify.Warn(note, "Could not open settings, preference will not be saved")
		return prefs.NewMemoryStorage(), func() {}
	}
	return store, func() { store.Close() }
}

func main() {
	width := flag.Int("width", 1200, "window width")
	height := flag.Int("height", 800, "window height")
	effect := flag.String("effect", "", "effect to show instead of the saved one")
	audioPath := flag.String("audio", "", "wav, mp3 or flac file to play with a visualizer")
	dbPath := flag.String("db", "", "settings database (default: user config dir)")
	seed := flag.Uint("seed", 0, "random seed (0 = clock)")
	debug := flag.Bool("debug", false, "log engine debug output")
	flag.Parse()

	note := notify.LogNotifier{Logger: log.Default()}
	store, closeStore := openStore(*dbPath, note)
	defer closeStore()

	p := &preview{
		sched:   background.NewManualScheduler(),
		note:    note,
		started: time.Now(),
		width:   *width,
		height:  *height,
	}
	p.host = &raster.Host{Width: *width, Height: *height, OnLightMode: p.setTitle}
	p.engine = background.New(background.Options{
		Host:        p.host,
		Scheduler:   p.sched,
		Preferences: prefs.EffectPreference{Store: store},
		Seed:        uint32(*seed),
		Debug:       *debug,
	})
	p.engine.Start(background.EffectParticles)
	if *effect != "" {
		p.engine.SwitchByName(*effect)
	}

	if *audioPath != "" {
		if err := p.playAudio(*audioPath); err != nil {
			log.Printf("[PREVIEW] %v", err)
			notify.Fail(note, "Could not play "+*audioPath)
		}
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("[PREVIEW] %v", err)
		closeStore()
		os.Exit(1)
	}
}
