//go:build !js

// Command termview runs the background engine in a terminal. Each cell
// shows two pixels with an upper half block: the foreground is the top
// pixel and the background the bottom one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/backdrop/background"
	"github.com/simukka/backdrop/prefs"
	"github.com/simukka/backdrop/raster"
)

const frameInterval = 16 * time.Millisecond

type view struct {
	screen tcell.Screen
	engine *background.Engine
	sched  *background.ManualScheduler
	host   *raster.Host
	start  time.Time
}

// pixelColor reads pixel (x, y) from straight RGBA data, darkening by alpha
// as if composited over black.
func pixelColor(px []uint8, width, x, y int) tcell.Color {
	i := (y*width + x) * 4
	if i < 0 || i+3 >= len(px) {
		return tcell.ColorBlack
	}
	a := int32(px[i+3])
	return tcell.NewRGBColor(int32(px[i])*a/255, int32(px[i+1])*a/255, int32(px[i+2])*a/255)
}

func (v *view) resize() {
	cols, rows := v.screen.Size()
	v.engine.Resize(cols, rows*2)
}

func (v *view) draw() {
	c := v.host.Canvas()
	if c == nil {
		return
	}
	w, h := c.Size()
	px := c.PixelData()
	cols, rows := v.screen.Size()
	for y := 0; y < rows && y*2 < h; y++ {
		for x := 0; x < cols && x < w; x++ {
			style := tcell.StyleDefault.
				Foreground(pixelColor(px, w, x, y*2)).
				Background(pixelColor(px, w, x, y*2+1))
			v.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	v.screen.Show()
}

// handle processes one event. It returns false to quit.
func (v *view) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRight:
			v.engine.SwitchEffect(v.engine.Active().Step(1))
		case ev.Key() == tcell.KeyLeft:
			v.engine.SwitchEffect(v.engine.Active().Step(-1))
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		v.engine.MovePointer(float64(x), float64(y*2))
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	}
	return true
}

func (v *view) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handle(ev) {
				return
			}
		case <-ticker.C:
			v.sched.Step(float64(time.Since(v.start).Milliseconds()))
			v.draw()
		}
	}
}

func main() {
	effect := flag.String("effect", "", "effect to show instead of the saved one")
	dbPath := flag.String("db", "", "settings database (default: user config dir)")
	seed := flag.Uint("seed", 0, "random seed (0 = clock)")
	flag.Parse()

	var store prefs.Storage = prefs.NewMemoryStorage()
	path := *dbPath
	if path == "" {
		path, _ = prefs.DefaultDBPath()
	}
	if path != "" {
		if db, err := prefs.OpenSQLite(path); err != nil {
			log.Printf("[TERMVIEW] %v", err)
		} else {
			defer db.Close()
			store = db
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	v := &view{
		screen: screen,
		sched:  background.NewManualScheduler(),
		host:   &raster.Host{Width: cols, Height: rows * 2},
		start:  time.Now(),
	}
	v.engine = background.New(background.Options{
		Host:        v.host,
		Scheduler:   v.sched,
		Preferences: prefs.EffectPreference{Store: store},
		Seed:        uint32(*seed),
	})
	v.engine.Start(background.EffectParticles)
	if *effect != "" {
		v.engine.SwitchByName(*effect)
	}

	v.run()
}
