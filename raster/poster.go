package raster

import "github.com/simukka/backdrop/background"

// FrameInterval is the timestamp step between headless frames, in
// milliseconds.
const FrameInterval = 1000.0 / 60

// Poster describes a headless render of one effect.
type Poster struct {
	Effect        string
	Width, Height int
	Frames        int

	// Seed fixes the random draws. Zero seeds from the clock.
	Seed uint32

	Pointer background.Point
}

// Render runs a fresh engine on a raster canvas for p.Frames frames and
// returns the surface. An unknown effect leaves the surface blank.
func Render(p Poster) *Canvas {
	host := &Host{Width: p.Width, Height: p.Height}
	sched := background.NewManualScheduler()
	engine := background.New(background.Options{
		Host:      host,
		Scheduler: sched,
		Seed:      p.Seed,
	})

	engine.CreateSurface()
	engine.MovePointer(p.Pointer.X, p.Pointer.Y)
	engine.SwitchByName(p.Effect)

	for i := 0; i < p.Frames; i++ {
		if sched.Step(float64(i)*FrameInterval) == 0 {
			break
		}
	}
	engine.Stop()
	return host.Canvas()
}
