package background

import (
	"sync"
	"time"

	"github.com/simukka/backdrop/common"
)

// Host is the environment the engine draws into.
type Host interface {
	// CreateSurface replaces any previous surface with a fresh one sized to
	// the viewport. A nil Canvas means no drawing context is available.
	CreateSurface() Canvas

	// SetLightMode flips the page-level light/dark theme.
	SetLightMode(light bool)
}

// Preferences persists the chosen effect between sessions.
type Preferences interface {
	Load(def Effect) Effect
	Save(id string)
}

// Options configures an Engine.
type Options struct {
	Host        Host
	Scheduler   Scheduler
	Preferences Preferences // optional

	// Random supplies every uniform draw. When nil a Mulberry32 source is
	// seeded from Seed, or from the clock if Seed is zero.
	Random common.Random
	Seed   uint32

	Debug bool
}

// Engine owns the background surface and drives exactly one effect loop.
type Engine struct {
	mu sync.Mutex

	host  Host
	sched Scheduler
	prefs Preferences
	rnd   common.Random

	canvas        Canvas
	width, height int
	pointer       Point

	active     Effect
	light      bool
	handle     Handle
	generation uint64
	frames     int

	particles []Particle

	gradientTime      float64
	waveTime          float64
	auroraTime        float64
	lightGradientTime float64

	// OnSwitch, when set, is called after every switch with the new effect.
	// It runs without the engine lock held.
	OnSwitch func(Effect)
}

// New creates a stopped engine. Call Start to create the surface and begin.
func New(opts Options) *Engine {
	rnd := opts.Random
	if rnd == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = uint32(time.Now().UnixNano())
		}
		rnd = common.NewSeededRNG(seed)
	}
	if opts.Debug {
		EnableDebug = true
	}
	return &Engine{
		host:   opts.Host,
		sched:  opts.Scheduler,
		prefs:  opts.Preferences,
		rnd:    rnd,
		active: EffectUnknown,
	}
}

// Start creates the surface, restores the saved effect and switches to it,
// falling back to def.
func (e *Engine) Start(def Effect) {
	e.mu.Lock()
	e.createSurface()
	effect := def
	if e.prefs != nil {
		effect = e.prefs.Load(def)
	}
	e.mu.Unlock()

	Debug("starting with", effect.String())
	e.SwitchEffect(effect)
}

// SwitchEffect cancels the running loop and starts id from a clean state.
func (e *Engine) SwitchEffect(id Effect) {
	e.switchTo(id, id.String())
}

// SwitchByName switches to the effect with the given id. Unknown names stop
// the loop, draw nothing and leave the mode flag as it was.
func (e *Engine) SwitchByName(name string) {
	id, ok := ParseEffect(name)
	if !ok {
		Debug("unknown effect", name)
	}
	e.switchTo(id, name)
}

func (e *Engine) switchTo(id Effect, name string) {
	e.mu.Lock()
	e.cancel()

	e.active = id
	if e.prefs != nil {
		e.prefs.Save(name)
	}
	e.particles = nil
	if id.Valid() {
		e.setLightMode(id.IsLight())
	}

	w, h := float64(e.width), float64(e.height)
	switch id {
	case EffectParticles:
		e.particles = newDrifters(e.rnd, InitialParticleCount(id, e.width*e.height), w, h)
	case EffectConstellation:
		e.particles = newStars(e.rnd, InitialParticleCount(id, e.width*e.height), w, h)
	case EffectNone:
		if e.canvas != nil {
			e.canvas.FillRect(0, 0, w, h, Background(id.IsLight()))
		}
	}

	if id.Valid() && id != EffectNone {
		e.handle = e.sched.Schedule(e.frame(e.generation))
	}
	Debugf("switched to %s with %d particles", id, len(e.particles))

	onSwitch := e.OnSwitch
	e.mu.Unlock()

	if onSwitch != nil {
		onSwitch(id)
	}
}

// Stop cancels the loop without switching. The surface keeps its last frame.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancel()
}

// cancel revokes the outstanding frame and invalidates any callback that
// was already dispatched.
func (e *Engine) cancel() {
	if e.handle != 0 {
		e.sched.Cancel(e.handle)
		e.handle = 0
	}
	e.generation++
}

func (e *Engine) setLightMode(light bool) {
	e.light = light
	e.host.SetLightMode(light)
}

// frame returns the loop callback for one generation. It schedules the
// next frame before rendering this one.
func (e *Engine) frame(gen uint64) FrameFunc {
	var loop FrameFunc
	loop = func(timestamp float64) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if gen != e.generation {
			DebugWarn("dropping stale frame for generation", gen)
			return
		}
		e.handle = e.sched.Schedule(loop)
		e.frames++
		if e.canvas == nil {
			return
		}
		e.render(e.canvas, float64(e.width), float64(e.height))
	}
	return loop
}

func (e *Engine) render(c Canvas, w, h float64) {
	switch e.active {
	case EffectParticles:
		e.renderParticles(c, w, h)
	case EffectGradient:
		e.renderGradient(c, w, h)
	case EffectWaves:
		e.renderWaves(c, w, h)
	case EffectConstellation:
		e.renderConstellation(c, w, h)
	case EffectAurora:
		e.renderAurora(c, w, h)
	case EffectLightMinimal:
		e.renderLightMinimal(c, w, h)
	case EffectLightGradient:
		e.renderLightGradient(c, w, h)
	case EffectLightDots:
		e.renderLightDots(c, w, h)
	case EffectNone, EffectUnknown:
	}
}

// Active returns the current effect, EffectUnknown before Start.
func (e *Engine) Active() Effect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// IsLightMode reports the current mode flag.
func (e *Engine) IsLightMode() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.light
}

// ParticleCount returns the size of the particle buffer.
func (e *Engine) ParticleCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.particles)
}

// Particles returns a copy of the particle buffer.
func (e *Engine) Particles() []Particle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Particle(nil), e.particles...)
}

// Pending reports whether a frame is scheduled.
func (e *Engine) Pending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.handle != 0
}

// FrameCount returns how many frames have run since the engine was created.
func (e *Engine) FrameCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// Size returns the current surface dimensions.
func (e *Engine) Size() (width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// Pointer returns the last recorded pointer position.
func (e *Engine) Pointer() Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pointer
}
