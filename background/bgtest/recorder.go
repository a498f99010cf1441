// Package bgtest provides recording fakes for exercising the background
// engine without a real drawing surface.
package bgtest

import (
	"sync"

	"github.com/simukka/backdrop/background"
)

// Op is one recorded drawing call.
type Op struct {
	Kind   string // "clear", "rect", "circle", "line", "polygon", "put"
	Paint  background.Paint
	Points []background.Point
	Radius float64
}

// Recorder is a background.Canvas that records every call. Its pixel buffer
// is a plain byte slice so the aurora noise pass has something to work on.
type Recorder struct {
	mu     sync.Mutex
	width  int
	height int
	ops    []Op
	pixels []uint8
}

// NewRecorder creates a recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	r := &Recorder{}
	r.Resize(width, height)
	return r
}

func (r *Recorder) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *Recorder) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	if width <= 0 || height <= 0 {
		r.pixels = nil
		return
	}
	r.pixels = make([]uint8, width*height*4)
}

func (r *Recorder) Clear() {
	r.record(Op{Kind: "clear"})
}

func (r *Recorder) FillRect(x, y, w, h float64, p background.Paint) {
	r.record(Op{Kind: "rect", Paint: p, Points: []background.Point{{X: x, Y: y}, {X: x + w, Y: y + h}}})
}

func (r *Recorder) FillCircle(x, y, radius float64, c background.Color) {
	r.record(Op{Kind: "circle", Paint: c, Points: []background.Point{{X: x, Y: y}}, Radius: radius})
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, c background.Color) {
	r.record(Op{Kind: "line", Paint: c, Points: []background.Point{{X: x1, Y: y1}, {X: x2, Y: y2}}, Radius: width})
}

func (r *Recorder) FillPolygon(pts []background.Point, p background.Paint) {
	r.record(Op{Kind: "polygon", Paint: p, Points: append([]background.Point(nil), pts...)})
}

func (r *Recorder) PixelData() []uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pixels
}

func (r *Recorder) PutPixelData(data []uint8) {
	r.mu.Lock()
	r.pixels = data
	r.mu.Unlock()
	r.record(Op{Kind: "put"})
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Op(nil), r.ops...)
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops() {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.ops = nil
	r.mu.Unlock()
}

// Host is a background.Host handing out Recorders and remembering the mode.
type Host struct {
	Width, Height int

	// NoContext makes CreateSurface return nil.
	NoContext bool

	mu       sync.Mutex
	surfaces int
	canvas   *Recorder
	light    bool
}

func (h *Host) CreateSurface() background.Canvas {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.surfaces++
	if h.NoContext {
		h.canvas = nil
		return nil
	}
	h.canvas = NewRecorder(h.Width, h.Height)
	return h.canvas
}

func (h *Host) SetLightMode(light bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.light = light
}

// Canvas returns the most recent surface.
func (h *Host) Canvas() *Recorder {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.canvas
}

// Light returns the last mode set.
func (h *Host) Light() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.light
}

// Surfaces returns how many surfaces were created.
func (h *Host) Surfaces() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.surfaces
}

// Prefs is an in-memory background.Preferences.
type Prefs struct {
	mu    sync.Mutex
	Saved []string
	Value string
}

func (p *Prefs) Load(def background.Effect) background.Effect {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := background.ParseEffect(p.Value); ok {
		return e
	}
	return def
}

func (p *Prefs) Save(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Value = id
	p.Saved = append(p.Saved, id)
}
