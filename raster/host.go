package raster

import (
	"sync"

	"github.com/simukka/backdrop/background"
)

// Host is a background.Host for native windows and headless rendering. It
// creates raster canvases and remembers the mode flag.
type Host struct {
	Width, Height int

	// OnLightMode, when set, is told about every mode change.
	OnLightMode func(light bool)

	mu     sync.Mutex
	canvas *Canvas
	light  bool
}

// CreateSurface replaces the current canvas with a fresh one.
func (h *Host) CreateSurface() background.Canvas {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.canvas = New(h.Width, h.Height)
	return h.canvas
}

func (h *Host) SetLightMode(light bool) {
	h.mu.Lock()
	h.light = light
	cb := h.OnLightMode
	h.mu.Unlock()
	if cb != nil {
		cb(light)
	}
}

// Canvas returns the current surface.
func (h *Host) Canvas() *Canvas {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.canvas
}

// LightMode returns the last mode flag set.
func (h *Host) LightMode() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.light
}
