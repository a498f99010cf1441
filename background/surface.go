package background

// CreateSurface swaps in a fresh surface from the host. A running loop
// continues on the new surface.
func (e *Engine) CreateSurface() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.createSurface()
}

func (e *Engine) createSurface() {
	e.canvas = e.host.CreateSurface()
	if e.canvas == nil {
		DebugWarn("no drawing context, rendering disabled")
		return
	}
	e.width, e.height = e.canvas.Size()
}

// Resize sets the surface backing size. Particle counts stay as they were.
func (e *Engine) Resize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	e.width, e.height = width, height
	if e.canvas != nil {
		e.canvas.Resize(width, height)
	}
}

// MovePointer records the latest pointer position.
func (e *Engine) MovePointer(x, y float64) {
	e.mu.Lock()
	e.pointer = Point{X: x, Y: y}
	e.mu.Unlock()
}
