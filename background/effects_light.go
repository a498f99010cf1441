package background

import "math"

func (e *Engine) renderLightMinimal(c Canvas, w, h float64) {
	c.FillRect(0, 0, w, h, Theme.LightBackground)
	c.FillRect(0, 0, w, h, Glow(e.pointer.X, e.pointer.Y, MinimalGlowRadius, Theme.Accent.WithAlpha(0.08)))
}

func (e *Engine) renderLightGradient(c Canvas, w, h float64) {
	e.lightGradientTime += LightGradientTimeStep
	t := e.lightGradientTime

	c.FillRect(0, 0, w, h, LinearGradient{
		X0: 0, Y0: 0, X1: w, Y1: h,
		Stops: []Stop{
			{0, Theme.PaperStart},
			{0.5, Theme.PaperMid},
			{1, Theme.PaperEnd},
		},
	})

	x1 := w*0.3 + math.Sin(t)*w*0.15
	y1 := h*0.3 + math.Cos(t*0.7)*h*0.15
	c.FillRect(0, 0, w, h, Glow(x1, y1, w*0.4, Theme.Accent.WithAlpha(0.1)))

	x2 := w*0.7 + math.Cos(t*0.5)*w*0.1
	y2 := h*0.6 + math.Sin(t*0.8)*h*0.1
	c.FillRect(0, 0, w, h, Glow(x2, y2, w*0.35, Theme.MistBlue.WithAlpha(0.08)))
}

// stepDots drifts the light-dots particles and wraps them at the edges.
func stepDots(ps []Particle, w, h float64) {
	for i := range ps {
		p := &ps[i]
		p.X = wrap(p.X+p.SpeedX, w)
		p.Y = wrap(p.Y+p.SpeedY, h)
	}
}

func (e *Engine) renderLightDots(c Canvas, w, h float64) {
	if len(e.particles) == 0 {
		n := InitialParticleCount(EffectLightDots, e.width*e.height)
		e.particles = newDots(e.rnd, n, w, h)
	}

	c.FillRect(0, 0, w, h, Theme.LightBackground)
	for x := 0.0; x < w; x += GridSize {
		c.Line(x, 0, x, h, Theme.GridLineWidth, Theme.GridColor)
	}
	for y := 0.0; y < h; y += GridSize {
		c.Line(0, y, w, y, Theme.GridLineWidth, Theme.GridColor)
	}

	stepDots(e.particles, w, h)
	for _, p := range e.particles {
		c.FillCircle(p.X, p.Y, p.Size, Theme.Accent.WithAlpha(p.Opacity))
	}

	c.FillRect(0, 0, w, h, Glow(e.pointer.X, e.pointer.Y, DotsGlowRadius, Theme.Accent.WithAlpha(0.15)))
}
