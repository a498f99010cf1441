package background

import "math"

type waveLayer struct {
	amplitude float64
	frequency float64
	speed     float64
	opacity   float64
}

var waveLayers = [3]waveLayer{
	{amplitude: 50, frequency: 0.008, speed: 1, opacity: 0.08},
	{amplitude: 35, frequency: 0.012, speed: 1.3, opacity: 0.06},
	{amplitude: 25, frequency: 0.015, speed: 0.8, opacity: 0.04},
}

type auroraBand struct {
	yOffset   float64
	amplitude float64
	frequency float64
}

var auroraBands = [3]auroraBand{
	{yOffset: 0.2, amplitude: 100, frequency: 0.003},
	{yOffset: 0.25, amplitude: 80, frequency: 0.004},
	{yOffset: 0.3, amplitude: 60, frequency: 0.005},
}

// stepDrifters advances the particles effect by one frame: integrate, pull
// toward the pointer, then wrap at the edges.
func stepDrifters(ps []Particle, pointer Point, w, h float64) {
	for i := range ps {
		p := &ps[i]
		p.X += p.SpeedX
		p.Y += p.SpeedY

		dx := pointer.X - p.X
		dy := pointer.Y - p.Y
		if dist := math.Hypot(dx, dy); dist < AttractRadius {
			force := (AttractRadius - dist) / AttractRadius
			p.X += dx * force * AttractStrength
			p.Y += dy * force * AttractStrength
		}

		p.X = wrap(p.X, w)
		p.Y = wrap(p.Y, h)
	}
}

func (e *Engine) renderParticles(c Canvas, w, h float64) {
	c.FillRect(0, 0, w, h, Theme.DarkBackground)

	stepDrifters(e.particles, e.pointer, w, h)
	for _, p := range e.particles {
		c.FillCircle(p.X, p.Y, p.Size, Theme.Accent.WithAlpha(p.Opacity))
	}

	for _, pair := range Connections(e.particles, ParticleLinkDistance) {
		a, b := e.particles[pair.I], e.particles[pair.J]
		alpha := 0.1 * (1 - pair.Dist/ParticleLinkDistance)
		c.Line(a.X, a.Y, b.X, b.Y, Theme.ParticleLineWidth, Theme.Accent.WithAlpha(alpha))
	}
}

func (e *Engine) renderGradient(c Canvas, w, h float64) {
	e.gradientTime += GradientTimeStep
	t := e.gradientTime

	c.FillRect(0, 0, w, h, Theme.DarkBackground)
	c.FillRect(0, 0, w, h, RadialGradient{
		X0: w*0.3 + math.Sin(t)*w*0.2,
		Y0: h*0.3 + math.Cos(t*0.7)*h*0.2,
		X1: w * 0.5, Y1: h * 0.5, R1: w * 0.8,
		Stops: []Stop{
			{0, Theme.GradientWarm.WithAlpha(0.3 + math.Sin(t)*0.1)},
			{0.5, Theme.GradientShade.WithAlpha(0.5)},
			{1, Theme.DarkBackground},
		},
	})
	c.FillRect(0, 0, w, h, RadialGradient{
		X0: w*0.7 + math.Cos(t*0.5)*w*0.15,
		Y0: h*0.6 + math.Sin(t*0.8)*h*0.15,
		X1: w * 0.5, Y1: h * 0.5, R1: w * 0.6,
		Stops: []Stop{
			{0, Theme.GradientEmber.WithAlpha(0.15 + math.Cos(t*1.3)*0.05)},
			{1, Transparent},
		},
	})
	c.FillRect(0, 0, w, h, Glow(e.pointer.X, e.pointer.Y, GradientGlowRadius, Theme.Accent.WithAlpha(0.08)))
}

// wavePath traces layer i from the bottom-left corner along the crest and
// back down to the bottom-right corner.
func wavePath(i int, t, w, h float64) []Point {
	layer := waveLayers[i]
	pts := []Point{{0, h}}
	for x := 0.0; x <= w; x += WaveStep {
		y := h*0.6 +
			math.Sin(x*layer.frequency+t*layer.speed)*layer.amplitude +
			math.Sin(x*layer.frequency*0.5+t*layer.speed*0.7)*layer.amplitude*0.5 +
			float64(i)*WaveLayerShift
		pts = append(pts, Point{x, y})
	}
	return append(pts, Point{w, h})
}

func (e *Engine) renderWaves(c Canvas, w, h float64) {
	e.waveTime += WaveTimeStep

	c.FillRect(0, 0, w, h, Theme.DarkBackground)
	for i, layer := range waveLayers {
		c.FillPolygon(wavePath(i, e.waveTime, w, h), LinearGradient{
			X0: 0, Y0: h * 0.4, X1: 0, Y1: h,
			Stops: []Stop{
				{0, Theme.WaveColors[i].WithAlpha(layer.opacity)},
				{1, Transparent},
			},
		})
	}
}

// stepStars advances every twinkle phase and stores the resulting opacity.
func stepStars(ps []Particle) {
	for i := range ps {
		p := &ps[i]
		p.Twinkle += p.TwinkleSpeed
		p.Opacity = 0.3 + math.Sin(p.Twinkle)*0.3
	}
}

func (e *Engine) renderConstellation(c Canvas, w, h float64) {
	c.FillRect(0, 0, w, h, Theme.DarkBackground)

	stepStars(e.particles)
	for _, p := range e.particles {
		c.FillCircle(p.X, p.Y, p.Size, Theme.StarColor.WithAlpha(p.Opacity))
		if p.Size > 1 {
			c.FillCircle(p.X, p.Y, p.Size*3, Theme.Accent.WithAlpha(p.Opacity*0.1))
		}
	}

	for _, link := range PointerLinks(e.particles, e.pointer, StarPointerRadius) {
		p := e.particles[link.Index]
		alpha := (1 - link.Dist/StarPointerRadius) * 0.4
		c.Line(e.pointer.X, e.pointer.Y, p.X, p.Y, Theme.StarPointerLineWidth, Theme.Accent.WithAlpha(alpha))
	}

	for _, pair := range Connections(e.particles, StarLinkDistance) {
		a, b := e.particles[pair.I], e.particles[pair.J]
		alpha := 0.15 * (1 - pair.Dist/StarLinkDistance)
		c.Line(a.X, a.Y, b.X, b.Y, Theme.StarLinkLineWidth, Theme.StarLinkColor.WithAlpha(alpha))
	}
}

// auroraPath traces band i along its crest and closes it through the bottom
// corners.
func auroraPath(i int, t, w, h float64) []Point {
	band := auroraBands[i]
	var pts []Point
	for x := 0.0; x <= w; x += AuroraStep {
		n1 := math.Sin(x*band.frequency+t) * band.amplitude
		n2 := math.Sin(x*band.frequency*2+t*1.5) * band.amplitude * 0.5
		n3 := math.Sin(x*band.frequency*0.5+t*0.7) * band.amplitude * 0.3
		pts = append(pts, Point{x, h*band.yOffset + n1 + n2 + n3})
	}
	return append(pts, Point{w, h}, Point{0, h})
}

func (e *Engine) renderAurora(c Canvas, w, h float64) {
	e.auroraTime += AuroraTimeStep
	t := e.auroraTime

	c.FillRect(0, 0, w, h, Theme.DarkBackground)
	for i := range auroraBands {
		opacity := 0.15 + math.Sin(t+float64(i))*0.05
		color := Theme.AuroraColors[i]
		c.FillPolygon(auroraPath(i, t, w, h), LinearGradient{
			X0: 0, Y0: h * 0.1, X1: 0, Y1: h * 0.7,
			Stops: []Stop{
				{0, color.WithAlpha(opacity)},
				{0.5, color.WithAlpha(opacity * 0.5)},
				{1, Transparent},
			},
		})
	}

	data := c.PixelData()
	if len(data) == 0 {
		return
	}
	JitterPixels(data, e.rnd, AuroraNoise)
	c.PutPixelData(data)
}
