package background

import (
	"math"

	"github.com/simukka/backdrop/common"
)

// Particle is a simulated point shared by the particles, constellation and
// light-dots effects. Twinkle fields are only used by the constellation.
type Particle struct {
	X, Y           float64
	Size           float64
	SpeedX, SpeedY float64
	Opacity        float64
	Twinkle        float64
	TwinkleSpeed   float64
}

// Density bounds how many particles an effect spawns for a given area.
type Density struct {
	Cap     int
	Divisor int
}

// Densities per stateful effect.
var Densities = map[Effect]Density{
	EffectParticles:     {Cap: 80, Divisor: 15000},
	EffectConstellation: {Cap: 100, Divisor: 12000},
	EffectLightDots:     {Cap: 60, Divisor: 20000},
}

// InitialParticleCount returns min(cap, floor(area/divisor)) for e, or 0 for
// effects without particles.
func InitialParticleCount(e Effect, area int) int {
	d, ok := Densities[e]
	if !ok || area <= 0 {
		return 0
	}
	n := area / d.Divisor
	if n > d.Cap {
		n = d.Cap
	}
	return n
}

// wrap moves a coordinate that left [0, max] to the opposite edge.
func wrap(v, max float64) float64 {
	if v < 0 {
		return max
	}
	if v > max {
		return 0
	}
	return v
}

// Pair is a connected pair of particle indices, I < J.
type Pair struct {
	I, J int
	Dist float64
}

// Connections returns every pair closer than threshold.
func Connections(ps []Particle, threshold float64) []Pair {
	var pairs []Pair
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if d < threshold {
				pairs = append(pairs, Pair{I: i, J: j, Dist: d})
			}
		}
	}
	return pairs
}

// Link is a particle within reach of the pointer.
type Link struct {
	Index int
	Dist  float64
}

// PointerLinks returns every particle closer than radius to p.
func PointerLinks(ps []Particle, p Point, radius float64) []Link {
	var links []Link
	for i := range ps {
		d := math.Hypot(p.X-ps[i].X, p.Y-ps[i].Y)
		if d < radius {
			links = append(links, Link{Index: i, Dist: d})
		}
	}
	return links
}

func newDrifters(rnd common.Random, n int, w, h float64) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			X:       rnd.Random() * w,
			Y:       rnd.Random() * h,
			Size:    common.Between(rnd, 0.5, 2.5),
			SpeedX:  common.Centered(rnd, 0.3),
			SpeedY:  common.Centered(rnd, 0.3),
			Opacity: common.Between(rnd, 0.2, 0.7),
		}
	}
	return ps
}

func newStars(rnd common.Random, n int, w, h float64) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			X:            rnd.Random() * w,
			Y:            rnd.Random() * h,
			Size:         common.Between(rnd, 0.5, 2),
			Twinkle:      rnd.Random() * 2 * math.Pi,
			TwinkleSpeed: common.Between(rnd, 0.01, 0.03),
		}
	}
	return ps
}

func newDots(rnd common.Random, n int, w, h float64) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			X:       rnd.Random() * w,
			Y:       rnd.Random() * h,
			Size:    common.Between(rnd, 1, 4),
			SpeedX:  common.Centered(rnd, 0.2),
			SpeedY:  common.Centered(rnd, 0.2),
			Opacity: common.Between(rnd, 0.1, 0.4),
		}
	}
	return ps
}
