package background

import (
	"math"
	"testing"

	"github.com/simukka/backdrop/common"
)

func TestInitialParticleCount(t *testing.T) {
	tests := []struct {
		name   string
		effect Effect
		area   int
		want   int
	}{
		{"particles 1200x800", EffectParticles, 1200 * 800, 64},
		{"particles capped", EffectParticles, 4000 * 4000, 80},
		{"constellation 1200x800", EffectConstellation, 1200 * 800, 80},
		{"constellation capped", EffectConstellation, 1920 * 1080, 100},
		{"light-dots 1200x800", EffectLightDots, 1200 * 800, 48},
		{"light-dots capped", EffectLightDots, 1920 * 1080, 60},
		{"below one divisor", EffectParticles, 14999, 0},
		{"zero area", EffectConstellation, 0, 0},
		{"stateless effect", EffectWaves, 1200 * 800, 0},
		{"unknown effect", EffectUnknown, 1200 * 800, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InitialParticleCount(tt.effect, tt.area); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, max, want float64
	}{
		{-0.1, 100, 100},
		{100.1, 100, 0},
		{0, 100, 0},
		{100, 100, 100},
		{42, 100, 42},
	}

	for _, tt := range tests {
		if got := wrap(tt.v, tt.max); got != tt.want {
			t.Errorf("wrap(%f, %f): expected %f, got %f", tt.v, tt.max, tt.want, got)
		}
	}
}

// TestConnections_Symmetric tests that pairs are unique, never self-linked,
// and present exactly when the distance is under the threshold.
func TestConnections_Symmetric(t *testing.T) {
	rnd := common.NewSeededRNG(99)
	ps := newDrifters(rnd, 60, 500, 400)

	const threshold = 120.0
	pairs := Connections(ps, threshold)
	linked := make(map[[2]int]bool)
	for _, p := range pairs {
		if p.I == p.J {
			t.Fatalf("Self pair %d", p.I)
		}
		if p.I > p.J {
			t.Errorf("Expected I < J, got (%d, %d)", p.I, p.J)
		}
		if linked[[2]int{p.I, p.J}] {
			t.Errorf("Duplicate pair (%d, %d)", p.I, p.J)
		}
		linked[[2]int{p.I, p.J}] = true
	}

	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if (d < threshold) != linked[[2]int{i, j}] {
				t.Errorf("Pair (%d, %d) at %f: linked=%v", i, j, d, linked[[2]int{i, j}])
			}
		}
	}
}

func TestPointerLinks(t *testing.T) {
	ps := []Particle{
		{X: 10, Y: 10},
		{X: 200, Y: 10},
		{X: 10, Y: 189},
		{X: 10, Y: 190},
	}

	links := PointerLinks(ps, Point{X: 10, Y: 10}, 180)
	if len(links) != 2 {
		t.Fatalf("Expected 2 links, got %d", len(links))
	}
	if links[0].Index != 0 || links[0].Dist != 0 {
		t.Errorf("Expected particle 0 at distance 0, got %+v", links[0])
	}
	if links[1].Index != 2 {
		t.Errorf("Expected particle 2 as second link, got %d", links[1].Index)
	}
}

// TestStepDrifters_PullsTowardPointer tests the attraction direction.
func TestStepDrifters_PullsTowardPointer(t *testing.T) {
	ps := []Particle{{X: 100, Y: 100}}
	stepDrifters(ps, Point{X: 150, Y: 100}, 500, 500)

	// force = (150-50)/150, dx = 50
	want := 100 + 50*(100.0/150.0)*AttractStrength
	if math.Abs(ps[0].X-want) > 1e-9 {
		t.Errorf("Expected x %f, got %f", want, ps[0].X)
	}
	if ps[0].Y != 100 {
		t.Errorf("Expected y unchanged, got %f", ps[0].Y)
	}
}

func TestStepDrifters_OutOfReach(t *testing.T) {
	ps := []Particle{{X: 100, Y: 100, SpeedX: 0.1, SpeedY: -0.1}}
	stepDrifters(ps, Point{X: 400, Y: 400}, 500, 500)

	if math.Abs(ps[0].X-100.1) > 1e-9 || math.Abs(ps[0].Y-99.9) > 1e-9 {
		t.Errorf("Expected plain integration, got (%f, %f)", ps[0].X, ps[0].Y)
	}
}

func TestStepStars_Opacity(t *testing.T) {
	ps := []Particle{{Twinkle: 0, TwinkleSpeed: math.Pi / 2}}
	stepStars(ps)

	if math.Abs(ps[0].Opacity-0.6) > 1e-9 {
		t.Errorf("Expected peak opacity 0.6, got %f", ps[0].Opacity)
	}
}

func TestNewParticles_Ranges(t *testing.T) {
	rnd := common.NewSeededRNG(5)
	for _, p := range newDrifters(rnd, 200, 300, 200) {
		if p.Size < 0.5 || p.Size >= 2.5 || math.Abs(p.SpeedX) > 0.15 || p.Opacity < 0.2 || p.Opacity >= 0.7 {
			t.Fatalf("Drifter out of range: %+v", p)
		}
	}
	for _, p := range newStars(rnd, 200, 300, 200) {
		if p.Size < 0.5 || p.Size >= 2 || p.Twinkle >= 2*math.Pi || p.TwinkleSpeed < 0.01 || p.TwinkleSpeed >= 0.03 {
			t.Fatalf("Star out of range: %+v", p)
		}
	}
	for _, p := range newDots(rnd, 200, 300, 200) {
		if p.Size < 1 || p.Size >= 4 || math.Abs(p.SpeedY) > 0.1 || p.Opacity < 0.1 || p.Opacity >= 0.4 {
			t.Fatalf("Dot out of range: %+v", p)
		}
	}
}

func TestStepDots_Wraps(t *testing.T) {
	ps := []Particle{
		{X: 99.9, Y: 10, SpeedX: 0.2, SpeedY: 0},
		{X: 0.1, Y: 0.1, SpeedX: -0.2, SpeedY: -0.2},
		{X: 250, Y: 500, SpeedX: 0.1, SpeedY: 0.1},
	}
	stepDots(ps, 100, 80)

	want := []Point{{0, 10}, {100, 80}, {0, 0}}
	for i, p := range ps {
		if p.X != want[i].X || p.Y != want[i].Y {
			t.Errorf("Dot %d: expected (%v, %v), got (%v, %v)", i, want[i].X, want[i].Y, p.X, p.Y)
		}
	}
}
