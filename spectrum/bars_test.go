package spectrum

import (
	"math"
	"testing"

	"github.com/simukka/backdrop/background"
	"github.com/simukka/backdrop/background/bgtest"
)

func TestLayout_BarGeometry(t *testing.T) {
	levels := make([]uint8, 128)
	for i := range levels {
		levels[i] = uint8(i * 2)
	}

	bars := Layout(levels, 320, 100, 32)
	if len(bars) != 32 {
		t.Fatalf("Expected 32 bars, got %d", len(bars))
	}

	for i, bar := range bars {
		// step = 128/32 = 4
		want := float64(levels[i*4]) / 255 * 100 * 0.8
		if math.Abs(bar.H-want) > 1e-9 {
			t.Errorf("Bar %d: expected height %f, got %f", i, want, bar.H)
		}
		if math.Abs(bar.Y+bar.H-100) > 1e-9 {
			t.Errorf("Bar %d: expected bottom at 100, got %f", i, bar.Y+bar.H)
		}
		if bar.X != float64(i)*10+1 || bar.W != 8 {
			t.Errorf("Bar %d: expected x=%d w=8, got x=%f w=%f", i, i*10+1, bar.X, bar.W)
		}
	}
}

func TestLayout_FullScale(t *testing.T) {
	bars := Layout([]uint8{255, 255}, 20, 50, 2)
	for i, bar := range bars {
		if bar.H != 40 {
			t.Errorf("Bar %d: expected 80%% of height, got %f", i, bar.H)
		}
	}
}

func TestLayout_Degenerate(t *testing.T) {
	if Layout(make([]uint8, 10), 100, 100, 0) != nil {
		t.Error("Expected no bars for a zero bar count")
	}
	for i, bar := range Layout(nil, 100, 100, 4) {
		if bar.H != 0 {
			t.Errorf("Bar %d: expected empty bar without levels, got %f", i, bar.H)
		}
	}
}

func TestDraw(t *testing.T) {
	c := bgtest.NewRecorder(320, 60)
	levels := make([]uint8, 128)
	levels[0] = 200
	levels[4] = 100

	Draw(c, levels)

	ops := c.Ops()
	if len(ops) == 0 || ops[0].Kind != "clear" {
		t.Fatalf("Expected a clear first, got %+v", ops)
	}
	if c.Count("rect") != 2 {
		t.Errorf("Expected 2 visible bars, got %d", c.Count("rect"))
	}
	g, ok := ops[1].Paint.(background.LinearGradient)
	if !ok {
		t.Fatalf("Expected a gradient bar, got %T", ops[1].Paint)
	}
	if g.Stops[0].Color.A != 0.8 || g.Stops[1].Color.A != 0.2 {
		t.Errorf("Expected 0.8 to 0.2 fade, got %+v", g.Stops)
	}
	if g.Y0 != 60 {
		t.Errorf("Expected gradient to start at the base, got %f", g.Y0)
	}
}
