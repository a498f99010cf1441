package raster

import (
	"bytes"
	"testing"
)

func TestRender_Deterministic(t *testing.T) {
	p := Poster{Effect: "particles", Width: 40, Height: 30, Frames: 5, Seed: 7}

	a := Render(p).PixelData()
	b := Render(p).PixelData()

	if len(a) != 40*30*4 {
		t.Fatalf("Expected %d bytes, got %d", 40*30*4, len(a))
	}
	if !bytes.Equal(a, b) {
		t.Error("Expected identical output for the same seed")
	}
}

func TestRender_None(t *testing.T) {
	c := Render(Poster{Effect: "none", Width: 8, Height: 8, Frames: 10, Seed: 1})

	px := pixelAt(c, 4, 4)
	if px[3] < 250 {
		t.Errorf("Expected an opaque dark fill, got %v", px)
	}
}

func TestRender_Unknown(t *testing.T) {
	c := Render(Poster{Effect: "plasma", Width: 8, Height: 8, Frames: 10, Seed: 1})

	for i, v := range c.PixelData() {
		if v != 0 {
			t.Fatalf("Expected a blank surface, byte %d is %d", i, v)
		}
	}
}
