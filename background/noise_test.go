package background

import (
	"testing"

	"github.com/simukka/backdrop/common"
)

// TestJitterPixels_Bounded tests every colour byte moves by at most 3 and
// alpha is never touched.
func TestJitterPixels_Bounded(t *testing.T) {
	data := make([]uint8, 4*1000)
	for i := range data {
		data[i] = uint8(i * 7)
	}
	orig := append([]uint8(nil), data...)

	JitterPixels(data, common.NewSeededRNG(3), AuroraNoise)

	if len(data) != len(orig) {
		t.Fatalf("Expected length %d, got %d", len(orig), len(data))
	}
	for i := range data {
		diff := int(data[i]) - int(orig[i])
		if i%4 == 3 {
			if diff != 0 {
				t.Errorf("Alpha byte %d changed from %d to %d", i, orig[i], data[i])
			}
			continue
		}
		if diff < -3 || diff > 3 {
			t.Errorf("Byte %d moved by %d", i, diff)
		}
	}
}

func TestJitterPixels_Clamps(t *testing.T) {
	data := []uint8{0, 255, 0, 255, 255, 0, 255, 0}
	for seed := uint32(1); seed < 50; seed++ {
		buf := append([]uint8(nil), data...)
		JitterPixels(buf, common.NewSeededRNG(seed), 100)
		if buf[3] != 255 || buf[7] != 0 {
			t.Fatalf("Seed %d: alpha changed: %v", seed, buf)
		}
	}
}

func TestJitterPixels_SameOffsetPerPixel(t *testing.T) {
	data := []uint8{100, 100, 100, 255}
	JitterPixels(data, common.NewSeededRNG(11), AuroraNoise)

	if data[0] != data[1] || data[1] != data[2] {
		t.Errorf("Expected one offset across R, G and B, got %v", data[:3])
	}
}
