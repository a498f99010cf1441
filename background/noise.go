package background

import (
	"math"

	"github.com/simukka/backdrop/common"
)

// JitterPixels adds one uniform offset in [-amplitude/2, amplitude/2) to the
// R, G and B bytes of every RGBA pixel in data. Results are rounded half to
// even and clamped to [0, 255]. Alpha bytes are left alone.
func JitterPixels(data []uint8, rnd common.Random, amplitude float64) {
	for i := 0; i+3 < len(data); i += 4 {
		n := common.Centered(rnd, amplitude)
		for k := i; k < i+3; k++ {
			v := math.RoundToEven(float64(data[k]) + n)
			switch {
			case v < 0:
				v = 0
			case v > 255:
				v = 255
			}
			data[k] = uint8(v)
		}
	}
}
