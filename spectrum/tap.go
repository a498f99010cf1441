//go:build !js

package spectrum

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
)

const (
	// RingSize is how many recent frames the tap keeps.
	RingSize = 8192
	// WindowSize is how many of those frames Levels reduces.
	WindowSize = 2048
	// Smoothing weights the previous level against the new one.
	Smoothing = 0.6
)

// Tap wraps a beep.Streamer and records the last frames it played into a
// ring buffer so a renderer can derive bar levels from them.
type Tap struct {
	Source beep.Streamer

	mu        sync.RWMutex
	buffer    [][2]float64
	nextIndex int
	filled    int
	smoothed  []float64
}

// NewTap creates a tap keeping ringSize frames.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	if ringSize <= 0 {
		ringSize = RingSize
	}
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex = (t.nextIndex + 1) % len(t.buffer)
		}
		t.filled = min(t.filled+n, len(t.buffer))
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to n of the most recent frames, oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, t.filled)
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx = (idx + 1) % len(t.buffer)
	}
	return out
}

// Levels reduces the recent window to n smoothed bands scaled to bytes.
// Each band is the RMS of a slice of the mono mix, compressed with a 0.3
// power. This is visual shaping, not a spectrum.
func (t *Tap) Levels(n int) []uint8 {
	if n <= 0 {
		return nil
	}
	samples := t.Snapshot(WindowSize)

	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.smoothed) != n {
		t.smoothed = make([]float64, n)
	}

	out := make([]uint8, n)
	segment := max(1, len(samples)/n)
	for i := 0; i < n; i++ {
		var mag float64
		start := i * segment
		if start < len(samples) {
			end := min(start+segment, len(samples))
			var sumSquares float64
			for _, s := range samples[start:end] {
				mono := (s[0] + s[1]) * 0.5
				sumSquares += mono * mono
			}
			mag = math.Pow(math.Sqrt(sumSquares/float64(end-start)), 0.3)
		}
		t.smoothed[i] = Smoothing*t.smoothed[i] + (1-Smoothing)*mag
		out[i] = uint8(math.Round(clamp01(t.smoothed[i]) * 255))
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
