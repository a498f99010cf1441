// Package spectrum draws the music player's frequency bars and, natively,
// derives bar levels from a playing beep stream.
package spectrum

import "github.com/simukka/backdrop/background"

// DefaultBarCount is the number of bars the player shows.
const DefaultBarCount = 32

// BarHeightRatio caps a full-scale bar at this fraction of the height.
const BarHeightRatio = 0.8

// Bar is one bottom-anchored rectangle.
type Bar struct {
	X, Y, W, H float64
}

// Layout places barCount bars across width. Bar i samples levels[i*step]
// where step = len(levels)/barCount.
func Layout(levels []uint8, width, height float64, barCount int) []Bar {
	if barCount <= 0 {
		return nil
	}
	barW := width / float64(barCount)
	step := len(levels) / barCount

	bars := make([]Bar, barCount)
	for i := range bars {
		var value uint8
		if idx := i * step; idx < len(levels) {
			value = levels[idx]
		}
		h := float64(value) / 255 * height * BarHeightRatio
		bars[i] = Bar{
			X: float64(i)*barW + 1,
			Y: height - h,
			W: barW - 2,
			H: h,
		}
	}
	return bars
}

// Draw clears c and paints DefaultBarCount bars for levels, each fading
// from strong at the base to faint at the tip.
func Draw(c background.Canvas, levels []uint8) {
	w, h := c.Size()
	c.Clear()
	for _, bar := range Layout(levels, float64(w), float64(h), DefaultBarCount) {
		if bar.H <= 0 {
			continue
		}
		c.FillRect(bar.X, bar.Y, bar.W, bar.H, background.LinearGradient{
			X0: 0, Y0: float64(h), X1: 0, Y1: bar.Y,
			Stops: []background.Stop{
				{Offset: 0, Color: background.Theme.BarColor.WithAlpha(0.8)},
				{Offset: 1, Color: background.Theme.BarColor.WithAlpha(0.2)},
			},
		})
	}
}
