//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/backdrop/background"
)

// RAFScheduler schedules frames with requestAnimationFrame.
type RAFScheduler struct{}

func (RAFScheduler) Schedule(fn background.FrameFunc) background.Handle {
	id := js.Global.Call("requestAnimationFrame", func(ts float64) {
		fn(ts)
	})
	return background.Handle(id.Int())
}

func (RAFScheduler) Cancel(h background.Handle) {
	js.Global.Call("cancelAnimationFrame", int(h))
}
