//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/backdrop/background"
)

// BindEvents forwards viewport resizes and pointer moves to the engine.
func BindEvents(engine *background.Engine) {
	js.Global.Call("addEventListener", "resize",
		func(event *js.Object) {
			engine.Resize(js.Global.Get("innerWidth").Int(), js.Global.Get("innerHeight").Int())
		})

	js.Global.Get("document").Call("addEventListener", "mousemove",
		func(event *js.Object) {
			engine.MovePointer(event.Get("clientX").Float(), event.Get("clientY").Float())
		})
}
