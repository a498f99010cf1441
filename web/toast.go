//go:build js

package web

import (
	"time"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/backdrop/notify"
)

// Toast shows notifications through the page's Toast.show, or the console
// when the page has none.
type Toast struct{}

func (Toast) Show(message string, kind notify.Kind, duration time.Duration) {
	if duration <= 0 {
		duration = notify.DefaultDuration
	}
	t := js.Global.Get("Toast")
	if t == nil || t == js.Undefined {
		js.Global.Get("console").Call("log", "["+kind.String()+"]", message)
		return
	}
	t.Call("show", message, kind.String(), duration.Milliseconds())
}
