//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/backdrop/background"
)

// RouteDebugToConsole sends background debug output to the browser console.
func RouteDebugToConsole() {
	background.Sink = func(level string, args ...interface{}) {
		js.Global.Get("console").Call(level, append([]interface{}{"[background]"}, args...)...)
	}
}
