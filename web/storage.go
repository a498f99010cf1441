//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/backdrop/background"
)

// LocalStorage is a prefs.Storage over window.localStorage. When storage is
// missing or throws (private browsing, disabled cookies) reads come back
// empty and writes are dropped.
type LocalStorage struct{}

func (LocalStorage) Get(key string) (value string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			background.DebugWarn("localStorage read failed:", r)
			value, ok = "", false
		}
	}()
	ls := js.Global.Get("localStorage")
	if ls == nil || ls == js.Undefined {
		return "", false
	}
	v := ls.Call("getItem", key)
	if v == nil || v == js.Undefined {
		return "", false
	}
	return v.String(), true
}

func (LocalStorage) Set(key, value string) {
	defer func() {
		if r := recover(); r != nil {
			background.DebugWarn("localStorage write failed:", r)
		}
	}()
	ls := js.Global.Get("localStorage")
	if ls == nil || ls == js.Undefined {
		return
	}
	ls.Call("setItem", key, value)
}
