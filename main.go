//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/backdrop/background"
	"github.com/simukka/backdrop/prefs"
	"github.com/simukka/backdrop/web"
)

func start() {
	web.RouteDebugToConsole()

	store := web.LocalStorage{}
	engine := background.New(background.Options{
		Host:        web.DOMHost{},
		Scheduler:   web.RAFScheduler{},
		Preferences: prefs.EffectPreference{Store: store},
	})

	selector := web.NewSelector(engine)
	if err := selector.Mount(); err != nil {
		background.DebugError("selector:", err)
	}
	engine.OnSwitch = selector.MarkActive
	web.BindEvents(engine)
	engine.Start(background.EffectParticles)

	doc := js.Global.Get("document")
	music := web.NewAnalyser(
		doc.Call("getElementById", "bgMusic"),
		doc.Call("getElementById", "visualizer"),
		store, web.Toast{})
	music.Attach()

	// Expose the engine to page scripts
	js.Global.Set("BackgroundSystem", map[string]interface{}{
		"switchEffect": func(name string) {
			engine.SwitchByName(name)
		},
		"currentEffect": func() string {
			return engine.Active().String()
		},
		"isLightMode": func() bool {
			return engine.IsLightMode()
		},
		"playMusic": func() {
			music.Play()
		},
	})
}

func main() {
	doc := js.Global.Get("document")
	if doc.Get("readyState").String() == "loading" {
		doc.Call("addEventListener", "DOMContentLoaded", func() {
			start()
		})
	} else {
		start()
	}

	select {}
}
