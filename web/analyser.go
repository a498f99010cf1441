//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/backdrop/background"
	"github.com/simukka/backdrop/notify"
	"github.com/simukka/backdrop/prefs"
	"github.com/simukka/backdrop/spectrum"
)

// FFTSize is the analyser's transform size, giving FFTSize/2 bins.
const FFTSize = 256

// Analyser connects the page's audio element to a frequency visualizer and
// keeps the player's settings and health in storage.
type Analyser struct {
	audio    *js.Object
	canvas   *Canvas2D
	store    prefs.Storage
	notifier notify.Notifier
	health   prefs.PlayerHealth
	sched    background.Scheduler

	audioCtx *js.Object
	analyser *js.Object
	data     *js.Object
	settings prefs.PlayerSettings
}

// NewAnalyser wires audio and the visualizer canvas. Either may be missing, in
// which case Attach does nothing.
func NewAnalyser(audio, canvas *js.Object, store prefs.Storage, n notify.Notifier) *Analyser {
	return &Analyser{
		audio:    audio,
		canvas:   NewCanvas2D(canvas),
		store:    store,
		notifier: n,
		health:   prefs.PlayerHealth{Store: store},
		sched:    RAFScheduler{},
	}
}

// Attach restores saved settings and listens to the audio element.
func (a *Analyser) Attach() {
	if a.audio == nil || a.audio == js.Undefined {
		return
	}
	if prefs.PlayerDisabled(a.store) {
		background.Debug("music player disabled after repeated errors")
		return
	}

	a.settings = prefs.LoadPlayer(a.store)
	a.audio.Set("volume", a.settings.Volume)

	a.audio.Call("addEventListener", "play", func(event *js.Object) {
		a.ensureAnalyser()
		a.settings.WasPlaying = true
		prefs.SavePlayer(a.store, a.settings)
	})
	a.audio.Call("addEventListener", "pause", func(event *js.Object) {
		a.settings.WasPlaying = false
		prefs.SavePlayer(a.store, a.settings)
	})
	a.audio.Call("addEventListener", "volumechange", func(event *js.Object) {
		a.settings.Volume = a.audio.Get("volume").Float()
		prefs.SavePlayer(a.store, a.settings)
	})
	a.audio.Call("addEventListener", "canplay", func(event *js.Object) {
		a.health.Ready()
	})
	a.audio.Call("addEventListener", "error", func(event *js.Object) {
		if a.health.Fail() {
			notify.Fail(a.notifier, "Music player disabled")
			a.audio.Get("style").Set("display", "none")
			return
		}
		notify.Warn(a.notifier, "Could not load track")
	})
}

// Play starts playback. Browsers that block autoplay reject the promise,
// and the user is asked to press play again.
func (a *Analyser) Play() {
	if a.audio == nil || a.audio == js.Undefined {
		return
	}
	promise := a.audio.Call("play")
	if promise == nil || promise == js.Undefined {
		return
	}
	promise.Call("catch", func(err *js.Object) {
		background.DebugWarn("autoplay blocked:", err)
		notify.Warn(a.notifier, "Click the play button again to start music")
	})
}

// ensureAnalyser builds the audio graph on first play. A media element can
// only be routed through one source node, so this happens once.
func (a *Analyser) ensureAnalyser() {
	if a.audioCtx != nil {
		if a.audioCtx.Get("state").String() == "suspended" {
			a.audioCtx.Call("resume")
		}
		return
	}

	ctor := js.Global.Get("AudioContext")
	if ctor == nil || ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == nil || ctor == js.Undefined {
		background.DebugWarn("Web Audio API not supported")
		return
	}

	a.audioCtx = ctor.New()
	a.analyser = a.audioCtx.Call("createAnalyser")
	a.analyser.Set("fftSize", FFTSize)
	source := a.audioCtx.Call("createMediaElementSource", a.audio)
	source.Call("connect", a.analyser)
	a.analyser.Call("connect", a.audioCtx.Get("destination"))
	a.data = js.Global.Get("Uint8Array").New(a.analyser.Get("frequencyBinCount"))

	if a.canvas != nil {
		a.sched.Schedule(a.draw)
	}
}

func (a *Analyser) draw(timestamp float64) {
	a.sched.Schedule(a.draw)
	a.analyser.Call("getByteFrequencyData", a.data)
	spectrum.Draw(a.canvas, a.data.Interface().([]uint8))
}
