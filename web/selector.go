//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/backdrop/background"
)

// SwitcherID is the id of the selector's container.
const SwitcherID = "bg-switcher"

// Selector is the floating effect menu.
type Selector struct {
	engine *background.Engine
	root   *js.Object
	menu   *js.Object
}

// NewSelector creates a selector driving engine. Call Mount to add it to
// the page.
func NewSelector(engine *background.Engine) *Selector {
	return &Selector{engine: engine}
}

// Mount renders the menu into a fixed container appended to the body and
// wires its toggle and option buttons.
func (s *Selector) Mount() error {
	markup, err := RenderMenu(s.engine.Active())
	if err != nil {
		return err
	}

	doc := js.Global.Get("document")
	if old := doc.Call("getElementById", SwitcherID); old != nil && old != js.Undefined {
		old.Call("remove")
	}

	s.root = doc.Call("createElement", "div")
	s.root.Set("id", SwitcherID)
	s.root.Set("className", "bg-switcher")
	s.root.Set("innerHTML", markup)
	doc.Get("body").Call("appendChild", s.root)

	s.menu = s.root.Call("querySelector", "#bgMenu")
	toggle := s.root.Call("querySelector", "#bgSwitchBtn")

	toggle.Call("addEventListener", "click", func(event *js.Object) {
		event.Call("stopPropagation")
		s.menu.Get("classList").Call("toggle", "active")
	})

	doc.Call("addEventListener", "click", func(event *js.Object) {
		target := event.Get("target")
		if target.Call("closest", "#"+SwitcherID) == nil {
			s.Close()
		}
	})

	options := s.root.Call("querySelectorAll", ".bg-option")
	for i := 0; i < options.Get("length").Int(); i++ {
		opt := options.Index(i)
		opt.Call("addEventListener", "click", func(event *js.Object) {
			name := opt.Get("dataset").Get("effect").String()
			s.engine.SwitchByName(name)
			s.Close()
		})
	}
	return nil
}

// Close hides the menu.
func (s *Selector) Close() {
	if s.menu != nil {
		s.menu.Get("classList").Call("remove", "active")
	}
}

// MarkActive highlights the option for effect. Assign it to
// Engine.OnSwitch to keep the menu in step with switches from any source.
func (s *Selector) MarkActive(effect background.Effect) {
	if s.root == nil {
		return
	}
	options := s.root.Call("querySelectorAll", ".bg-option")
	for i := 0; i < options.Get("length").Int(); i++ {
		opt := options.Index(i)
		active := opt.Get("dataset").Get("effect").String() == effect.String()
		opt.Get("classList").Call("toggle", "active", active)
	}
}
