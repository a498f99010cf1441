package web

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/simukka/backdrop/background"
)

//go:embed selector.gohtml
var selectorHTML string

var selectorTemplate = template.Must(template.New("selector").Parse(selectorHTML))

// MenuOption is one selectable effect.
type MenuOption struct {
	ID     string
	Label  string
	Icon   string
	Active bool
}

// MenuGroup is a titled run of options.
type MenuGroup struct {
	Title   string
	Options []MenuOption
}

// MenuData holds everything the selector template renders.
type MenuData struct {
	Groups []MenuGroup
}

// NewMenuData groups the catalogue into dark and light sections, marking
// active as selected.
func NewMenuData(active background.Effect) MenuData {
	dark := MenuGroup{Title: "Background Effect"}
	light := MenuGroup{Title: "Light Mode"}
	for _, e := range background.Catalogue {
		opt := MenuOption{ID: e.String(), Label: e.Label(), Icon: e.Icon(), Active: e == active}
		if e.IsLight() {
			light.Options = append(light.Options, opt)
		} else {
			dark.Options = append(dark.Options, opt)
		}
	}
	return MenuData{Groups: []MenuGroup{dark, light}}
}

// RenderMenu returns the selector markup.
func RenderMenu(active background.Effect) (string, error) {
	var buf bytes.Buffer
	if err := selectorTemplate.Execute(&buf, NewMenuData(active)); err != nil {
		return "", fmt.Errorf("render selector: %w", err)
	}
	return buf.String(), nil
}
