package background

// Effect identifies one entry of the background catalogue.
type Effect int

// Catalogue, in menu order.
const (
	EffectParticles Effect = iota
	EffectGradient
	EffectWaves
	EffectConstellation
	EffectAurora
	EffectNone
	EffectLightMinimal
	EffectLightGradient
	EffectLightDots

	// EffectUnknown is what an unrecognised id resolves to: no loop, no drawing.
	EffectUnknown Effect = -1
)

// Catalogue lists every selectable effect in order.
var Catalogue = []Effect{
	EffectParticles,
	EffectGradient,
	EffectWaves,
	EffectConstellation,
	EffectAurora,
	EffectNone,
	EffectLightMinimal,
	EffectLightGradient,
	EffectLightDots,
}

type effectInfo struct {
	id    string
	label string
	icon  string
	light bool
}

var effectTable = [...]effectInfo{
	EffectParticles:     {"particles", "Particles", "✦", false},
	EffectGradient:      {"gradient", "Gradient Flow", "◐", false},
	EffectWaves:         {"waves", "Waves", "≋", false},
	EffectConstellation: {"constellation", "Constellation", "✧", false},
	EffectAurora:        {"aurora", "Aurora", "☽", false},
	EffectNone:          {"none", "None (Pure Dark)", "○", false},
	EffectLightMinimal:  {"light-minimal", "Minimal White", "☀", true},
	EffectLightGradient: {"light-gradient", "Soft Gradient", "◑", true},
	EffectLightDots:     {"light-dots", "Dotted Pattern", "⋯", true},
}

// Valid reports whether e is a catalogue member.
func (e Effect) Valid() bool {
	return e >= 0 && int(e) < len(effectTable)
}

// String returns the persisted id, e.g. "light-dots".
func (e Effect) String() string {
	if !e.Valid() {
		return "unknown"
	}
	return effectTable[e].id
}

// Label is the human-readable menu text.
func (e Effect) Label() string {
	if !e.Valid() {
		return ""
	}
	return effectTable[e].label
}

// Icon is the glyph shown next to the menu entry.
func (e Effect) Icon() string {
	if !e.Valid() {
		return ""
	}
	return effectTable[e].icon
}

// IsLight reports whether the effect renders in light mode.
func (e Effect) IsLight() bool {
	return e.Valid() && effectTable[e].light
}

// Stateful reports whether the effect keeps a particle buffer.
func (e Effect) Stateful() bool {
	switch e {
	case EffectParticles, EffectConstellation, EffectLightDots:
		return true
	}
	return false
}

// ParseEffect resolves a persisted id. Unknown ids return EffectUnknown, false.
func ParseEffect(id string) (Effect, bool) {
	for i, info := range effectTable {
		if info.id == id {
			return Effect(i), true
		}
	}
	return EffectUnknown, false
}

// Step returns the catalogue entry n places after e, wrapping at both ends.
// An unknown effect steps from the start of the catalogue.
func (e Effect) Step(n int) Effect {
	if !e.Valid() {
		e = Catalogue[0]
		if n > 0 {
			n--
		}
	}
	size := len(Catalogue)
	return Catalogue[((int(e)+n)%size+size)%size]
}
