package prefs

import "github.com/simukka/backdrop/background"

// Load returns the stored effect if it names a catalogue member, def otherwise.
func Load(store Storage, def background.Effect) background.Effect {
	saved, ok := store.Get(KeyEffect)
	if !ok {
		return def
	}
	if e, ok := background.ParseEffect(saved); ok {
		return e
	}
	background.Debug("ignoring stored effect", saved)
	return def
}

// Save writes the effect id through to the store.
func Save(store Storage, id string) {
	store.Set(KeyEffect, id)
}

// EffectPreference adapts a Storage to background.Preferences.
type EffectPreference struct {
	Store Storage
}

func (p EffectPreference) Load(def background.Effect) background.Effect {
	return Load(p.Store, def)
}

func (p EffectPreference) Save(id string) {
	Save(p.Store, id)
}
