package prefs

import "encoding/json"

// DefaultVolume applies when no volume was saved.
const DefaultVolume = 0.5

// PlayerSettings is the music player's persisted state.
type PlayerSettings struct {
	CurrentTrack int     `json:"currentTrack"`
	Volume       float64 `json:"volume"`
	WasPlaying   bool    `json:"wasPlaying"`
}

// DefaultPlayerSettings returns the state of a fresh player.
func DefaultPlayerSettings() PlayerSettings {
	return PlayerSettings{Volume: DefaultVolume}
}

// playerRecord uses pointers so missing fields can be told apart from zeros.
type playerRecord struct {
	CurrentTrack *int     `json:"currentTrack"`
	Volume       *float64 `json:"volume"`
	WasPlaying   bool     `json:"wasPlaying"`
}

// DecodePlayerSettings parses a stored blob. Missing fields take their
// defaults and a malformed blob yields DefaultPlayerSettings.
func DecodePlayerSettings(raw string) PlayerSettings {
	s := DefaultPlayerSettings()
	var rec playerRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return s
	}
	if rec.CurrentTrack != nil {
		s.CurrentTrack = *rec.CurrentTrack
	}
	if rec.Volume != nil {
		s.Volume = *rec.Volume
	}
	s.WasPlaying = rec.WasPlaying
	return s
}

// LoadPlayer reads the player state from store.
func LoadPlayer(store Storage) PlayerSettings {
	raw, ok := store.Get(KeyPlayer)
	if !ok {
		return DefaultPlayerSettings()
	}
	return DecodePlayerSettings(raw)
}

// SavePlayer writes the player state to store.
func SavePlayer(store Storage, s PlayerSettings) {
	b, err := json.Marshal(s)
	if err != nil {
		return
	}
	store.Set(KeyPlayer, string(b))
}

// PlayerDisabled reports whether the player was switched off after
// repeated audio errors.
func PlayerDisabled(store Storage) bool {
	v, ok := store.Get(KeyPlayerDisabled)
	return ok && v == "true"
}

// DisablePlayer records that audio keeps failing.
func DisablePlayer(store Storage) {
	store.Set(KeyPlayerDisabled, "true")
}

// MaxAudioErrors is how many consecutive audio errors disable the player.
const MaxAudioErrors = 3

// PlayerHealth counts consecutive audio errors and disables the player in
// store once MaxAudioErrors is reached.
type PlayerHealth struct {
	Store  Storage
	errors int
}

// Fail records an audio error. It returns true when the player was disabled.
func (h *PlayerHealth) Fail() bool {
	h.errors++
	if h.errors >= MaxAudioErrors {
		DisablePlayer(h.Store)
		return true
	}
	return false
}

// Ready resets the error count after a successful load.
func (h *PlayerHealth) Ready() {
	h.errors = 0
}
