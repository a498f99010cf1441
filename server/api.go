//go:build !js
// +build !js

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/simukka/backdrop/background"
	"github.com/simukka/backdrop/raster"
)

// Poster limits
const (
	DefaultPosterWidth  = 1200
	DefaultPosterHeight = 800
	DefaultPosterFrames = 60
	DefaultPosterSeed   = 1

	MaxPosterSize   = 4096
	MaxPosterFrames = 600
)

// EffectInfo is one catalogue entry as served by /api/effects.
type EffectInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Light bool   `json:"light"`
}

// handleEffects lists the catalogue in menu order.
func handleEffects(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	effects := make([]EffectInfo, 0, len(background.Catalogue))
	for _, e := range background.Catalogue {
		effects = append(effects, EffectInfo{
			ID:    e.String(),
			Label: e.Label(),
			Icon:  e.Icon(),
			Light: e.IsLight(),
		})
	}
	json.NewEncoder(w).Encode(effects)
}

// handlePoster renders a PNG of a fresh engine after a number of frames.
func handlePoster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	p, err := parsePoster(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := raster.Render(p).EncodePNG(&buf); err != nil {
		log.Printf("Poster %s failed: %v", p.Effect, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// parsePoster reads poster parameters, applying defaults for missing ones.
func parsePoster(q url.Values) (raster.Poster, error) {
	p := raster.Poster{
		Effect: q.Get("effect"),
		Width:  DefaultPosterWidth,
		Height: DefaultPosterHeight,
		Frames: DefaultPosterFrames,
		Seed:   DefaultPosterSeed,
	}
	if p.Effect == "" {
		p.Effect = background.EffectParticles.String()
	}

	var err error
	if p.Width, err = intParam(q, "w", p.Width, 1, MaxPosterSize); err != nil {
		return p, err
	}
	if p.Height, err = intParam(q, "h", p.Height, 1, MaxPosterSize); err != nil {
		return p, err
	}
	if p.Frames, err = intParam(q, "frames", p.Frames, 0, MaxPosterFrames); err != nil {
		return p, err
	}
	if s := q.Get("seed"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return p, fmt.Errorf("invalid seed %q: %w", s, err)
		}
		p.Seed = uint32(seed)
	}
	return p, nil
}

func intParam(q url.Values, key string, def, min, max int) (int, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return v, nil
}
