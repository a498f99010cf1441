//go:build !js
// +build !js

package main

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(".").ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"healthy"`) {
		t.Errorf("Unexpected body %s", rec.Body.String())
	}
}

func TestIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(".").ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected text/html, got %s", ct)
	}
}

func TestEffects(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(".").ServeHTTP(rec, httptest.NewRequest("GET", "/api/effects", nil))

	var effects []EffectInfo
	if err := json.NewDecoder(rec.Body).Decode(&effects); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(effects) != 9 {
		t.Fatalf("Expected 9 effects, got %d", len(effects))
	}
	if effects[0].ID != "particles" || effects[len(effects)-1].ID != "light-dots" {
		t.Errorf("Expected catalogue order, got %s..%s", effects[0].ID, effects[len(effects)-1].ID)
	}
	light := 0
	for _, e := range effects {
		if e.Light {
			light++
		}
	}
	if light != 3 {
		t.Errorf("Expected 3 light effects, got %d", light)
	}
}

func TestParsePoster(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
		width   int
		frames  int
		seed    uint32
	}{
		{"defaults", "", false, DefaultPosterWidth, DefaultPosterFrames, DefaultPosterSeed},
		{"explicit", "w=64&h=32&frames=3&seed=9", false, 64, 3, 9},
		{"zero frames", "frames=0", false, DefaultPosterWidth, 0, DefaultPosterSeed},
		{"too wide", "w=5000", true, 0, 0, 0},
		{"zero height", "h=0", true, 0, 0, 0},
		{"too many frames", "frames=601", true, 0, 0, 0},
		{"not a number", "w=big", true, 0, 0, 0},
		{"bad seed", "seed=-1", true, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			p, err := parsePoster(q)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if p.Width != tt.width || p.Frames != tt.frames || p.Seed != tt.seed {
				t.Errorf("Expected w=%d frames=%d seed=%d, got w=%d frames=%d seed=%d",
					tt.width, tt.frames, tt.seed, p.Width, p.Frames, p.Seed)
			}
			if p.Effect != "particles" {
				t.Errorf("Expected default effect particles, got %s", p.Effect)
			}
		})
	}
}

func TestPoster(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/poster?effect=waves&w=48&h=24&frames=2", nil)
	newMux(".").ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 24 {
		t.Errorf("Expected 48x24, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestPoster_BadRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(".").ServeHTTP(rec, httptest.NewRequest("GET", "/api/poster?w=99999", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}
