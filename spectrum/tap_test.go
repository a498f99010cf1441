//go:build !js

package spectrum

import (
	"errors"
	"os"
	"strings"
	"testing"
)

// constStreamer plays a fixed amplitude for a number of frames.
type constStreamer struct {
	value  float64
	frames int
	err    error
}

func (s *constStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.frames <= 0 {
		return 0, false
	}
	n := min(len(samples), s.frames)
	for i := 0; i < n; i++ {
		samples[i] = [2]float64{s.value, s.value}
	}
	s.frames -= n
	return n, true
}

func (s *constStreamer) Err() error { return s.err }

func TestTap_PassesThrough(t *testing.T) {
	src := &constStreamer{value: 0.5, frames: 100}
	tap := NewTap(src, 64)

	buf := make([][2]float64, 40)
	n, ok := tap.Stream(buf)
	if n != 40 || !ok {
		t.Fatalf("Expected 40 frames, got %d ok=%v", n, ok)
	}
	if buf[0][0] != 0.5 {
		t.Errorf("Expected samples to reach the caller, got %v", buf[0])
	}
}

func TestTap_SnapshotWraps(t *testing.T) {
	tap := NewTap(&constStreamer{value: 1, frames: 1000}, 8)

	buf := make([][2]float64, 5)
	tap.Stream(buf)
	if got := len(tap.Snapshot(100)); got != 5 {
		t.Errorf("Expected 5 recorded frames, got %d", got)
	}

	tap.Stream(buf)
	if got := len(tap.Snapshot(100)); got != 8 {
		t.Errorf("Expected snapshot capped at ring size 8, got %d", got)
	}
}

func TestTap_SnapshotOrder(t *testing.T) {
	src := &rampStreamer{}
	tap := NewTap(src, 4)
	tap.Stream(make([][2]float64, 6))

	snap := tap.Snapshot(3)
	for i, want := range []float64{3, 4, 5} {
		if snap[i][0] != want {
			t.Errorf("Frame %d: expected %f, got %f", i, want, snap[i][0])
		}
	}
}

func TestTap_LevelsSmoothing(t *testing.T) {
	tap := NewTap(&constStreamer{value: 1, frames: 10000}, RingSize)
	tap.Stream(make([][2]float64, WindowSize))

	first := tap.Levels(8)
	for i, v := range first {
		if v != 102 {
			t.Errorf("Band %d: expected 102 after one update, got %d", i, v)
		}
	}
	second := tap.Levels(8)
	if second[0] != 163 {
		t.Errorf("Expected 163 after two updates, got %d", second[0])
	}
}

func TestTap_LevelsSilence(t *testing.T) {
	tap := NewTap(&constStreamer{}, 16)
	for i, v := range tap.Levels(4) {
		if v != 0 {
			t.Errorf("Band %d: expected 0 with no audio, got %d", i, v)
		}
	}
}

func TestTap_Err(t *testing.T) {
	want := errors.New("boom")
	tap := NewTap(&constStreamer{err: want}, 4)
	if tap.Err() != want {
		t.Errorf("Expected source error, got %v", tap.Err())
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, _, err := Open("testdata/missing.ogg"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

// rampStreamer emits 0, 1, 2, ... on both channels.
type rampStreamer struct{ next float64 }

func (s *rampStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{s.next, s.next}
		s.next++
	}
	return len(samples), true
}

func (s *rampStreamer) Err() error { return nil }

func TestOpen_UnsupportedType(t *testing.T) {
	path := t.TempDir() + "/track.ogg"
	if err := os.WriteFile(path, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := Open(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("Expected unsupported type error, got %v", err)
	}
}
