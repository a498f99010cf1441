package background

import "testing"

func TestBackground(t *testing.T) {
	if got := Background(false); got != Theme.DarkBackground {
		t.Errorf("Expected dark background %v, got %v", Theme.DarkBackground, got)
	}
	if got := Background(true); got != Theme.LightBackground {
		t.Errorf("Expected light background %v, got %v", Theme.LightBackground, got)
	}
	if Theme.DarkBackground.A != 1 || Theme.LightBackground.A != 1 {
		t.Error("Expected opaque backgrounds")
	}
}
