package notify

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestKind_Names(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
	}{
		{Info, "info"},
		{Success, "success"},
		{Warning, "warning"},
		{Error, "error"},
		{Kind(42), "info"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("Expected %q, got %q", tt.name, got)
		}
	}
	if ParseKind("warning") != Warning || ParseKind("bogus") != Info {
		t.Error("ParseKind did not map names back")
	}
}

func TestLogNotifier_DefaultDuration(t *testing.T) {
	var buf bytes.Buffer
	n := LogNotifier{Logger: log.New(&buf, "", 0)}

	Warn(n, "Click the play button again to start music")
	n.Show("saved", Success, 0)

	out := buf.String()
	if !strings.Contains(out, "[warning] Click the play button again to start music (4s)") {
		t.Errorf("Unexpected warning output: %q", out)
	}
	if !strings.Contains(out, "[success] saved (4s)") {
		t.Errorf("Expected zero duration to default to 4s, got %q", out)
	}
}
