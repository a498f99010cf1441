package background

import "testing"

func TestManualScheduler_StepRunsInOrder(t *testing.T) {
	s := NewManualScheduler()
	var got []int
	s.Schedule(func(float64) { got = append(got, 1) })
	s.Schedule(func(float64) { got = append(got, 2) })

	if n := s.Step(0); n != 2 {
		t.Errorf("Expected 2 callbacks, got %d", n)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected [1 2], got %v", got)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d", s.Pending())
	}
}

func TestManualScheduler_Cancel(t *testing.T) {
	s := NewManualScheduler()
	ran := false
	h := s.Schedule(func(float64) { ran = true })
	if h == 0 {
		t.Fatal("Expected a non-zero handle")
	}
	s.Cancel(h)
	s.Cancel(h + 100)

	if n := s.Step(0); n != 0 || ran {
		t.Errorf("Expected cancelled callback not to run, ran=%v n=%d", ran, n)
	}
}

// TestManualScheduler_RescheduleWaits tests that a callback scheduled during
// Step runs on the next Step, not the current one.
func TestManualScheduler_RescheduleWaits(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	var loop FrameFunc
	loop = func(float64) {
		count++
		s.Schedule(loop)
	}
	s.Schedule(loop)

	s.Step(0)
	s.Step(16)
	s.Step(32)

	if count != 3 {
		t.Errorf("Expected 3 runs, got %d", count)
	}
	if s.Pending() != 1 {
		t.Errorf("Expected 1 pending, got %d", s.Pending())
	}
}

func TestManualScheduler_PassesTimestamp(t *testing.T) {
	s := NewManualScheduler()
	var ts float64
	s.Schedule(func(t float64) { ts = t })
	s.Step(123.5)

	if ts != 123.5 {
		t.Errorf("Expected timestamp 123.5, got %f", ts)
	}
}
