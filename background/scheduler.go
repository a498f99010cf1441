package background

import "sync"

// FrameFunc is one frame callback. timestamp is in milliseconds, the unit
// requestAnimationFrame uses.
type FrameFunc func(timestamp float64)

// Handle identifies a scheduled frame. The zero Handle is never issued.
type Handle int

// Scheduler runs frame callbacks on the host's per-frame clock.
type Scheduler interface {
	Schedule(fn FrameFunc) Handle
	Cancel(h Handle)
}

// ManualScheduler is a Scheduler pumped by its owner: native hosts call Step
// from their own tick, tests call it to advance frames deterministically.
type ManualScheduler struct {
	mu      sync.Mutex
	next    Handle
	pending map[Handle]FrameFunc
	order   []Handle
}

// NewManualScheduler creates an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[Handle]FrameFunc)}
}

// Schedule queues fn for the next Step.
func (s *ManualScheduler) Schedule(fn FrameFunc) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	return s.next
}

// Cancel drops a queued callback. Unknown handles are ignored.
func (s *ManualScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, h)
}

// Pending returns how many callbacks are queued.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Step runs every callback queued before the call, in scheduling order.
// Callbacks scheduled while stepping wait for the next Step. Returns the
// number of callbacks run.
func (s *ManualScheduler) Step(timestamp float64) int {
	s.mu.Lock()
	order := s.order
	s.order = nil
	var due []FrameFunc
	for _, h := range order {
		if fn, ok := s.pending[h]; ok {
			due = append(due, fn)
			delete(s.pending, h)
		}
	}
	s.mu.Unlock()

	for _, fn := range due {
		fn(timestamp)
	}
	return len(due)
}
