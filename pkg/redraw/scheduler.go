// Package redraw coalesces redraw requests into a single host repaint.
//
// Request may be called any number of times between two paints; the host
// invalidate callback only fires on the transition from clean to pending.
// The host then calls Paint from its paint cycle, which renders the live
// state and clears the pending flag.
package redraw

import "sync"

type Scheduler struct {
	mu         sync.Mutex
	pending    bool
	invalidate func()
	requests   uint64
	paints     uint64
}

func New(invalidate func()) *Scheduler {
	return &Scheduler{invalidate: invalidate}
}

// SetInvalidate replaces the host callback. A request that is already
// pending is forwarded to the new host.
func (s *Scheduler) SetInvalidate(f func()) {
	s.mu.Lock()
	s.invalidate = f
	pending := s.pending
	s.mu.Unlock()
	if pending && f != nil {
		f()
	}
}

// Request marks the surface stale. Repeated requests before the next Paint
// are no-ops.
func (s *Scheduler) Request() {
	s.mu.Lock()
	s.requests++
	if s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = true
	f := s.invalidate
	s.mu.Unlock()
	if f != nil {
		f()
	}
}

func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Paint runs fn if a redraw is pending and reports whether it did.
func (s *Scheduler) Paint(fn func()) bool {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return false
	}
	s.pending = false
	s.paints++
	s.mu.Unlock()
	fn()
	return true
}

// ForcePaint runs fn unconditionally, used when the host repaints for its
// own reasons (resize, expose).
func (s *Scheduler) ForcePaint(fn func()) {
	s.mu.Lock()
	s.pending = false
	s.paints++
	s.mu.Unlock()
	fn()
}

// Stats returns the number of requests and paints seen so far.
func (s *Scheduler) Stats() (requests, paints uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests, s.paints
}
