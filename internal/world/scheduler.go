package world

// action is one deferred callback with a countdown in seconds.
type action struct {
	tag   string
	delay float64
	run   func(w *World)
}

// Scheduler queues deferred actions for a single entity. Countdowns are
// decremented by the fixed tick step, never by wall clock. Actions fire
// once, in scheduling order, when their countdown reaches zero.
type Scheduler struct {
	pending []action
}

// Schedule queues run to fire after delay seconds under the given tag.
func (s *Scheduler) Schedule(tag string, delay float64, run func(w *World)) {
	s.pending = append(s.pending, action{tag: tag, delay: delay, run: run})
}

// Advance decrements all countdowns by dt and fires the due actions. Due
// actions are removed before their handlers run so a handler can schedule
// or cancel freely.
func (s *Scheduler) Advance(dt float64, w *World) {
	var due []action
	rest := s.pending[:0]
	for i := range s.pending {
		s.pending[i].delay -= dt
		if s.pending[i].delay <= 0 {
			due = append(due, s.pending[i])
		} else {
			rest = append(rest, s.pending[i])
		}
	}
	s.pending = rest
	for _, a := range due {
		a.run(w)
	}
}

// Cancel drops every pending action with the given tag.
func (s *Scheduler) Cancel(tag string) {
	rest := s.pending[:0]
	for _, a := range s.pending {
		if a.tag != tag {
			rest = append(rest, a)
		}
	}
	s.pending = rest
}

// Pending reports whether any action with the given tag is queued.
func (s *Scheduler) Pending(tag string) bool {
	for _, a := range s.pending {
		if a.tag == tag {
			return true
		}
	}
	return false
}

// Clear drops all pending actions.
func (s *Scheduler) Clear() { s.pending = s.pending[:0] }
