package drive

import "time"

// transitionScheduler holds at most one pending stage handoff. Entries are
// keyed by run generation so a handoff scheduled by an earlier run can
// never fire into a new one.
type transitionScheduler struct {
	pending bool
	due     time.Time
	gen     uint64
}

func (s *transitionScheduler) schedule(due time.Time, gen uint64) {
	s.pending = true
	s.due = due
	s.gen = gen
}

func (s *transitionScheduler) cancel() {
	s.pending = false
}

// poll reports whether the entry for gen is due at now and consumes it.
// Stale entries from other generations are dropped.
func (s *transitionScheduler) poll(now time.Time, gen uint64) bool {
	if !s.pending {
		return false
	}
	if s.gen != gen {
		s.pending = false
		return false
	}
	if now.Before(s.due) {
		return false
	}
	s.pending = false
	return true
}
