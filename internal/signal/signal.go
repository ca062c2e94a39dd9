// Package signal delivers integer change notifications from an input control
// to a single connected handler, with scoped suppression for programmatic writes.
package signal

// Signal is not safe for concurrent use. Controls own one each and touch it
// only from the UI thread.
type Signal struct {
	handler func(int)
	depth   int
}

// Connect replaces the connected handler. A nil handler disconnects.
func (s *Signal) Connect(handler func(int)) {
	s.handler = handler
}

// Emit delivers value to the handler unless the signal is blocked or
// unconnected. It reports whether the handler ran.
func (s *Signal) Emit(value int) bool {
	if s.depth > 0 || s.handler == nil {
		return false
	}
	s.handler(value)
	return true
}

// Block suppresses delivery until the returned release func is called.
// Blocks nest; each release undoes exactly one Block no matter how many
// times it is invoked, so it is safe to defer.
func (s *Signal) Block() (release func()) {
	s.depth++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		s.depth--
	}
}

func (s *Signal) Blocked() bool {
	return s.depth > 0
}
