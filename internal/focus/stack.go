package focus

import "github.com/alexisbeaulieu97/focuskit/internal/dom"

// TrapStack coordinates nested traps, e.g. a confirmation dialog opened from
// inside another dialog. Only the top trap reacts to keys; the ones below are
// paused until it is released.
type TrapStack struct {
	traps []*Trap
}

// Push pauses the current top and activates t on container. If t does not
// become active the previous top is resumed and t is not recorded. Pushing a
// trap that is already active does nothing.
func (s *TrapStack) Push(t *Trap, container *dom.Element, opts TrapOptions) {
	s.prune()
	if t.IsActive() {
		// Activate logs and ignores the repeat.
		t.Activate(container, opts)
		return
	}
	prev := s.Top()
	if prev != nil {
		prev.Pause()
	}

	inner := opts.OnDeactivate
	opts.OnDeactivate = func() {
		s.prune()
		if inner != nil {
			inner()
		}
	}

	t.Activate(container, opts)
	if !t.IsActive() {
		if prev != nil {
			prev.Unpause()
		}
		return
	}
	s.traps = append(s.traps, t)
}

// Pop deactivates the top trap and resumes the one below. It returns the
// released trap, or nil when the stack is empty.
func (s *TrapStack) Pop() *Trap {
	s.prune()
	if len(s.traps) == 0 {
		return nil
	}
	top := s.traps[len(s.traps)-1]
	s.traps = s.traps[:len(s.traps)-1]
	top.Deactivate()
	if next := s.Top(); next != nil {
		next.Unpause()
	}
	return top
}

// Top returns the innermost trap, or nil.
func (s *TrapStack) Top() *Trap {
	if len(s.traps) == 0 {
		return nil
	}
	return s.traps[len(s.traps)-1]
}

// Len reports how many traps are stacked.
func (s *TrapStack) Len() int {
	s.prune()
	return len(s.traps)
}

// Clear releases every trap, innermost first.
func (s *TrapStack) Clear() {
	for s.Pop() != nil {
	}
}

// prune drops traps that were released behind the stack's back (Escape) and
// resumes the new top.
func (s *TrapStack) prune() {
	changed := false
	for len(s.traps) > 0 && !s.traps[len(s.traps)-1].IsActive() {
		s.traps = s.traps[:len(s.traps)-1]
		changed = true
	}
	if changed {
		if top := s.Top(); top != nil {
			top.Unpause()
		}
	}
}
