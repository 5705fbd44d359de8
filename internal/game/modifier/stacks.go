package modifier

import "github.com/udisondev/squadsim/internal/model"

// Stacks counts buff stacks that expire individually Duration frames after
// they were gained. At most Max are held; gaining at the cap replaces the
// oldest.
type Stacks struct {
	Max      int
	Duration model.Frame
	gains    []model.Frame
}

// NewStacks returns an empty stack counter.
func NewStacks(limit int, d model.Frame) *Stacks {
	return &Stacks{Max: limit, Duration: d}
}

func (s *Stacks) expire(t model.Frame) {
	live := s.gains[:0]
	for _, g := range s.gains {
		if t-g < s.Duration {
			live = append(live, g)
		}
	}
	s.gains = live
}

// Gain adds one stack at t.
func (s *Stacks) Gain(t model.Frame) {
	if s.Max <= 0 {
		return
	}
	s.expire(t)
	if len(s.gains) >= s.Max {
		s.gains = s.gains[1:]
	}
	s.gains = append(s.gains, t)
}

// Count returns the stacks active at t.
func (s *Stacks) Count(t model.Frame) int {
	n := 0
	for _, g := range s.gains {
		if t >= g && t-g < s.Duration {
			n++
		}
	}
	return n
}

// Reset drops every stack.
func (s *Stacks) Reset() { s.gains = s.gains[:0] }

// Window is a single buff that is active from a start frame for a fixed
// duration and can be refreshed.
type Window struct {
	Duration model.Frame
	start    model.Frame
	active   bool
}

// Open starts or refreshes the window at t.
func (w *Window) Open(t model.Frame) {
	w.start = t
	w.active = true
}

// Active reports whether t falls inside the window.
func (w *Window) Active(t model.Frame) bool {
	return w.active && t >= w.start && t-w.start < w.Duration
}

// Reset closes the window.
func (w *Window) Reset() { *w = Window{Duration: w.Duration} }
