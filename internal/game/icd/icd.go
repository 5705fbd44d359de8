// Package icd gates how often an attack source may apply its element,
// independently of how often it deals damage.
package icd

import (
	"fmt"

	"github.com/udisondev/squadsim/internal/model"
)

// Timer decides whether the next qualifying hit of one source applies its
// element. Callers ask ShouldApply and then report the outcome with Update
// at the same frame; a Timer has exactly one writer.
type Timer interface {
	ShouldApply(t model.Frame) bool
	Update(t model.Frame, fired bool) error
	Reset()
}

// Bucket is the hit-count flavour: the first hit of a window applies, then
// every Every-th hit, with at most Cap applications inside any span of
// Window frames.
type Bucket struct {
	Every  int
	Cap    int
	Window model.Frame

	hits        int
	windowStart model.Frame
	started     bool
	last        model.Frame
	seen        bool

	// ring of the last Cap application frames
	applied []model.Frame
	head    int
	count   int
}

// NewBucket returns a bucket applying on every n-th hit, at most limit
// times per window frames.
func NewBucket(every, limit int, window model.Frame) (*Bucket, error) {
	if every < 1 || limit < 1 || window <= 0 {
		return nil, fmt.Errorf("%w: icd bucket every=%d cap=%d window=%d", model.ErrInvalidSpec, every, limit, window)
	}
	return &Bucket{
		Every:   every,
		Cap:     limit,
		Window:  window,
		applied: make([]model.Frame, limit),
	}, nil
}

// Hits returns the number of hits counted in the current window.
func (b *Bucket) Hits() int { return b.hits }

func (b *Bucket) expired(t model.Frame) bool {
	return b.started && t-b.windowStart >= b.Window
}

// ShouldApply reports whether a hit at t would apply its element.
func (b *Bucket) ShouldApply(t model.Frame) bool {
	hits := b.hits
	if !b.started || b.expired(t) {
		hits = 0
	}
	if hits >= b.Every*b.Cap || hits%b.Every != 0 {
		return false
	}
	if b.count < b.Cap {
		return true
	}
	oldest := b.applied[b.head]
	return t-oldest >= b.Window
}

// Update records a hit at t. fired reports whether the hit applied.
func (b *Bucket) Update(t model.Frame, fired bool) error {
	if b.seen && t < b.last {
		return fmt.Errorf("%w: icd hit at %d after %d", model.ErrTimestampRegression, t, b.last)
	}
	b.last, b.seen = t, true

	if !b.started || b.expired(t) {
		b.started = true
		b.windowStart = t
		b.hits = 0
	}
	if b.hits < b.Every*b.Cap {
		b.hits++
	}
	if fired {
		b.applied[b.head] = t
		b.head = (b.head + 1) % b.Cap
		if b.count < b.Cap {
			b.count++
		}
	}
	return nil
}

// Reset restores the bucket to its initial state.
func (b *Bucket) Reset() {
	b.hits = 0
	b.windowStart = 0
	b.started = false
	b.last = 0
	b.seen = false
	b.head = 0
	b.count = 0
	clear(b.applied)
}

// Cooldown is the duration flavour: a hit applies if nothing applied during
// the previous Duration frames.
type Cooldown struct {
	Duration model.Frame

	lastFire model.Frame
	fired    bool
	last     model.Frame
	seen     bool
}

// NewCooldown returns a duration timer.
func NewCooldown(d model.Frame) (*Cooldown, error) {
	if d < 0 {
		return nil, fmt.Errorf("%w: icd cooldown %d", model.ErrInvalidSpec, d)
	}
	return &Cooldown{Duration: d}, nil
}

// ShouldApply reports whether a hit at t would apply its element.
func (c *Cooldown) ShouldApply(t model.Frame) bool {
	return !c.fired || t-c.lastFire >= c.Duration
}

// Update records a hit at t.
func (c *Cooldown) Update(t model.Frame, fired bool) error {
	if c.seen && t < c.last {
		return fmt.Errorf("%w: icd hit at %d after %d", model.ErrTimestampRegression, t, c.last)
	}
	c.last, c.seen = t, true
	if fired {
		c.lastFire = t
		c.fired = true
	}
	return nil
}

// Reset restores the timer to its initial state.
func (c *Cooldown) Reset() {
	*c = Cooldown{Duration: c.Duration}
}

// always applies on every hit.
type always struct {
	last model.Frame
	seen bool
}

func (a *always) ShouldApply(model.Frame) bool { return true }

func (a *always) Update(t model.Frame, _ bool) error {
	if a.seen && t < a.last {
		return fmt.Errorf("%w: icd hit at %d after %d", model.ErrTimestampRegression, t, a.last)
	}
	a.last, a.seen = t, true
	return nil
}

func (a *always) Reset() { *a = always{} }
