package model

import "fmt"

// Never is the counter value of an action type that has not been used yet.
// Counters saturate at Never.
const Never Frame = 1 << 30

// Counters holds, per action type, the frames elapsed since that action last
// executed.
type Counters [ActionTypeCount]Frame

// NewCounters returns counters where every action reads as never used.
func NewCounters() Counters {
	var c Counters
	for i := range c {
		c[i] = Never
	}
	return c
}

// Advance moves every counter forward by dt frames.
func (c *Counters) Advance(dt Frame) error {
	if dt < 0 {
		return fmt.Errorf("%w: advance by %d", ErrNegativeCounter, dt)
	}
	for i := range c {
		if c[i] >= Never-dt {
			c[i] = Never
			continue
		}
		c[i] += dt
	}
	return nil
}

// Reset marks a as executed now. Both skill variants share one cooldown
// clock, so resetting either resets both.
func (c *Counters) Reset(a ActionType) {
	if a.IsSkill() {
		c[ActionSkillPress] = 0
		c[ActionSkillHold] = 0
		return
	}
	c[a] = 0
}

// Since returns the frames elapsed since a last executed.
func (c *Counters) Since(a ActionType) Frame {
	return c[a]
}

// Validate checks that no counter went negative.
func (c *Counters) Validate() error {
	for i, v := range c {
		if v < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeCounter, ActionType(i), v)
		}
	}
	return nil
}
