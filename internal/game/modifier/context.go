// Package modifier composes stat modifiers from kits, weapons and equipment
// into one damage computation per attack.
package modifier

import (
	"github.com/udisondev/squadsim/internal/game/reaction"
	"github.com/udisondev/squadsim/internal/model"
)

// SignalKind classifies a this-step signal.
type SignalKind uint8

const (
	SignalAction   SignalKind = iota // an actor committed an action
	SignalHit                        // an attack resolved
	SignalReaction                   // an attack triggered a reaction
)

// Signal records something that happened during the current step. Hooks
// read signals instead of comparing timestamps.
type Signal struct {
	Kind     SignalKind
	Actor    int
	Action   model.ActionType
	Attack   model.AttackKind
	Reaction model.ReactionKind
	Frame    model.Frame
}

// StepContext is what hooks and observers see of the world.
type StepContext struct {
	Frame  model.Frame
	Roster []*model.CharacterData
	Enemy  *model.EnemySpec

	// Aura is the enemy aura right before the attack being resolved.
	Aura model.Element
	// Reaction is the result of the attack being resolved.
	Reaction reaction.Result

	Signals []Signal

	pending []model.Attack
}

// Begin starts a new step at frame t, dropping the previous step's signals.
func (c *StepContext) Begin(t model.Frame) {
	c.Frame = t
	c.Aura = model.ElementNone
	c.Reaction = reaction.Result{}
	c.Signals = c.Signals[:0]
	c.pending = c.pending[:0]
}

// Emit records s for the current step.
func (c *StepContext) Emit(s Signal) {
	s.Frame = c.Frame
	c.Signals = append(c.Signals, s)
}

// Each calls fn for every signal of kind.
func (c *StepContext) Each(kind SignalKind, fn func(Signal)) {
	for _, s := range c.Signals {
		if s.Kind == kind {
			fn(s)
		}
	}
}

// Schedule asks the scheduler to enqueue a follow-up attack after the
// observers have run.
func (c *StepContext) Schedule(a model.Attack) {
	c.pending = append(c.pending, a)
}

// Pending returns the attacks scheduled during this step.
func (c *StepContext) Pending() []model.Attack { return c.pending }

// OnField returns the roster index of the on-field actor, or -1.
func (c *StepContext) OnField() int {
	for _, ch := range c.Roster {
		if ch.OnField {
			return ch.Index
		}
	}
	return -1
}

// Actor returns the roster slot i, or nil.
func (c *StepContext) Actor(i int) *model.CharacterData {
	if i < 0 || i >= len(c.Roster) {
		return nil
	}
	return c.Roster[i]
}
