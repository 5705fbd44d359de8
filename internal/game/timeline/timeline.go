// Package timeline decides what each actor does next and keeps the
// per-actor relative-time bookkeeping in step with those decisions.
package timeline

import (
	"fmt"

	"github.com/udisondev/squadsim/internal/game/energy"
	"github.com/udisondev/squadsim/internal/model"
)

// Counters are the per-action relative-time counters of one actor.
type Counters = model.Counters

// Never is the counter value of an action that has not been used yet.
const Never = model.Never

// Snapshot is an immutable view of one actor taken at the start of a step.
// Every actor's snapshot is taken before any actor commits, so decisions in
// one step never see each other's effects.
type Snapshot struct {
	Index     int
	Name      string
	Element   model.Element
	Frame     model.Frame
	Energy    float64
	Cost      float64
	Counters  Counters
	Combo     int
	BusyUntil model.Frame
	OnField   bool
	Talents   *model.Talents
}

// Take snapshots c at frame t.
func Take(c *model.CharacterData, t model.Frame) Snapshot {
	return Snapshot{
		Index:     c.Index,
		Name:      c.Name(),
		Element:   c.Element(),
		Frame:     t,
		Energy:    c.Energy,
		Cost:      c.EnergyCost(),
		Counters:  c.Counters,
		Combo:     c.Combo,
		BusyUntil: c.BusyUntil,
		OnField:   c.OnField,
		Talents:   &c.Spec.Talents,
	}
}

// TakeAll snapshots the whole roster at t.
func TakeAll(roster []*model.CharacterData, t model.Frame) []Snapshot {
	out := make([]Snapshot, len(roster))
	for i, c := range roster {
		out[i] = Take(c, t)
	}
	return out
}

// Busy reports whether the actor is still inside an animation.
func (s Snapshot) Busy() bool { return s.Frame < s.BusyUntil }

// BurstReady reports whether the burst is legal: full energy and cooldown elapsed.
func (s Snapshot) BurstReady() bool {
	return energy.CanBurst(s.Energy, s.Cost, s.Counters.Since(model.ActionBurst), s.Talents.Burst.Cooldown)
}

// SkillReady reports whether the press (hold=false) or hold variant is off
// cooldown. Both variants read the same counter.
func (s Snapshot) SkillReady(hold bool) bool {
	ab := &s.Talents.Skill
	if hold {
		if s.Talents.SkillHold == nil {
			return false
		}
		ab = s.Talents.SkillHold
	}
	return s.Counters.Since(model.ActionSkillPress) >= ab.Cooldown
}

// NormalReady reports whether the actor can start the next swing.
// Off-field actors never normal attack.
func (s Snapshot) NormalReady() bool {
	if !s.OnField {
		return false
	}
	if s.Combo < 0 || s.Combo >= len(s.Talents.Normals) {
		return true
	}
	return s.Counters.Since(model.ActionNormal) >= s.Talents.Normals[s.Combo].Frames
}

// ChargedReady reports whether a charged attack is available.
func (s Snapshot) ChargedReady() bool {
	return s.OnField && s.Talents.Charged != nil
}

// Legal reports whether action type a may be taken from this snapshot.
func (s Snapshot) Legal(a model.ActionType) bool {
	if a == model.ActionStandStill {
		return true
	}
	if s.Busy() {
		return false
	}
	switch a {
	case model.ActionBurst:
		return s.BurstReady()
	case model.ActionSkillPress:
		return s.SkillReady(false)
	case model.ActionSkillHold:
		return s.SkillReady(true)
	case model.ActionNormal:
		return s.NormalReady()
	case model.ActionCharged:
		return s.ChargedReady()
	}
	return false
}

// NextSwing returns the combo index the next normal attack would use.
func (s Snapshot) NextSwing() int {
	return NextNormal(s.Combo, s.Counters.Since(model.ActionNormal), s.Talents.Normals, s.Talents.ComboReset)
}

// Action expands a into a full action, filling the combo index for normals.
func (s Snapshot) Action(a model.ActionType) model.Action {
	if a == model.ActionNormal {
		return model.Action{Type: a, Index: s.NextSwing()}
	}
	return model.Action{Type: a}
}

// Decide is the default priority: burst, then skill, then normal attack,
// then stand still.
func Decide(s Snapshot, preferHold bool) model.Action {
	switch {
	case s.Busy():
		return model.StandStill
	case s.BurstReady():
		return s.Action(model.ActionBurst)
	case preferHold && s.SkillReady(true):
		return s.Action(model.ActionSkillHold)
	case s.SkillReady(false):
		return s.Action(model.ActionSkillPress)
	case s.NormalReady():
		return s.Action(model.ActionNormal)
	}
	return model.StandStill
}

// NextNormal returns the combo index following prev. The combo advances by
// exactly one swing, wrapping at the end, while elapsed frames since the
// last swing are inside that swing's animation plus resetWindow; otherwise
// it restarts at 0.
func NextNormal(prev int, elapsed model.Frame, swings []model.Swing, resetWindow model.Frame) int {
	if prev < 0 || prev >= len(swings) {
		return 0
	}
	if elapsed >= swings[prev].Frames+resetWindow {
		return 0
	}
	return (prev + 1) % len(swings)
}

// Commit applies the companion update for action a taken by c at t: resets
// the action's counter, spends energy on burst, marks the actor busy for
// the animation and moves the combo.
func Commit(c *model.CharacterData, a model.Action, t model.Frame) error {
	if a.Type == model.ActionStandStill {
		return nil
	}
	if t < c.BusyUntil {
		return fmt.Errorf("%w: %s acts at %d while busy until %d", model.ErrIllegalAction, c.Name(), t, c.BusyUntil)
	}

	tal := &c.Spec.Talents
	var frames model.Frame
	switch a.Type {
	case model.ActionNormal:
		if a.Index < 0 || a.Index >= len(tal.Normals) {
			return fmt.Errorf("%w: %s has no swing %d", model.ErrIllegalAction, c.Name(), a.Index)
		}
		frames = tal.Normals[a.Index].Frames
		c.Combo = a.Index
	case model.ActionCharged:
		if tal.Charged == nil {
			return fmt.Errorf("%w: %s has no charged attack", model.ErrIllegalAction, c.Name())
		}
		frames = tal.Charged.Frames
		c.Combo = -1
	case model.ActionSkillPress:
		frames = tal.Skill.Frames
	case model.ActionSkillHold:
		if tal.SkillHold == nil {
			return fmt.Errorf("%w: %s has no hold skill", model.ErrIllegalAction, c.Name())
		}
		frames = tal.SkillHold.Frames
	case model.ActionBurst:
		if err := energy.Spend(c); err != nil {
			return err
		}
		frames = tal.Burst.Frames
	default:
		return fmt.Errorf("%w: %s", model.ErrIllegalAction, a)
	}

	c.Counters.Reset(a.Type)
	c.BusyUntil = t + frames
	return nil
}
