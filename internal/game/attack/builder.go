// Package attack turns decided actions into timed attack records and keeps
// the future-event queue.
package attack

import (
	"fmt"

	"github.com/udisondev/squadsim/internal/game/energy"
	"github.com/udisondev/squadsim/internal/model"
)

// Builder maps one actor's actions onto its talent rows.
type Builder struct {
	Slot int
	Spec *model.CharacterSpec
}

// NewBuilder returns the builder for roster slot wielding spec's talents.
func NewBuilder(slot int, spec *model.CharacterSpec) Builder {
	return Builder{Slot: slot, Spec: spec}
}

// Build returns the attacks and particle deliveries action a produces when
// cast at t. Hits land at t + hitmark + i*spacing; periodic ticks follow at
// t + TickStart + k*TickEvery.
func (b Builder) Build(a model.Action, t model.Frame) ([]model.Attack, []energy.Particle) {
	tal := &b.Spec.Talents
	switch a.Type {
	case model.ActionNormal:
		if a.Index < 0 || a.Index >= len(tal.Normals) {
			return nil, nil
		}
		return b.Swing(a.Index, t), nil
	case model.ActionCharged:
		if tal.Charged == nil {
			return nil, nil
		}
		return b.Ability(tal.Charged, model.KindCharged, model.KindCharged, model.ICDCharged, t)
	case model.ActionSkillPress:
		return b.Ability(&tal.Skill, model.KindSkill, model.KindDot, model.ICDSkill, t)
	case model.ActionSkillHold:
		if tal.SkillHold == nil {
			return nil, nil
		}
		return b.Ability(tal.SkillHold, model.KindSkill, model.KindDot, model.ICDSkill, t)
	case model.ActionBurst:
		return b.Ability(&tal.Burst, model.KindBurst, model.KindBurst, model.ICDBurst, t)
	}
	return nil, nil
}

// Swing builds the hits of normal swing i.
func (b Builder) Swing(i int, t model.Frame) []model.Attack {
	tal := &b.Spec.Talents
	s := tal.Normals[i]
	el := tal.NormalElement
	if el == model.ElementNone {
		el = model.ElementPhysical
	}
	out := make([]model.Attack, 0, s.Hits)
	for h := range s.Hits {
		out = append(out, model.Attack{
			Kind:    model.KindNormal,
			Actor:   b.Slot,
			Ability: fmt.Sprintf("N%d", i+1),
			Mult:    s.Mult,
			Element: el,
			Units:   tal.NormalUnits,
			Frame:   t + s.HitMark + model.Frame(h)*s.Spacing,
			ICD:     model.ICDKey{Actor: b.Slot, Tag: model.ICDNormal},
		})
	}
	return out
}

// Ability builds the main hits, periodic ticks and particles of ab. kind
// tags the main hits and tickKind the ticks; fallback is the ICD tag used
// when the row does not name one.
func (b Builder) Ability(ab *model.Ability, kind, tickKind model.AttackKind, fallback model.ICDTag, t model.Frame) ([]model.Attack, []energy.Particle) {
	out := make([]model.Attack, 0, ab.Hits+ab.Ticks)

	tag := ab.ICD
	if tag == "" {
		tag = fallback
	}
	for h := range ab.Hits {
		out = append(out, model.Attack{
			Kind:    kind,
			Actor:   b.Slot,
			Ability: ab.Name,
			Mult:    ab.Mult,
			Element: b.element(ab.Units),
			Units:   ab.Units,
			Frame:   t + ab.HitMark + model.Frame(h)*ab.Spacing,
			ICD:     model.ICDKey{Actor: b.Slot, Tag: tag},
		})
	}

	tickTag := ab.TickICD
	if tickTag == "" {
		tickTag = tag
	}
	for k := range ab.Ticks {
		out = append(out, model.Attack{
			Kind:    tickKind,
			Actor:   b.Slot,
			Ability: ab.Name + " tick",
			Mult:    ab.TickMult,
			Element: b.element(ab.TickUnits),
			Units:   ab.TickUnits,
			Frame:   t + ab.TickStart + model.Frame(k)*ab.TickEvery,
			ICD:     model.ICDKey{Actor: b.Slot, Tag: tickTag},
		})
	}

	var particles []energy.Particle
	if ab.Particles > 0 {
		particles = append(particles, energy.Particle{
			Source:  b.Slot,
			Count:   ab.Particles,
			Element: b.Spec.Element,
			Frame:   t + ab.ParticleDelay,
		})
	}
	return out, particles
}

// element is the actor's element for hits that carry gauge, the normal
// attack element otherwise.
func (b Builder) element(units float64) model.Element {
	if units > 0 {
		return b.Spec.Element
	}
	if el := b.Spec.Talents.NormalElement; el != model.ElementNone {
		return el
	}
	return model.ElementPhysical
}
