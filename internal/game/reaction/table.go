// Package reaction tracks the target's elemental aura and resolves
// reactions between an incoming element and the aura.
package reaction

import (
	"fmt"

	"github.com/udisondev/squadsim/internal/model"
)

// AuraRule is what a reaction does to the aura it reacted with.
type AuraRule uint8

const (
	AuraConsume AuraRule = iota + 1 // subtract Consume*units
	AuraClear                       // remove the aura
	AuraRetain                      // keep the aura untouched
	AuraReplace                     // swap the aura for Result
)

// Entry defines the reaction of one (trigger, aura) pairing.
type Entry struct {
	Trigger  model.Element
	Aura     model.Element
	Kind     model.ReactionKind
	Category model.ReactionCategory
	Base     float64 // amplifying multiplier, or transformative/additive coefficient
	Rule     AuraRule
	Consume  float64       // AuraConsume only
	Result   model.Element // AuraReplace only
	// DamageElement is the element transformative damage is resisted as.
	// ElementNone means the aura element (swirl).
	DamageElement model.Element
}

type pair struct {
	trigger, aura model.Element
}

// Table is the immutable reaction lookup. Build it once and share it.
type Table struct {
	entries map[pair]Entry
}

// NewTable validates entries and builds a table.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{entries: make(map[pair]Entry, len(entries))}
	for i, e := range entries {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("reaction entry %d: %w", i, err)
		}
		k := pair{e.Trigger, e.Aura}
		if _, dup := t.entries[k]; dup {
			return nil, fmt.Errorf("%w: reaction entry %d: duplicate pairing %s on %s", model.ErrInvalidSpec, i, e.Trigger, e.Aura)
		}
		t.entries[k] = e
	}
	return t, nil
}

func (e Entry) validate() error {
	switch {
	case !e.Trigger.IsElemental() || e.Trigger == model.ElementQuicken:
		return fmt.Errorf("%w: trigger %s cannot react", model.ErrInvalidSpec, e.Trigger)
	case !e.Aura.CanLinger():
		return fmt.Errorf("%w: aura %s cannot linger", model.ErrInvalidSpec, e.Aura)
	case e.Trigger == e.Aura:
		return fmt.Errorf("%w: %s cannot react with itself", model.ErrInvalidSpec, e.Trigger)
	case e.Kind == model.ReactionNone || e.Kind >= model.ReactionKindCount:
		return fmt.Errorf("%w: %s on %s has no reaction kind", model.ErrInvalidSpec, e.Trigger, e.Aura)
	case e.Base < 0:
		return fmt.Errorf("%w: %s has a negative base", model.ErrInvalidSpec, e.Kind)
	}
	switch e.Category {
	case model.CategoryAmplifying:
		if e.Base <= 1 || e.Rule != AuraConsume {
			return fmt.Errorf("%w: amplifying %s needs base > 1 and consumes the aura", model.ErrInvalidSpec, e.Kind)
		}
	case model.CategoryTransformative:
		if e.Rule == AuraRetain {
			return fmt.Errorf("%w: transformative %s cannot retain the aura", model.ErrInvalidSpec, e.Kind)
		}
	case model.CategoryAdditive:
		if e.Rule != AuraRetain {
			return fmt.Errorf("%w: additive %s must retain the aura", model.ErrInvalidSpec, e.Kind)
		}
	default:
		return fmt.Errorf("%w: %s has no category", model.ErrInvalidSpec, e.Kind)
	}
	switch e.Rule {
	case AuraConsume:
		if e.Consume <= 0 {
			return fmt.Errorf("%w: %s consumes a non-positive amount", model.ErrInvalidSpec, e.Kind)
		}
	case AuraReplace:
		if !e.Result.CanLinger() {
			return fmt.Errorf("%w: %s replaces the aura with %s", model.ErrInvalidSpec, e.Kind, e.Result)
		}
	case AuraClear, AuraRetain:
	default:
		return fmt.Errorf("%w: %s has no aura rule", model.ErrInvalidSpec, e.Kind)
	}
	return nil
}

// Lookup returns the entry for trigger applied on aura.
func (t *Table) Lookup(trigger, aura model.Element) (Entry, bool) {
	e, ok := t.entries[pair{trigger, aura}]
	return e, ok
}

// Len returns the number of pairings.
func (t *Table) Len() int { return len(t.entries) }

var pyroHydroElectroCryo = []model.Element{model.ElementPyro, model.ElementHydro, model.ElementElectro, model.ElementCryo}

// DefaultEntries returns the stock reaction pairings.
func DefaultEntries() []Entry {
	amp := func(trigger, aura model.Element, kind model.ReactionKind, base, consume float64) Entry {
		return Entry{Trigger: trigger, Aura: aura, Kind: kind, Category: model.CategoryAmplifying, Base: base, Rule: AuraConsume, Consume: consume}
	}
	both := func(a, b model.Element, kind model.ReactionKind, base float64, dmg model.Element) []Entry {
		e := Entry{Kind: kind, Category: model.CategoryTransformative, Base: base, Rule: AuraClear, DamageElement: dmg}
		x, y := e, e
		x.Trigger, x.Aura = a, b
		y.Trigger, y.Aura = b, a
		return []Entry{x, y}
	}

	entries := []Entry{
		amp(model.ElementHydro, model.ElementPyro, model.ReactionVaporize, 2.0, 2.0),
		amp(model.ElementPyro, model.ElementHydro, model.ReactionVaporize, 1.5, 0.5),
		amp(model.ElementPyro, model.ElementCryo, model.ReactionMelt, 2.0, 2.0),
		amp(model.ElementCryo, model.ElementPyro, model.ReactionMelt, 1.5, 0.5),
	}
	entries = append(entries, both(model.ElementPyro, model.ElementElectro, model.ReactionOverloaded, 2.0, model.ElementPyro)...)
	entries = append(entries, both(model.ElementCryo, model.ElementElectro, model.ReactionSuperconduct, 0.5, model.ElementCryo)...)
	entries = append(entries, both(model.ElementHydro, model.ElementElectro, model.ReactionElectroCharged, 1.2, model.ElementElectro)...)
	entries = append(entries, both(model.ElementDendro, model.ElementHydro, model.ReactionBloom, 2.0, model.ElementDendro)...)
	entries = append(entries, both(model.ElementHydro, model.ElementCryo, model.ReactionFrozen, 0, model.ElementNone)...)

	for _, aura := range pyroHydroElectroCryo {
		entries = append(entries,
			Entry{Trigger: model.ElementAnemo, Aura: aura, Kind: model.ReactionSwirl, Category: model.CategoryTransformative, Base: 0.6, Rule: AuraConsume, Consume: 0.5},
			Entry{Trigger: model.ElementGeo, Aura: aura, Kind: model.ReactionCrystallize, Category: model.CategoryTransformative, Rule: AuraConsume, Consume: 0.5},
		)
	}

	quicken := Entry{Kind: model.ReactionQuicken, Category: model.CategoryTransformative, Rule: AuraReplace, Result: model.ElementQuicken}
	q1, q2 := quicken, quicken
	q1.Trigger, q1.Aura = model.ElementDendro, model.ElementElectro
	q2.Trigger, q2.Aura = model.ElementElectro, model.ElementDendro
	entries = append(entries, q1, q2,
		Entry{Trigger: model.ElementElectro, Aura: model.ElementQuicken, Kind: model.ReactionAggravate, Category: model.CategoryAdditive, Base: 1.15, Rule: AuraRetain},
		Entry{Trigger: model.ElementDendro, Aura: model.ElementQuicken, Kind: model.ReactionSpread, Category: model.CategoryAdditive, Base: 1.25, Rule: AuraRetain},
	)
	return entries
}

// DefaultTable builds the stock table.
func DefaultTable() *Table {
	t, err := NewTable(DefaultEntries())
	if err != nil {
		panic(fmt.Sprintf("default reaction table: %v", err))
	}
	return t
}
