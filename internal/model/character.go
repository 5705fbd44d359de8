package model

import "fmt"

// Base crit stats every character starts with.
const (
	BaseCritRate = 0.05
	BaseCritDMG  = 0.50
)

// CharacterData is one simulated combatant slot in the roster.
// Index is stable for the whole run and is the only identity used for
// ownership checks.
type CharacterData struct {
	Index   int
	Spec    *CharacterSpec
	Weapon  *WeaponSpec
	Energy  float64
	OnField bool

	Counters  Counters
	Combo     int // index of the last normal swing, -1 when the combo is fresh
	BusyUntil Frame

	// Base holds the static stats: ascension bonus, weapon secondary stat,
	// equipment stat bag and base crit.
	Base State

	startEnergy float64
}

// NewCharacterData builds the actor slot for spec wielding weapon.
// extra is the equipment stat bag. startEnergy is clamped to the energy cost.
func NewCharacterData(index int, spec *CharacterSpec, weapon *WeaponSpec, extra map[Stat]float64, onField bool, startEnergy float64) (*CharacterData, error) {
	if spec == nil || weapon == nil {
		return nil, fmt.Errorf("%w: slot %d needs a character and a weapon", ErrInvalidSpec, index)
	}
	if weapon.Type != spec.WeaponType {
		return nil, fmt.Errorf("%w: %s cannot wield %s (%s)", ErrInvalidSpec, spec.Name, weapon.Name, weapon.Type)
	}
	if startEnergy < 0 {
		startEnergy = 0
	}
	if startEnergy > spec.EnergyCost {
		startEnergy = spec.EnergyCost
	}

	base := NewState()
	base.Add(StatCritRate, BaseCritRate)
	base.Add(StatCritDMG, BaseCritDMG)
	for st, v := range spec.Bonus {
		base.Add(st, v)
	}
	base.Add(weapon.SubStat, weapon.SubValue)
	for st, v := range extra {
		base.Add(st, v)
	}

	c := &CharacterData{
		Index:       index,
		Spec:        spec,
		Weapon:      weapon,
		OnField:     onField,
		Base:        base,
		startEnergy: startEnergy,
	}
	c.Reset()
	return c, nil
}

// Name returns the character name.
func (c *CharacterData) Name() string { return c.Spec.Name }

// Element returns the character's element affinity.
func (c *CharacterData) Element() Element { return c.Spec.Element }

// EnergyCost returns the burst energy cost.
func (c *CharacterData) EnergyCost() float64 { return c.Spec.EnergyCost }

// BaseATK returns character plus weapon base ATK.
func (c *CharacterData) BaseATK() float64 { return c.Spec.BaseATK + c.Weapon.BaseATK }

// Reset restores the slot to its state at frame zero.
func (c *CharacterData) Reset() {
	c.Energy = c.startEnergy
	c.Counters = NewCounters()
	c.Combo = -1
	c.BusyUntil = 0
}

// Validate checks the slot's runtime invariants.
func (c *CharacterData) Validate() error {
	if c.Energy < 0 || c.Energy > c.Spec.EnergyCost {
		return fmt.Errorf("%w: %s has %.3f of %.0f", ErrEnergyOverflow, c.Name(), c.Energy, c.Spec.EnergyCost)
	}
	return c.Counters.Validate()
}
