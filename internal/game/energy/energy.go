// Package energy accounts for the resource that gates bursts.
package energy

import (
	"fmt"

	"github.com/udisondev/squadsim/internal/model"
)

// DefaultShareRatio is the share of a particle's value received by actors
// other than the one that generated it.
const DefaultShareRatio = 0.6

// Energy granted per particle before sharing and recharge.
const (
	sameElement  = 3.0
	otherElement = 1.0
	clearElement = 2.0
)

// Particle is a batch of energy tokens delivered at Frame.
type Particle struct {
	Source  int
	Count   int
	Element model.Element // Physical for clear particles
	Frame   model.Frame
}

// Value returns the energy one particle of el grants to an actor of element
// receiver before sharing and recharge.
func Value(el, receiver model.Element) float64 {
	switch {
	case el == model.ElementPhysical || el == model.ElementNone:
		return clearElement
	case el == receiver:
		return sameElement
	default:
		return otherElement
	}
}

// Distribute hands p to every actor of roster. The generating actor receives
// full value, everyone else ratio of it. It returns the energy each actor
// actually gained, indexed like roster.
func Distribute(p Particle, roster []*model.CharacterData, ratio float64) []float64 {
	gained := make([]float64, len(roster))
	for i, c := range roster {
		share := ratio
		if c.Index == p.Source {
			share = 1
		}
		amount := float64(p.Count) * Value(p.Element, c.Element()) * share * Recharge(c)
		gained[i] = Add(c, amount)
	}
	return gained
}

// Recharge returns the energy recharge multiplier of c.
func Recharge(c *model.CharacterData) float64 {
	return 1 + c.Base.Get(model.StatER)
}

// Add gives c amount energy, clamped at its cost, and returns what was
// actually added.
func Add(c *model.CharacterData, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	before := c.Energy
	c.Energy += amount
	if c.Energy > c.EnergyCost() {
		c.Energy = c.EnergyCost()
	}
	return c.Energy - before
}

// CanBurst reports whether an actor with energy of cost whose burst was last
// used since frames ago may burst now.
func CanBurst(energy, cost float64, since, cooldown model.Frame) bool {
	return energy == cost && since >= cooldown
}

// Spend empties c's energy for a burst. Bursting without full energy is an
// invariant violation.
func Spend(c *model.CharacterData) error {
	if c.Energy != c.EnergyCost() {
		return fmt.Errorf("%w: %s bursts with %.3f of %.0f energy", model.ErrIllegalAction, c.Name(), c.Energy, c.EnergyCost())
	}
	c.Energy = 0
	return nil
}

// Flat grants c a fixed amount of energy that ignores recharge, clamped at
// its cost. Kits and weapons use it for refunds.
func Flat(c *model.CharacterData, amount float64) float64 {
	return Add(c, amount)
}

// Validate reports an energy value outside [0, cost].
func Validate(c *model.CharacterData) error {
	if c.Energy < 0 || c.Energy > c.EnergyCost() {
		return fmt.Errorf("%w: %s holds %.3f of %.0f", model.ErrEnergyOverflow, c.Name(), c.Energy, c.EnergyCost())
	}
	return nil
}
