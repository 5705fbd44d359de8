package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/squadsim/internal/data"
	"github.com/udisondev/squadsim/internal/model"
)

func emptyRoster() []*model.CharacterData {
	roster := data.TestRoster(
		data.TestCharacter("Pyro", model.ElementPyro, "standard"),
		data.TestCharacter("Hydro", model.ElementHydro, "standard"),
	)
	for _, c := range roster {
		c.Energy = 0
	}
	return roster
}

func TestValue(t *testing.T) {
	tests := []struct {
		name          string
		particle, own model.Element
		want          float64
	}{
		{"same element", model.ElementPyro, model.ElementPyro, 3},
		{"other element", model.ElementPyro, model.ElementHydro, 1},
		{"clear", model.ElementPhysical, model.ElementHydro, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Value(tt.particle, tt.own))
		})
	}
}

func TestDistribute_GeneratorGetsFullShare(t *testing.T) {
	roster := emptyRoster()

	gained := Distribute(Particle{Source: 0, Count: 3, Element: model.ElementPyro}, roster, DefaultShareRatio)

	assert.InDelta(t, 9.0, gained[0], 1e-9)
	assert.InDelta(t, 3*1*0.6, gained[1], 1e-9)
	assert.InDelta(t, 9.0, roster[0].Energy, 1e-9)
}

func TestDistribute_ScalesWithRecharge(t *testing.T) {
	roster := emptyRoster()
	roster[1].Base.Add(model.StatER, 0.5)

	gained := Distribute(Particle{Source: 1, Count: 2, Element: model.ElementHydro}, roster, DefaultShareRatio)

	assert.InDelta(t, 2*3*1.5, gained[1], 1e-9)
}

func TestAdd_ClampsAtCost(t *testing.T) {
	roster := emptyRoster()
	c := roster[0]
	c.Energy = 58

	got := Add(c, 10)

	assert.InDelta(t, 2.0, got, 1e-9)
	assert.Equal(t, c.EnergyCost(), c.Energy)
	require.NoError(t, Validate(c))
	assert.Zero(t, Add(c, -5))
}

func TestFlat(t *testing.T) {
	c := emptyRoster()[0]
	c.Base.Add(model.StatER, 1)

	assert.InDelta(t, 2.0, Flat(c, 2), 1e-9, "flat energy ignores recharge")
}

func TestCanBurst_IffFullAndOffCooldown(t *testing.T) {
	tests := []struct {
		name   string
		energy float64
		since  model.Frame
		want   bool
	}{
		{"full and ready", 60, 600, true},
		{"full on cooldown", 60, 599, false},
		{"one short", 59.999, 600, false},
		{"empty", 0, model.Never, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanBurst(tt.energy, 60, tt.since, 600))
		})
	}
}

func TestSpend(t *testing.T) {
	roster := emptyRoster()
	c := roster[0]

	err := Spend(c)
	require.ErrorIs(t, err, model.ErrIllegalAction)

	c.Energy = c.EnergyCost()
	require.NoError(t, Spend(c))
	assert.Zero(t, c.Energy)
}

func TestValidate_OutOfRange(t *testing.T) {
	c := emptyRoster()[0]
	c.Energy = -1
	assert.ErrorIs(t, Validate(c), model.ErrEnergyOverflow)

	c.Energy = c.EnergyCost() + 0.1
	assert.ErrorIs(t, Validate(c), model.ErrEnergyOverflow)
}
