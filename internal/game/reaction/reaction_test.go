package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/squadsim/internal/model"
)

func attackOf(el model.Element, units float64, at model.Frame) *model.Attack {
	return &model.Attack{Element: el, Units: units, Frame: at, ApplyAura: true}
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultTable())
	require.NoError(t, err)
	return e
}

func TestGauge_DecayNonNegativeAndReachesZero(t *testing.T) {
	for _, u := range []float64{0.5, 1, 1.5, 2, 4, 8} {
		g := NewGauge(model.ElementPyro, u, 0)
		d := DecayDuration(u)

		prev := g.Units
		for f := model.Frame(0); f <= d; f += 7 {
			el, m := g.At(f)
			assert.GreaterOrEqual(t, m, 0.0, "units %.1f at %d", u, f)
			assert.LessOrEqual(t, m, prev)
			if m == 0 {
				assert.Equal(t, model.ElementNone, el)
			}
			prev = m
		}

		require.NoError(t, g.Decay(d))
		assert.Equal(t, 0.0, g.Units, "units %.1f must be gone after %d frames", u, d)
		assert.True(t, g.Empty())
	}
}

func TestGauge_DecayRejectsRegression(t *testing.T) {
	g := NewGauge(model.ElementHydro, 1, 100)
	assert.ErrorIs(t, g.Decay(99), model.ErrTimestampRegression)
}

func TestApply_SameElementRefreshesWithoutReaction(t *testing.T) {
	e := newEngine(t)
	g := NewGauge(model.ElementNone, 0, 0)

	r1, err := e.Apply(attackOf(model.ElementPyro, 1, 0), g)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionNone, r1.Kind)
	assert.Equal(t, model.ElementPyro, r1.AuraAfter)

	before, _ := g.At(60)
	_, unitsBefore := g.At(60)
	r2, err := e.Apply(attackOf(model.ElementPyro, 1, 60), g)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionNone, r2.Kind)
	assert.False(t, r2.Reacted())
	assert.Equal(t, before, r2.AuraAfter)
	assert.InDelta(t, 0.8, g.Units, 1e-9)
	assert.Greater(t, g.Units, unitsBefore)
}

func TestApply_Vaporize(t *testing.T) {
	tests := []struct {
		name      string
		aura      model.Element
		trigger   model.Element
		units     float64
		wantBase  float64
		wantAfter model.Element
	}{
		{name: "hydro on pyro strong, aura cleared", aura: model.ElementPyro, trigger: model.ElementHydro, units: 1, wantBase: 2.0, wantAfter: model.ElementNone},
		{name: "pyro on hydro weak, aura retained", aura: model.ElementHydro, trigger: model.ElementPyro, units: 1, wantBase: 1.5, wantAfter: model.ElementHydro},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			g := NewGauge(tt.aura, 2, 0)
			r, err := e.Apply(attackOf(tt.trigger, tt.units, 0), g)
			require.NoError(t, err)
			assert.Equal(t, model.ReactionVaporize, r.Kind)
			assert.Equal(t, model.CategoryAmplifying, r.Category)
			assert.Equal(t, tt.wantBase, r.Base)
			assert.Equal(t, tt.wantAfter, r.AuraAfter)
			assert.GreaterOrEqual(t, g.Units, 0.0)
		})
	}
}

func TestApply_IneligibleHitNeverReacts(t *testing.T) {
	e := newEngine(t)
	g := NewGauge(model.ElementPyro, 1, 0)

	atk := attackOf(model.ElementHydro, 1, 10)
	atk.ApplyAura = false
	r, err := e.Apply(atk, g)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionNone, r.Kind)
	assert.Equal(t, model.ElementPyro, g.Element)
}

func TestApply_NoPairingOverwrites(t *testing.T) {
	e := newEngine(t)
	g := NewGauge(model.ElementDendro, 1, 0)

	r, err := e.Apply(attackOf(model.ElementCryo, 2, 0), g)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionNone, r.Kind)
	assert.Equal(t, model.ElementCryo, g.Element)
	assert.InDelta(t, 1.6, g.Units, 1e-9)
}

func TestApply_NonLingeringElementsNeverFormAura(t *testing.T) {
	e := newEngine(t)
	for _, el := range []model.Element{model.ElementAnemo, model.ElementGeo} {
		g := NewGauge(model.ElementNone, 0, 0)
		_, err := e.Apply(attackOf(el, 1, 0), g)
		require.NoError(t, err)
		assert.True(t, g.Empty(), "%s", el)
	}
}

func TestApply_TransformativeClearsAura(t *testing.T) {
	e := newEngine(t)
	g := NewGauge(model.ElementElectro, 2, 0)

	r, err := e.Apply(attackOf(model.ElementPyro, 1, 30), g)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionOverloaded, r.Kind)
	assert.Equal(t, model.CategoryTransformative, r.Category)
	assert.Equal(t, model.ElementPyro, r.DamageElement)
	assert.True(t, g.Empty())
}

func TestApply_SwirlTakesAuraElement(t *testing.T) {
	e := newEngine(t)
	g := NewGauge(model.ElementHydro, 2, 0)

	r, err := e.Apply(attackOf(model.ElementAnemo, 1, 0), g)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionSwirl, r.Kind)
	assert.Equal(t, model.ElementHydro, r.DamageElement)
	assert.Equal(t, model.ElementHydro, g.Element)
	assert.InDelta(t, 1.1, g.Units, 1e-9)
}

func TestApply_QuickenThenAdditiveRetainsAura(t *testing.T) {
	e := newEngine(t)
	g := NewGauge(model.ElementElectro, 1, 0)

	r, err := e.Apply(attackOf(model.ElementDendro, 1, 0), g)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionQuicken, r.Kind)
	assert.Equal(t, model.ElementQuicken, g.Element)

	for i := 1; i <= 3; i++ {
		r, err = e.Apply(attackOf(model.ElementElectro, 1, model.Frame(i)), g)
		require.NoError(t, err)
		assert.Equal(t, model.ReactionAggravate, r.Kind)
		assert.Equal(t, model.CategoryAdditive, r.Category)
		assert.Equal(t, model.ElementQuicken, r.AuraAfter)
		assert.Equal(t, i, g.Additive)
	}
}

func TestApply_AtMostOneReactionPerHit(t *testing.T) {
	e := newEngine(t)
	g := NewGauge(model.ElementPyro, 1, 0)

	// weak hydro against a large pyro aura: one vaporize, aura consumed
	// only once
	r, err := e.Apply(attackOf(model.ElementHydro, 0.1, 0), g)
	require.NoError(t, err)
	assert.Equal(t, model.ReactionVaporize, r.Kind)
	assert.InDelta(t, 0.8-0.2, g.Units, 1e-9)
}

func TestNewTable_Validation(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{name: "missing pairing", entry: Entry{Kind: model.ReactionMelt, Category: model.CategoryAmplifying, Base: 2, Rule: AuraConsume, Consume: 1}},
		{name: "aura cannot linger", entry: Entry{Trigger: model.ElementPyro, Aura: model.ElementAnemo, Kind: model.ReactionSwirl, Category: model.CategoryTransformative, Rule: AuraClear}},
		{name: "amplifying without consume", entry: Entry{Trigger: model.ElementPyro, Aura: model.ElementCryo, Kind: model.ReactionMelt, Category: model.CategoryAmplifying, Base: 2, Rule: AuraClear}},
		{name: "additive clearing", entry: Entry{Trigger: model.ElementElectro, Aura: model.ElementQuicken, Kind: model.ReactionAggravate, Category: model.CategoryAdditive, Base: 1, Rule: AuraClear}},
		{name: "no kind", entry: Entry{Trigger: model.ElementPyro, Aura: model.ElementCryo, Category: model.CategoryAmplifying, Base: 2, Rule: AuraConsume, Consume: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable([]Entry{tt.entry})
			assert.ErrorIs(t, err, model.ErrInvalidSpec)
		})
	}

	dup := DefaultEntries()
	dup = append(dup, dup[0])
	_, err := NewTable(dup)
	assert.ErrorIs(t, err, model.ErrInvalidSpec)

	_, err = NewEngine(nil)
	assert.ErrorIs(t, err, model.ErrInvalidSpec)
}

func TestMultipliers(t *testing.T) {
	assert.Equal(t, 2.0, AmpMultiplier(2.0, 0, 0))
	assert.InDelta(t, 2.0*(1+2.78*0.5+0.15), AmpMultiplier(2.0, 1400, 0.15), 1e-9)

	assert.Equal(t, 17.17, LevelMultiplier(0))
	assert.Equal(t, 1446.85, LevelMultiplier(90))
	assert.Equal(t, 1077.44, LevelMultiplier(80))
	assert.InDelta(t, (1077.44+1446.85)/2, LevelMultiplier(85), 1e-9)

	assert.InDelta(t, 2.0*1446.85, TransformDamage(2.0, 90, 0, 0), 1e-9)
	assert.InDelta(t, 1.15*1446.85*(1+5*1200.0/2400), AdditiveDamage(1.15, 90, 1200, 0), 1e-9)
}
