// Package weapon holds weapon passives behind one closed interface.
package weapon

import (
	"fmt"
	"sort"

	"github.com/udisondev/squadsim/internal/game/energy"
	"github.com/udisondev/squadsim/internal/game/modifier"
	"github.com/udisondev/squadsim/internal/model"
)

// Effect is a weapon passive. Stateful passives also implement
// modifier.Observer.
type Effect interface {
	modifier.Hook
	modifier.Resetter
}

// Factory builds the passive of w equipped on roster slot.
type Factory func(slot int, w *model.WeaponSpec) Effect

// registry maps effect name → factory. Populated by init().
var registry = map[string]Factory{}

// Register registers a passive factory by name.
func Register(name string, f Factory) {
	registry[name] = f
}

// New builds the passive named by w.Effect. An empty name means plain.
func New(slot int, w *model.WeaponSpec) (Effect, error) {
	name := w.Effect
	if name == "" {
		name = "plain"
	}
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown weapon effect %q", model.ErrInvalidSpec, w.Name, name)
	}
	return f(slot, w), nil
}

// Names returns every registered effect name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("plain", NewPlain)
	Register("flameforged", NewFlameforged)
	Register("wavecutter", NewWavecutter)
	Register("resonant_codex", NewResonantCodex)
	Register("tidal_lens", NewTidalLens)
}

// refine scales a passive value: base at refinement 1, plus step per level.
func refine(w *model.WeaponSpec, base, step float64) float64 {
	return base + step*float64(w.Refinement-1)
}

// Plain has no passive.
type Plain struct{}

func NewPlain(int, *model.WeaponSpec) Effect { return Plain{} }

func (Plain) Modify(*modifier.StepContext, *model.Attack, *model.State) {}
func (Plain) Reset()                                                    {}

// Flameforged raises the wielder's DMG against Pyro- or Electro-affected enemies.
type Flameforged struct {
	slot  int
	bonus float64
}

func NewFlameforged(slot int, w *model.WeaponSpec) Effect {
	return &Flameforged{slot: slot, bonus: refine(w, 0.20, 0.05)}
}

func (f *Flameforged) Modify(ctx *modifier.StepContext, atk *model.Attack, st *model.State) {
	if atk.Actor != f.slot {
		return
	}
	if ctx.Aura == model.ElementPyro || ctx.Aura == model.ElementElectro {
		st.Add(model.StatDMGBonus, f.bonus)
	}
}

func (f *Flameforged) Reset() {}

// Wavecutter raises burst DMG and burst crit rate.
type Wavecutter struct {
	slot      int
	dmg, crit float64
}

func NewWavecutter(slot int, w *model.WeaponSpec) Effect {
	return &Wavecutter{slot: slot, dmg: refine(w, 0.16, 0.04), crit: refine(w, 0.06, 0.015)}
}

func (c *Wavecutter) Modify(_ *modifier.StepContext, atk *model.Attack, st *model.State) {
	if atk.Actor != c.slot || atk.Kind != model.KindBurst {
		return
	}
	st.Add(model.StatBurstDMG, c.dmg)
	st.Add(model.StatCritRate, c.crit)
}

func (c *Wavecutter) Reset() {}

// ResonantCodex gains a stack whenever the wielder's skill triggers a
// reaction. Each stack lasts 20 s and adds DMG.
type ResonantCodex struct {
	slot   int
	per    float64
	stacks *modifier.Stacks
}

func NewResonantCodex(slot int, w *model.WeaponSpec) Effect {
	return &ResonantCodex{
		slot:   slot,
		per:    refine(w, 0.08, 0.02),
		stacks: modifier.NewStacks(3, 1200),
	}
}

func (r *ResonantCodex) Observe(ctx *modifier.StepContext) error {
	ctx.Each(modifier.SignalReaction, func(s modifier.Signal) {
		if s.Actor == r.slot && (s.Attack == model.KindSkill || s.Attack == model.KindDot) {
			r.stacks.Gain(ctx.Frame)
		}
	})
	return nil
}

func (r *ResonantCodex) Modify(_ *modifier.StepContext, atk *model.Attack, st *model.State) {
	if atk.Actor != r.slot {
		return
	}
	if n := r.stacks.Count(atk.Frame); n > 0 {
		st.Add(model.StatDMGBonus, r.per*float64(n))
	}
}

func (r *ResonantCodex) Reset() { r.stacks.Reset() }

// TidalLens refunds flat energy when the wielder's skill hits, once per 12 s.
type TidalLens struct {
	slot   int
	amount float64
	last   model.Frame
	fired  bool
}

const tidalLensCooldown = 720

func NewTidalLens(slot int, w *model.WeaponSpec) Effect {
	return &TidalLens{slot: slot, amount: refine(w, 2, 0.5)}
}

func (l *TidalLens) Observe(ctx *modifier.StepContext) error {
	hit := false
	ctx.Each(modifier.SignalHit, func(s modifier.Signal) {
		if s.Actor == l.slot && s.Attack == model.KindSkill {
			hit = true
		}
	})
	if !hit || (l.fired && ctx.Frame-l.last < tidalLensCooldown) {
		return nil
	}
	c := ctx.Actor(l.slot)
	if c == nil {
		return fmt.Errorf("tidal lens: no actor in slot %d", l.slot)
	}
	energy.Flat(c, l.amount)
	l.last = ctx.Frame
	l.fired = true
	return nil
}

func (l *TidalLens) Modify(*modifier.StepContext, *model.Attack, *model.State) {}

func (l *TidalLens) Reset() {
	l.fired = false
	l.last = 0
}
