package modifier

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/udisondev/squadsim/internal/game/reaction"
	"github.com/udisondev/squadsim/internal/model"
)

// CritMode selects how crits enter damage.
type CritMode uint8

const (
	CritExpected CritMode = iota // average over crit rate
	CritRolled                   // roll each hit with the run's seeded source
)

func (m CritMode) String() string {
	if m == CritRolled {
		return "rolled"
	}
	return "expected"
}

// ParseCritMode parses "expected" or "rolled". Empty means expected.
func ParseCritMode(s string) (CritMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "expected":
		return CritExpected, nil
	case "rolled":
		return CritRolled, nil
	}
	return CritExpected, fmt.Errorf("unknown crit mode %q", s)
}

// Inputs is everything one damage computation reads.
type Inputs struct {
	Attack   *model.Attack
	Stats    *model.State
	BaseATK  float64 // character plus weapon
	Level    int
	Enemy    *model.EnemySpec
	Reaction reaction.Result
}

// ATK is total attack: base scaled by ATK% plus flat ATK.
func ATK(base float64, st *model.State) float64 {
	return base*(1+st.Get(model.StatATKPercent)) + st.Get(model.StatFlatATK)
}

// DefenseFactor is the enemy defense multiplier.
func DefenseFactor(level, enemyLevel int, shred float64) float64 {
	l := float64(level + 100)
	e := float64(enemyLevel+100) * (1 - shred)
	return l / (l + e)
}

// ResistanceFactor is the enemy resistance multiplier for resistance r.
func ResistanceFactor(r float64) float64 {
	switch {
	case r < 0:
		return 1 - r/2
	case r < 0.75:
		return 1 - r
	default:
		return 1 / (4*r + 1)
	}
}

// CritFactor is the expected crit multiplier.
func CritFactor(cr, cd float64) float64 {
	return 1 + min(max(cr, 0), 1)*cd
}

// nonCrit is the hit damage before the crit factor.
func nonCrit(in Inputs) float64 {
	atk, st := in.Attack, in.Stats
	em := st.Get(model.StatEM)

	base := atk.Mult*(1+atk.MultBonus)*ATK(in.BaseATK, st) + atk.FlatDamage
	if in.Reaction.Category == model.CategoryAdditive {
		base += reaction.AdditiveDamage(in.Reaction.Base, in.Level, em, st.Get(model.StatAdditiveBonus))
	}

	bonus := 1 + st.Get(model.StatDMGBonus)
	if s, ok := model.KindDMG(atk.Kind); ok {
		bonus += st.Get(s)
	}

	amp := 1.0
	if in.Reaction.Category == model.CategoryAmplifying {
		amp = reaction.AmpMultiplier(in.Reaction.Base, em, st.Get(model.StatAmpBonus))
	}

	elemental := 1.0
	if s, ok := model.ElementDMG(atk.Element); ok {
		elemental += st.Get(s)
	}

	def := DefenseFactor(in.Level, in.Enemy.Level, st.Get(model.StatDefShred))
	res := ResistanceFactor(in.Enemy.Resistance(atk.Element) - st.Get(model.StatResShred))

	return base * bonus * amp * elemental * def * res
}

// Damage is the expected damage of one hit.
func Damage(in Inputs) float64 {
	return nonCrit(in) * CritFactor(in.Stats.Get(model.StatCritRate), in.Stats.Get(model.StatCritDMG))
}

// TransformativeDamage is the separate damage event of a transformative
// reaction. It ignores ATK, crit and defense; only resistance applies.
func TransformativeDamage(in Inputs) float64 {
	st := in.Stats
	dmg := reaction.TransformDamage(in.Reaction.Base, in.Level, st.Get(model.StatEM), st.Get(model.StatTransformBonus))
	return dmg * ResistanceFactor(in.Enemy.Resistance(in.Reaction.DamageElement)-st.Get(model.StatResShred))
}

// Calculator applies the run's crit mode.
type Calculator struct {
	mode CritMode
	seed uint64
	rng  *rand.Rand
}

// NewCalculator returns a calculator; seed only matters in rolled mode.
func NewCalculator(mode CritMode, seed uint64) *Calculator {
	c := &Calculator{mode: mode, seed: seed}
	c.Reset()
	return c
}

// Mode returns the crit mode.
func (c *Calculator) Mode() CritMode { return c.mode }

// Hit returns the damage of one hit and, in rolled mode, whether it crit.
func (c *Calculator) Hit(in Inputs) (float64, bool) {
	cr, cd := in.Stats.Get(model.StatCritRate), in.Stats.Get(model.StatCritDMG)
	if c.mode == CritExpected {
		return nonCrit(in) * CritFactor(cr, cd), false
	}
	base := nonCrit(in)
	if c.rng.Float64() < min(max(cr, 0), 1) {
		return base * (1 + cd), true
	}
	return base, false
}

// Reset reseeds the crit source so a replay rolls the same sequence.
func (c *Calculator) Reset() {
	c.rng = rand.New(rand.NewPCG(c.seed, c.seed^0x9e3779b97f4a7c15))
}
