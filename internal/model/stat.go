package model

import (
	"fmt"
	"strings"
)

// Stat identifies one field of the modifier accumulator.
type Stat uint8

const (
	StatATKPercent Stat = iota
	StatFlatATK
	StatCritRate
	StatCritDMG
	StatEM
	StatER
	StatDMGBonus // generic DMG%
	StatNormalDMG
	StatChargedDMG
	StatSkillDMG
	StatBurstDMG
	StatPyroDMG
	StatHydroDMG
	StatElectroDMG
	StatCryoDMG
	StatAnemoDMG
	StatGeoDMG
	StatDendroDMG
	StatPhysicalDMG
	StatMultBonus  // added to the talent multiplier, as a ratio of it
	StatFlatDamage // flat damage added before bonuses
	StatAmpBonus
	StatTransformBonus
	StatAdditiveBonus
	StatDefShred
	StatResShred

	StatCount
)

var statNames = [StatCount]string{
	StatATKPercent:     "atk%",
	StatFlatATK:        "atk",
	StatCritRate:       "cr",
	StatCritDMG:        "cd",
	StatEM:             "em",
	StatER:             "er",
	StatDMGBonus:       "dmg%",
	StatNormalDMG:      "normal%",
	StatChargedDMG:     "charged%",
	StatSkillDMG:       "skill%",
	StatBurstDMG:       "burst%",
	StatPyroDMG:        "pyro%",
	StatHydroDMG:       "hydro%",
	StatElectroDMG:     "electro%",
	StatCryoDMG:        "cryo%",
	StatAnemoDMG:       "anemo%",
	StatGeoDMG:         "geo%",
	StatDendroDMG:      "dendro%",
	StatPhysicalDMG:    "phys%",
	StatMultBonus:      "mult%",
	StatFlatDamage:     "flat_dmg",
	StatAmpBonus:       "amp%",
	StatTransformBonus: "transform%",
	StatAdditiveBonus:  "additive%",
	StatDefShred:       "def_shred",
	StatResShred:       "res_shred",
}

func (s Stat) String() string {
	if s >= StatCount {
		return fmt.Sprintf("stat(%d)", uint8(s))
	}
	return statNames[s]
}

// ParseStat parses a stat key as written in config stat bags.
func ParseStat(s string) (Stat, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range statNames {
		if name == s {
			return Stat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", s)
}

// ElementDMG returns the elemental DMG% stat for e. The bool is false for
// elements without a damage bonus stat.
func ElementDMG(e Element) (Stat, bool) {
	switch e {
	case ElementPyro:
		return StatPyroDMG, true
	case ElementHydro:
		return StatHydroDMG, true
	case ElementElectro:
		return StatElectroDMG, true
	case ElementCryo:
		return StatCryoDMG, true
	case ElementAnemo:
		return StatAnemoDMG, true
	case ElementGeo:
		return StatGeoDMG, true
	case ElementDendro:
		return StatDendroDMG, true
	case ElementPhysical:
		return StatPhysicalDMG, true
	default:
		return 0, false
	}
}

// KindDMG returns the attack-kind DMG% stat for k.
func KindDMG(k AttackKind) (Stat, bool) {
	switch k {
	case KindNormal:
		return StatNormalDMG, true
	case KindCharged:
		return StatChargedDMG, true
	case KindSkill, KindDot:
		return StatSkillDMG, true
	case KindBurst:
		return StatBurstDMG, true
	default:
		return 0, false
	}
}

// State is the per-resolution modifier accumulator.
//
// Contributions are either summed (Add) or multiplied (Scale) and the value
// of a stat is sum*product, so the result does not depend on the order in
// which hooks write to it.
type State struct {
	add [StatCount]float64
	mul [StatCount]float64
}

// NewState returns an empty accumulator.
func NewState() State {
	var s State
	for i := range s.mul {
		s.mul[i] = 1
	}
	return s
}

// Add adds v to stat.
func (s *State) Add(stat Stat, v float64) {
	s.add[stat] += v
}

// Scale multiplies stat by f.
func (s *State) Scale(stat Stat, f float64) {
	s.mul[stat] *= f
}

// Get returns the accumulated value of stat.
func (s *State) Get(stat Stat) float64 {
	return s.add[stat] * s.mul[stat]
}

// Merge adds every additive contribution of o into s and multiplies in its scales.
func (s *State) Merge(o *State) {
	for i := range s.add {
		s.add[i] += o.add[i]
		s.mul[i] *= o.mul[i]
	}
}
