package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSpec is wrapped by every spec validation failure.
var ErrInvalidSpec = errors.New("invalid spec")

// MaxLevel is the highest character and enemy level.
const MaxLevel = 90

// WeaponType is the weapon class a character can wield.
type WeaponType uint8

const (
	WeaponSword WeaponType = iota
	WeaponClaymore
	WeaponPolearm
	WeaponBow
	WeaponCatalyst
)

var weaponTypeNames = []string{"sword", "claymore", "polearm", "bow", "catalyst"}

func (w WeaponType) String() string {
	if int(w) >= len(weaponTypeNames) {
		return fmt.Sprintf("weapon(%d)", uint8(w))
	}
	return weaponTypeNames[w]
}

// ParseWeaponType parses a weapon class name.
func ParseWeaponType(s string) (WeaponType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range weaponTypeNames {
		if name == s {
			return WeaponType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weapon type %q", s)
}

// ICDTag names an internal cooldown group. Attacks of one actor that share
// a tag share one timer.
type ICDTag string

const (
	ICDNone    ICDTag = "none"
	ICDNormal  ICDTag = "normal"
	ICDCharged ICDTag = "charged"
	ICDSkill   ICDTag = "skill"
	ICDBurst   ICDTag = "burst"
)

// ICDKey addresses one timer in the ICD arena.
type ICDKey struct {
	Actor int
	Tag   ICDTag
}

// Swing is one normal-attack step of a combo.
type Swing struct {
	Mult    float64 // per hit
	Hits    int
	HitMark Frame // offset of the first hit from the cast
	Spacing Frame // frames between consecutive hits
	Frames  Frame // animation length, the per-swing cooldown
}

// Ability is a charged attack, skill or burst talent row.
type Ability struct {
	Name     string
	Mult     float64
	Hits     int
	HitMark  Frame
	Spacing  Frame
	Frames   Frame // animation length
	Cooldown Frame
	Units    float64
	ICD      ICDTag

	Particles     int
	ParticleDelay Frame

	// Periodic follow-up ticks (summons, lingering bursts).
	Ticks     int
	TickStart Frame
	TickEvery Frame
	TickMult  float64
	TickUnits float64
	TickICD   ICDTag
}

// Talents is the multiplier table of one character.
type Talents struct {
	Normals       []Swing
	NormalElement Element // Physical unless the kit infuses or is a catalyst
	NormalUnits   float64
	ComboReset    Frame // idle frames after a swing before the combo restarts
	Charged       *Ability
	Skill         Ability
	SkillHold     *Ability
	Burst         Ability
}

// CharacterSpec is the input record describing one playable character.
type CharacterSpec struct {
	Name       string
	Element    Element
	WeaponType WeaponType
	Level      int
	BaseHP     float64
	BaseATK    float64
	BaseDEF    float64
	EnergyCost float64
	Version    string // informational only
	Kit        string
	Bonus      map[Stat]float64 // ascension stats
	Talents    Talents
}

// Validate rejects records the engine cannot simulate.
func (c *CharacterSpec) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: character name is required", ErrInvalidSpec)
	case c.Level < 1 || c.Level > MaxLevel:
		return fmt.Errorf("%w: %s: level %d out of range", ErrInvalidSpec, c.Name, c.Level)
	case c.BaseATK <= 0:
		return fmt.Errorf("%w: %s: base ATK must be positive", ErrInvalidSpec, c.Name)
	case c.EnergyCost <= 0:
		return fmt.Errorf("%w: %s: energy cost must be positive", ErrInvalidSpec, c.Name)
	case !c.Element.CanLinger() && c.Element != ElementAnemo && c.Element != ElementGeo:
		return fmt.Errorf("%w: %s: element %s is not a character element", ErrInvalidSpec, c.Name, c.Element)
	case len(c.Talents.Normals) == 0:
		return fmt.Errorf("%w: %s: at least one normal swing is required", ErrInvalidSpec, c.Name)
	}
	for i, s := range c.Talents.Normals {
		if s.Hits < 1 || s.Frames <= 0 || s.HitMark < 0 || s.Mult < 0 {
			return fmt.Errorf("%w: %s: normal swing %d is malformed", ErrInvalidSpec, c.Name, i)
		}
	}
	if err := c.Talents.Skill.validate(c.Name, "skill"); err != nil {
		return err
	}
	if err := c.Talents.Burst.validate(c.Name, "burst"); err != nil {
		return err
	}
	if c.Talents.SkillHold != nil {
		if err := c.Talents.SkillHold.validate(c.Name, "skill hold"); err != nil {
			return err
		}
	}
	if c.Talents.Charged != nil {
		if err := c.Talents.Charged.validate(c.Name, "charged"); err != nil {
			return err
		}
	}
	return nil
}

func (a *Ability) validate(owner, what string) error {
	switch {
	case a.Hits < 0 || a.Ticks < 0 || a.Particles < 0:
		return fmt.Errorf("%w: %s: %s has negative counts", ErrInvalidSpec, owner, what)
	case a.Frames <= 0:
		return fmt.Errorf("%w: %s: %s needs a positive animation length", ErrInvalidSpec, owner, what)
	case a.HitMark < 0 || a.Spacing < 0 || a.Cooldown < 0 || a.ParticleDelay < 0 || a.TickStart < 0:
		return fmt.Errorf("%w: %s: %s has negative timing", ErrInvalidSpec, owner, what)
	case a.Ticks > 0 && a.TickEvery <= 0:
		return fmt.Errorf("%w: %s: %s ticks need a positive interval", ErrInvalidSpec, owner, what)
	case a.Mult < 0 || a.TickMult < 0 || a.Units < 0 || a.TickUnits < 0:
		return fmt.Errorf("%w: %s: %s has negative multipliers", ErrInvalidSpec, owner, what)
	}
	return nil
}

// WeaponSpec is the input record describing one weapon.
type WeaponSpec struct {
	Name       string
	Type       WeaponType
	BaseATK    float64
	SubStat    Stat
	SubValue   float64
	Refinement int // 1..5
	Effect     string
}

// Validate rejects malformed weapon records.
func (w *WeaponSpec) Validate() error {
	switch {
	case w.Name == "":
		return fmt.Errorf("%w: weapon name is required", ErrInvalidSpec)
	case w.BaseATK <= 0:
		return fmt.Errorf("%w: %s: base ATK must be positive", ErrInvalidSpec, w.Name)
	case w.Refinement < 1 || w.Refinement > 5:
		return fmt.Errorf("%w: %s: refinement %d out of range", ErrInvalidSpec, w.Name, w.Refinement)
	case w.SubStat >= StatCount:
		return fmt.Errorf("%w: %s: unknown secondary stat", ErrInvalidSpec, w.Name)
	}
	return nil
}

// EnemySpec is the single simulated target.
type EnemySpec struct {
	Name      string
	Level     int
	Resist    map[Element]float64 // missing elements use DefaultResist
	Aura      Element
	AuraUnits float64
}

// DefaultResist applies to every element an enemy spec does not list.
const DefaultResist = 0.10

// Resistance returns the enemy's resistance to e.
func (e *EnemySpec) Resistance(el Element) float64 {
	if r, ok := e.Resist[el]; ok {
		return r
	}
	return DefaultResist
}

// Validate rejects malformed enemy records.
func (e *EnemySpec) Validate() error {
	switch {
	case e.Level < 1 || e.Level > 200:
		return fmt.Errorf("%w: enemy level %d out of range", ErrInvalidSpec, e.Level)
	case e.Aura != ElementNone && !e.Aura.CanLinger():
		return fmt.Errorf("%w: enemy aura %s cannot linger", ErrInvalidSpec, e.Aura)
	case e.Aura != ElementNone && e.AuraUnits <= 0:
		return fmt.Errorf("%w: enemy aura needs positive units", ErrInvalidSpec)
	}
	return nil
}
