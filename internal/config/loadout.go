package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/squadsim/internal/data"
	"github.com/udisondev/squadsim/internal/game/modifier"
	"github.com/udisondev/squadsim/internal/game/sim"
	"github.com/udisondev/squadsim/internal/model"
	"github.com/udisondev/squadsim/internal/rotation"
)

// Loadout is one squad to simulate.
type Loadout struct {
	Name   string        `yaml:"name"`
	Roster []RosterEntry `yaml:"roster"`
}

// RosterEntry is one character with its equipment.
type RosterEntry struct {
	Character  string             `yaml:"character"`
	Weapon     string             `yaml:"weapon"`
	Refinement int                `yaml:"refinement,omitempty"`
	Stats      map[string]float64 `yaml:"stats,omitempty"` // stat key → value, e.g. "atk%": 0.466
	OnField    bool               `yaml:"on_field,omitempty"`
	Energy     *float64           `yaml:"energy,omitempty"` // starting energy, full when omitted
}

// Validate checks the config without touching the catalog.
func (s Simulation) Validate() error {
	switch {
	case s.DurationSeconds <= 0:
		return fmt.Errorf("%w: duration_seconds must be positive", sim.ErrInvalidConfig)
	case s.Parallelism < 0:
		return fmt.Errorf("%w: parallelism must not be negative", sim.ErrInvalidConfig)
	case len(s.Loadouts) == 0:
		return fmt.Errorf("%w: no loadouts", sim.ErrInvalidConfig)
	}
	if _, err := modifier.ParseCritMode(s.CritMode); err != nil {
		return fmt.Errorf("%w: %w", sim.ErrInvalidConfig, err)
	}
	seen := make(map[string]bool, len(s.Loadouts))
	for i, l := range s.Loadouts {
		if l.Name == "" {
			return fmt.Errorf("%w: loadout %d has no name", sim.ErrInvalidConfig, i)
		}
		if seen[l.Name] {
			return fmt.Errorf("%w: duplicate loadout %q", sim.ErrInvalidConfig, l.Name)
		}
		seen[l.Name] = true
	}
	switch s.Database.Driver {
	case "", "postgres", "sqlite":
	default:
		return fmt.Errorf("%w: unknown database driver %q", sim.ErrInvalidConfig, s.Database.Driver)
	}
	return nil
}

// Duration returns the fight length in frames.
func (s Simulation) Duration() model.Frame {
	return model.Seconds(s.DurationSeconds)
}

// EnemySpec resolves the configured target against the catalog and applies
// the overrides.
func (e EnemyConfig) EnemySpec() (*model.EnemySpec, error) {
	base := data.GetEnemy(e.Name)
	if base == nil {
		return nil, fmt.Errorf("%w: unknown enemy %q", sim.ErrInvalidConfig, e.Name)
	}
	spec := *base
	spec.Resist = make(map[model.Element]float64, len(base.Resist)+len(e.Resist))
	for el, r := range base.Resist {
		spec.Resist[el] = r
	}
	for name, r := range e.Resist {
		el, err := model.ParseElement(name)
		if err != nil {
			return nil, fmt.Errorf("%w: enemy resist: %w", sim.ErrInvalidConfig, err)
		}
		spec.Resist[el] = r
	}
	if e.Level > 0 {
		spec.Level = e.Level
	}
	if e.Aura != "" {
		el, err := model.ParseElement(e.Aura)
		if err != nil {
			return nil, fmt.Errorf("%w: enemy aura: %w", sim.ErrInvalidConfig, err)
		}
		spec.Aura = el
		spec.AuraUnits = e.AuraUnits
	}
	return &spec, nil
}

// Policy builds a fresh rotation policy, or nil when none is configured.
// Every run needs its own: a Lua policy owns its interpreter.
func (r RotationConfig) Policy() (sim.Policy, error) {
	switch {
	case r.Lua != "":
		l, err := rotation.LoadLua(r.Lua)
		if err != nil {
			return nil, err
		}
		return l, nil
	case len(r.Priority) > 0:
		p, err := rotation.NewPriority(r.Priority)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, nil
}

// ParseStats converts a config stat bag into typed stats.
func ParseStats(bag map[string]float64) (map[model.Stat]float64, error) {
	if len(bag) == 0 {
		return nil, nil
	}
	out := make(map[model.Stat]float64, len(bag))
	for k, v := range bag {
		st, err := model.ParseStat(k)
		if err != nil {
			return nil, err
		}
		out[st] += v
	}
	return out, nil
}

// Setup converts the loadout into a simulator setup against the catalog.
func (l Loadout) Setup(s Simulation) (sim.Setup, error) {
	enemy, err := s.Enemy.EnemySpec()
	if err != nil {
		return sim.Setup{}, err
	}
	crit, err := modifier.ParseCritMode(s.CritMode)
	if err != nil {
		return sim.Setup{}, fmt.Errorf("%w: %w", sim.ErrInvalidConfig, err)
	}
	policy, err := s.Rotation.Policy()
	if err != nil {
		return sim.Setup{}, fmt.Errorf("%w: %w", sim.ErrInvalidConfig, err)
	}

	setup := sim.Setup{
		Name:       l.Name,
		Enemy:      enemy,
		Duration:   s.Duration(),
		Crit:       crit,
		Seed:       s.Seed,
		ShareRatio: s.ShareRatio,
		Policy:     policy,
	}
	for i, e := range l.Roster {
		c := data.GetCharacter(e.Character)
		if c == nil {
			return sim.Setup{}, fmt.Errorf("%w: %s slot %d: unknown character %q", sim.ErrInvalidConfig, l.Name, i, e.Character)
		}
		w, err := data.Refined(e.Weapon, e.Refinement)
		if err != nil {
			return sim.Setup{}, fmt.Errorf("%w: %s slot %d: %w", sim.ErrInvalidConfig, l.Name, i, err)
		}
		stats, err := ParseStats(e.Stats)
		if err != nil {
			return sim.Setup{}, fmt.Errorf("%w: %s slot %d: %w", sim.ErrInvalidConfig, l.Name, i, err)
		}
		start := c.EnergyCost
		if e.Energy != nil {
			start = *e.Energy
		}
		setup.Roster = append(setup.Roster, sim.Slot{
			Character:   c,
			Weapon:      w,
			Stats:       stats,
			StartEnergy: start,
			OnField:     e.OnField,
		})
	}
	return setup, nil
}

// Setups converts every loadout.
func (s Simulation) Setups() ([]sim.Setup, error) {
	out := make([]sim.Setup, 0, len(s.Loadouts))
	for _, l := range s.Loadouts {
		setup, err := l.Setup(s)
		if err != nil {
			return nil, err
		}
		out = append(out, setup)
	}
	return out, nil
}

// Canonical is the YAML form of everything that determines a loadout's
// result. Identical runs produce identical bytes.
func (l Loadout) Canonical(s Simulation) ([]byte, error) {
	doc := struct {
		Loadout    Loadout        `yaml:"loadout"`
		Enemy      EnemyConfig    `yaml:"enemy"`
		Duration   float64        `yaml:"duration_seconds"`
		CritMode   string         `yaml:"crit_mode"`
		Seed       uint64         `yaml:"seed"`
		ShareRatio float64        `yaml:"share_ratio"`
		Rotation   RotationConfig `yaml:"rotation"`
	}{
		Loadout:    l,
		Enemy:      s.Enemy,
		Duration:   s.DurationSeconds,
		CritMode:   strings.ToLower(s.CritMode),
		Seed:       s.Seed,
		ShareRatio: s.ShareRatio,
		Rotation:   s.Rotation,
	}
	b, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("canonical loadout %s: %w", l.Name, err)
	}
	return b, nil
}

// Loadout returns the loadout named name.
func (s Simulation) Loadout(name string) (Loadout, bool) {
	for _, l := range s.Loadouts {
		if l.Name == name {
			return l, true
		}
	}
	return Loadout{}, false
}
