// Package sim drives a whole fight: the clock, the step loop, invariant
// checks and the output log.
package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/squadsim/internal/game/energy"
	"github.com/udisondev/squadsim/internal/game/modifier"
	"github.com/udisondev/squadsim/internal/game/reaction"
	"github.com/udisondev/squadsim/internal/game/timeline"
	"github.com/udisondev/squadsim/internal/model"
)

// MaxRoster is the largest squad.
const MaxRoster = 4

// ErrInvalidConfig is wrapped by every setup validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Policy is an external rotation consulted before the kit default. A
// proposal that is not legal for the snapshot is ignored.
type Policy interface {
	Next(snap timeline.Snapshot) (model.ActionType, bool)
}

// Slot is one roster entry of a setup.
type Slot struct {
	Character   *model.CharacterSpec
	Weapon      *model.WeaponSpec
	Stats       map[model.Stat]float64 // equipment stat bag
	StartEnergy float64
	OnField     bool
}

// Setup is everything one run needs.
type Setup struct {
	Name       string
	Roster     []Slot
	Enemy      *model.EnemySpec
	Duration   model.Frame
	Crit       modifier.CritMode
	Seed       uint64
	ShareRatio float64         // 0 means energy.DefaultShareRatio
	Table      *reaction.Table // nil means reaction.DefaultTable
	Policy     Policy          // optional
	Logger     *slog.Logger    // nil means slog.Default
}

// Validate checks the parts of the setup that do not need the registries.
func (s *Setup) Validate() error {
	switch {
	case len(s.Roster) == 0:
		return fmt.Errorf("%w: roster is empty", ErrInvalidConfig)
	case len(s.Roster) > MaxRoster:
		return fmt.Errorf("%w: roster has %d slots, at most %d", ErrInvalidConfig, len(s.Roster), MaxRoster)
	case s.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive", ErrInvalidConfig)
	case s.Enemy == nil:
		return fmt.Errorf("%w: enemy is required", ErrInvalidConfig)
	case s.ShareRatio < 0 || s.ShareRatio > 1:
		return fmt.Errorf("%w: share ratio %.2f out of [0, 1]", ErrInvalidConfig, s.ShareRatio)
	}
	if err := s.Enemy.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	onField := 0
	for i, sl := range s.Roster {
		if sl.Character == nil || sl.Weapon == nil {
			return fmt.Errorf("%w: slot %d needs a character and a weapon", ErrInvalidConfig, i)
		}
		if err := sl.Character.Validate(); err != nil {
			return fmt.Errorf("%w: slot %d: %w", ErrInvalidConfig, i, err)
		}
		if err := sl.Weapon.Validate(); err != nil {
			return fmt.Errorf("%w: slot %d: %w", ErrInvalidConfig, i, err)
		}
		if sl.OnField {
			onField++
		}
	}
	if onField > 1 {
		return fmt.Errorf("%w: %d actors on field", ErrInvalidConfig, onField)
	}
	return nil
}

func (s *Setup) shareRatio() float64 {
	if s.ShareRatio == 0 {
		return energy.DefaultShareRatio
	}
	return s.ShareRatio
}
