// Package kit holds per-character behaviour behind one closed interface.
package kit

import (
	"fmt"
	"sort"

	"github.com/udisondev/squadsim/internal/game/attack"
	"github.com/udisondev/squadsim/internal/game/energy"
	"github.com/udisondev/squadsim/internal/game/icd"
	"github.com/udisondev/squadsim/internal/game/modifier"
	"github.com/udisondev/squadsim/internal/game/timeline"
	"github.com/udisondev/squadsim/internal/model"
)

// Kit is everything the scheduler needs from one character.
type Kit interface {
	modifier.Hook
	modifier.Observer
	modifier.Resetter

	// Decide picks the default action for the actor's snapshot.
	Decide(snap timeline.Snapshot) model.Action
	// Build turns a committed action into attacks and particles.
	Build(a model.Action, t model.Frame) ([]model.Attack, []energy.Particle)
	// PreferHold reports whether the kit favours the hold skill.
	PreferHold() bool
}

// Tagged is implemented by kits that attack with their own ICD tags.
type Tagged interface {
	ICDPresets() map[model.ICDTag]icd.Preset
}

// Factory builds the kit for roster slot.
type Factory func(slot int, spec *model.CharacterSpec) (Kit, error)

// registry maps kit name → factory. Populated by init().
var registry = map[string]Factory{}

// Register registers a kit factory by name.
func Register(name string, f Factory) {
	registry[name] = f
}

// New builds the kit named by spec.Kit for slot. An empty kit name means standard.
func New(slot int, spec *model.CharacterSpec) (Kit, error) {
	name := spec.Kit
	if name == "" {
		name = "standard"
	}
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown kit %q", model.ErrInvalidSpec, spec.Name, name)
	}
	return f(slot, spec)
}

// Names returns every registered kit name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("standard", NewStandard)
	Register("ember", NewEmber)
	Register("tide", NewTide)
	Register("banner", NewBanner)
	Register("gale", NewGale)
}

// Standard is the fully data-driven kit. The other kits embed it.
type Standard struct {
	attack.Builder
}

// NewStandard returns a kit that follows the talent rows and the default
// priority.
func NewStandard(slot int, spec *model.CharacterSpec) (Kit, error) {
	return newStandard(slot, spec), nil
}

func newStandard(slot int, spec *model.CharacterSpec) *Standard {
	return &Standard{Builder: attack.NewBuilder(slot, spec)}
}

func (s *Standard) Decide(snap timeline.Snapshot) model.Action {
	return timeline.Decide(snap, s.PreferHold())
}

// PreferHold is true whenever a hold variant exists.
func (s *Standard) PreferHold() bool { return s.Spec.Talents.SkillHold != nil }

func (s *Standard) Modify(*modifier.StepContext, *model.Attack, *model.State) {}

func (s *Standard) Observe(*modifier.StepContext) error { return nil }

func (s *Standard) Reset() {}

// castBy reports whether slot committed action a during the step.
func castBy(ctx *modifier.StepContext, slot int, a model.ActionType) bool {
	for _, sg := range ctx.Signals {
		if sg.Kind == modifier.SignalAction && sg.Actor == slot && sg.Action == a {
			return true
		}
	}
	return false
}
