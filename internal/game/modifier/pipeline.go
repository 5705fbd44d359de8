package modifier

import (
	"fmt"
	"sort"

	"github.com/udisondev/squadsim/internal/model"
)

// Hook contributes to the accumulator of every attack it sees. Hooks decide
// on their own whether an attack concerns them, by roster index.
type Hook interface {
	Modify(ctx *StepContext, atk *model.Attack, st *model.State)
}

// Observer is implemented by stateful hooks. Observe runs once per step
// after every attack of the step resolved.
type Observer interface {
	Observe(ctx *StepContext) error
}

// Resetter is implemented by hooks that keep run state.
type Resetter interface {
	Reset()
}

type entry struct {
	owner int
	order int
	hook  Hook
}

// Pipeline runs hooks in roster order: each slot's character, then its
// weapon, then anything else registered for it.
type Pipeline struct {
	entries []entry
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Register adds h for roster slot owner.
func (p *Pipeline) Register(owner int, h Hook) {
	p.entries = append(p.entries, entry{owner: owner, order: len(p.entries), hook: h})
	sort.SliceStable(p.entries, func(i, j int) bool {
		return p.entries[i].owner < p.entries[j].owner
	})
}

// Len returns the number of registered hooks.
func (p *Pipeline) Len() int { return len(p.entries) }

// Resolve runs every hook against atk on a fresh accumulator and writes the
// attack's modifier fields from it once.
func (p *Pipeline) Resolve(ctx *StepContext, atk *model.Attack) model.State {
	st := model.NewState()
	for _, e := range p.entries {
		e.hook.Modify(ctx, atk, &st)
	}
	atk.MultBonus = st.Get(model.StatMultBonus)
	atk.FlatDamage = st.Get(model.StatFlatDamage)
	return st
}

// Observe lets every stateful hook see the finished step.
func (p *Pipeline) Observe(ctx *StepContext) error {
	for _, e := range p.entries {
		o, ok := e.hook.(Observer)
		if !ok {
			continue
		}
		if err := o.Observe(ctx); err != nil {
			return fmt.Errorf("observe slot %d: %w", e.owner, err)
		}
	}
	return nil
}

// Reset clears the run state of every hook.
func (p *Pipeline) Reset() {
	for _, e := range p.entries {
		if r, ok := e.hook.(Resetter); ok {
			r.Reset()
		}
	}
}

// Stats adds an actor's static stats to its own attacks: ascension bonus,
// weapon secondary stat, equipment stat bag and base crit.
type Stats struct {
	Owner int
}

func (s Stats) Modify(ctx *StepContext, atk *model.Attack, st *model.State) {
	if atk.Actor != s.Owner {
		return
	}
	if c := ctx.Actor(s.Owner); c != nil {
		st.Merge(&c.Base)
	}
}

// Func adapts a plain function to Hook.
type Func func(ctx *StepContext, atk *model.Attack, st *model.State)

func (f Func) Modify(ctx *StepContext, atk *model.Attack, st *model.State) { f(ctx, atk, st) }
