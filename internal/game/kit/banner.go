package kit

import (
	"github.com/udisondev/squadsim/internal/game/modifier"
	"github.com/udisondev/squadsim/internal/model"
)

const (
	bannerRatio    = 1.12
	bannerDuration = 720
)

// Banner plants a field on burst that gives the on-field actor flat ATK
// equal to a ratio of the banner owner's base ATK.
type Banner struct {
	*Standard
	field modifier.Window
}

// NewBanner builds the banner kit.
func NewBanner(slot int, spec *model.CharacterSpec) (Kit, error) {
	return &Banner{
		Standard: newStandard(slot, spec),
		field:    modifier.Window{Duration: bannerDuration},
	}, nil
}

func (b *Banner) Observe(ctx *modifier.StepContext) error {
	if castBy(ctx, b.Slot, model.ActionBurst) {
		b.field.Open(ctx.Frame)
	}
	return nil
}

func (b *Banner) Modify(ctx *modifier.StepContext, atk *model.Attack, st *model.State) {
	if !b.field.Active(atk.Frame) || atk.Actor != ctx.OnField() {
		return
	}
	if owner := ctx.Actor(b.Slot); owner != nil {
		st.Add(model.StatFlatATK, bannerRatio*owner.BaseATK())
	}
}

func (b *Banner) Reset() { b.field.Reset() }
