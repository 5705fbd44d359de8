package kit

import (
	"github.com/udisondev/squadsim/internal/game/modifier"
	"github.com/udisondev/squadsim/internal/model"
)

const (
	galeEM       = 100
	galeDuration = 480
)

// Gale grants the whole squad elemental mastery after its own attacks
// trigger Swirl.
type Gale struct {
	*Standard
	buff modifier.Window
}

// NewGale builds the gale kit.
func NewGale(slot int, spec *model.CharacterSpec) (Kit, error) {
	return &Gale{
		Standard: newStandard(slot, spec),
		buff:     modifier.Window{Duration: galeDuration},
	}, nil
}

func (g *Gale) Observe(ctx *modifier.StepContext) error {
	ctx.Each(modifier.SignalReaction, func(s modifier.Signal) {
		if s.Actor == g.Slot && s.Reaction == model.ReactionSwirl {
			g.buff.Open(ctx.Frame)
		}
	})
	return nil
}

func (g *Gale) Modify(_ *modifier.StepContext, atk *model.Attack, st *model.State) {
	if g.buff.Active(atk.Frame) {
		st.Add(model.StatEM, galeEM)
	}
}

func (g *Gale) Reset() { g.buff.Reset() }
