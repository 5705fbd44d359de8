package kit

import (
	"github.com/udisondev/squadsim/internal/game/icd"
	"github.com/udisondev/squadsim/internal/game/modifier"
	"github.com/udisondev/squadsim/internal/model"
)

// Ember ICD tags: the turret and the burst wheel gate their own ticks.
const (
	TagEmberTurret model.ICDTag = "ember_turret"
	TagEmberWheel  model.ICDTag = "ember_wheel"
)

const (
	pepperATK      = 0.10
	pepperDuration = 600
)

// Ember summons a pyro turret on skill and spins a wheel on burst. When the
// turret expires it leaves a pepper that raises the on-field actor's ATK.
type Ember struct {
	*Standard
	pepper modifier.Window
	next   model.Frame // turret expiry that will open the next pepper
	queued bool
}

// NewEmber builds the ember kit.
func NewEmber(slot int, spec *model.CharacterSpec) (Kit, error) {
	return &Ember{
		Standard: newStandard(slot, spec),
		pepper:   modifier.Window{Duration: pepperDuration},
	}, nil
}

func (e *Ember) ICDPresets() map[model.ICDTag]icd.Preset {
	return map[model.ICDTag]icd.Preset{
		TagEmberTurret: icd.DurationPreset(120),
		TagEmberWheel:  icd.DurationPreset(120),
	}
}

// turretLife is the frame offset of the last turret tick from the cast.
func (e *Ember) turretLife() model.Frame {
	sk := &e.Spec.Talents.Skill
	if sk.Ticks == 0 {
		return sk.Frames
	}
	return sk.TickStart + model.Frame(sk.Ticks-1)*sk.TickEvery
}

func (e *Ember) Observe(ctx *modifier.StepContext) error {
	if e.queued && ctx.Frame >= e.next {
		e.pepper.Open(e.next)
		e.queued = false
	}
	if castBy(ctx, e.Slot, model.ActionSkillPress) {
		e.next = ctx.Frame + e.turretLife()
		e.queued = true
	}
	return nil
}

func (e *Ember) Modify(ctx *modifier.StepContext, atk *model.Attack, st *model.State) {
	if atk.Actor == ctx.OnField() && e.pepper.Active(atk.Frame) {
		st.Add(model.StatATKPercent, pepperATK)
	}
}

func (e *Ember) Reset() {
	e.pepper.Reset()
	e.queued = false
	e.next = 0
}
