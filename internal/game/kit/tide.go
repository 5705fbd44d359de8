package kit

import (
	"github.com/udisondev/squadsim/internal/game/icd"
	"github.com/udisondev/squadsim/internal/game/modifier"
	"github.com/udisondev/squadsim/internal/model"
)

// TagTideWave is the ICD tag of the additional hydro hits.
const TagTideWave model.ICDTag = "tide_wave"

const (
	tideDuration = 900
	tideCooldown = 60
	tideMult     = 0.92
	tideHits     = 2
	tideHitMark  = 12
	tideSpacing  = 8
)

// Tide opens a rain window on burst. While it lasts, every normal attack
// cast by the on-field actor calls down two additional hydro hits, at most
// once per second.
type Tide struct {
	*Standard
	rain model.Frame
	open bool
	last model.Frame
	shot bool
}

// NewTide builds the tide kit.
func NewTide(slot int, spec *model.CharacterSpec) (Kit, error) {
	return &Tide{Standard: newStandard(slot, spec)}, nil
}

func (k *Tide) ICDPresets() map[model.ICDTag]icd.Preset {
	return map[model.ICDTag]icd.Preset{TagTideWave: icd.Standard}
}

func (k *Tide) active(t model.Frame) bool {
	return k.open && t-k.rain < tideDuration
}

func (k *Tide) Observe(ctx *modifier.StepContext) error {
	if castBy(ctx, k.Slot, model.ActionBurst) {
		k.rain = ctx.Frame
		k.open = true
	}
	if !k.active(ctx.Frame) {
		return nil
	}
	if !castBy(ctx, ctx.OnField(), model.ActionNormal) {
		return nil
	}
	if k.shot && ctx.Frame-k.last < tideCooldown {
		return nil
	}
	k.last = ctx.Frame
	k.shot = true
	for i := range tideHits {
		ctx.Schedule(model.Attack{
			Kind:    model.KindAdditional,
			Actor:   k.Slot,
			Ability: "Rain Wave",
			Mult:    tideMult,
			Element: model.ElementHydro,
			Units:   1,
			Frame:   ctx.Frame + tideHitMark + model.Frame(i)*tideSpacing,
			ICD:     model.ICDKey{Actor: k.Slot, Tag: TagTideWave},
		})
	}
	return nil
}

func (k *Tide) Reset() {
	k.open = false
	k.shot = false
	k.rain = 0
	k.last = 0
}
