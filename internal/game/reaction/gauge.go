package reaction

import (
	"fmt"
	"math"

	"github.com/udisondev/squadsim/internal/model"
)

// epsilon below which an aura counts as depleted.
const epsilon = 1e-9

// auraRatio is the share of an application's units that stays on the target.
const auraRatio = 0.8

// DecayDuration returns how long an application of u units lingers.
func DecayDuration(u float64) model.Frame {
	return model.Frame(math.Ceil((2.5*u + 7) * model.FramesPerSecond))
}

func decayRate(u float64) float64 {
	return auraRatio * u / float64(DecayDuration(u))
}

// Gauge is the target's aura: one element and its remaining magnitude,
// decaying linearly from the last update.
type Gauge struct {
	Element  model.Element
	Units    float64
	Rate     float64 // units per frame
	Updated  model.Frame
	Additive int // additive reactions triggered on the current aura
}

// NewGauge returns a gauge holding aura el with u applied units at frame t.
// A neutral element yields an empty gauge.
func NewGauge(el model.Element, u float64, t model.Frame) *Gauge {
	g := &Gauge{Updated: t}
	if el != model.ElementNone && u > 0 {
		g.set(el, u, t)
	}
	return g
}

// Decay brings the gauge forward to t.
func (g *Gauge) Decay(t model.Frame) error {
	if t < g.Updated {
		return fmt.Errorf("%w: aura update at %d after %d", model.ErrTimestampRegression, t, g.Updated)
	}
	if g.Element != model.ElementNone {
		g.Units -= g.Rate * float64(t-g.Updated)
		if g.Units <= epsilon {
			g.clear()
		}
	}
	g.Updated = t
	return nil
}

// At returns the aura element and magnitude at t without mutating the gauge.
func (g *Gauge) At(t model.Frame) (model.Element, float64) {
	if g.Element == model.ElementNone || t < g.Updated {
		return g.Element, g.Units
	}
	u := g.Units - g.Rate*float64(t-g.Updated)
	if u <= epsilon {
		return model.ElementNone, 0
	}
	return g.Element, u
}

// Empty reports whether the target is neutral.
func (g *Gauge) Empty() bool { return g.Element == model.ElementNone }

func (g *Gauge) set(el model.Element, u float64, t model.Frame) {
	g.Element = el
	g.Units = auraRatio * u
	g.Rate = decayRate(u)
	g.Updated = t
	g.Additive = 0
}

// refresh tops up a same-element aura. The decay rate of the existing aura
// is kept.
func (g *Gauge) refresh(u float64) {
	if v := auraRatio * u; v > g.Units {
		g.Units = v
	}
}

func (g *Gauge) consume(u float64) {
	g.Units -= u
	if g.Units <= epsilon {
		g.clear()
	}
}

func (g *Gauge) clear() {
	g.Element = model.ElementNone
	g.Units = 0
	g.Rate = 0
	g.Additive = 0
}

// Reset replaces the gauge content with a fresh aura at t.
func (g *Gauge) Reset(el model.Element, u float64, t model.Frame) {
	*g = *NewGauge(el, u, t)
}
