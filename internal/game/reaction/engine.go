package reaction

import (
	"fmt"
	"sort"

	"github.com/udisondev/squadsim/internal/model"
)

// Result is the outcome of one attack against the aura.
type Result struct {
	Kind          model.ReactionKind
	Category      model.ReactionCategory
	Base          float64
	DamageElement model.Element // transformative only
	AuraAfter     model.Element
}

// Reacted reports whether a reaction happened.
func (r Result) Reacted() bool { return r.Kind != model.ReactionNone }

// Engine resolves attacks against a gauge using a shared table.
type Engine struct {
	table *Table
}

// NewEngine returns an engine over table.
func NewEngine(table *Table) (*Engine, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: reaction table is required", model.ErrInvalidSpec)
	}
	return &Engine{table: table}, nil
}

// Apply resolves atk against g at the attack's frame. It triggers at most
// one reaction. Attacks that may not apply their element leave the aura
// untouched apart from decay.
func (e *Engine) Apply(atk *model.Attack, g *Gauge) (Result, error) {
	if err := g.Decay(atk.Frame); err != nil {
		return Result{}, err
	}
	if !atk.ApplyAura || !atk.Elemental() {
		return Result{AuraAfter: g.Element}, nil
	}

	in := atk.Element
	switch {
	case g.Empty():
		if in.CanLinger() {
			g.set(in, atk.Units, atk.Frame)
		}
		return Result{AuraAfter: g.Element}, nil
	case g.Element == in:
		g.refresh(atk.Units)
		return Result{AuraAfter: g.Element}, nil
	}

	entry, ok := e.table.Lookup(in, g.Element)
	if !ok {
		if in.CanLinger() {
			g.set(in, atk.Units, atk.Frame)
		}
		return Result{AuraAfter: g.Element}, nil
	}

	res := Result{
		Kind:          entry.Kind,
		Category:      entry.Category,
		Base:          entry.Base,
		DamageElement: entry.DamageElement,
	}
	if res.Category == model.CategoryTransformative && res.DamageElement == model.ElementNone {
		res.DamageElement = g.Element
	}

	switch entry.Rule {
	case AuraConsume:
		g.consume(entry.Consume * atk.Units)
	case AuraClear:
		g.clear()
	case AuraRetain:
		g.Additive++
	case AuraReplace:
		u := atk.Units
		if cur := g.Units / auraRatio; cur < u {
			u = cur
		}
		g.set(entry.Result, u, atk.Frame)
	}
	res.AuraAfter = g.Element
	return res, nil
}

// AmpMultiplier is the amplifying multiplier for base at em elemental
// mastery plus flat reaction bonus.
func AmpMultiplier(base, em, bonus float64) float64 {
	return base * (1 + 2.78*em/(em+1400) + bonus)
}

// TransformDamage is transformative reaction damage before resistance.
func TransformDamage(base float64, level int, em, bonus float64) float64 {
	return base * LevelMultiplier(level) * (1 + 16*em/(em+2000) + bonus)
}

// AdditiveDamage is the flat damage an additive reaction adds to its hit.
func AdditiveDamage(base float64, level int, em, bonus float64) float64 {
	return base * LevelMultiplier(level) * (1 + 5*em/(em+1200) + bonus)
}

// levelAnchors are the reaction level multipliers at every tenth level.
var levelAnchors = []struct {
	level int
	mult  float64
}{
	{1, 17.17}, {10, 34.14}, {20, 80.58}, {30, 120.86}, {40, 207.38},
	{50, 323.6}, {60, 539.67}, {70, 765.64}, {80, 1077.44}, {90, 1446.85},
}

// LevelMultiplier returns the reaction level multiplier for level,
// interpolating linearly between anchors and clamping outside them.
func LevelMultiplier(level int) float64 {
	if level <= levelAnchors[0].level {
		return levelAnchors[0].mult
	}
	last := levelAnchors[len(levelAnchors)-1]
	if level >= last.level {
		return last.mult
	}
	i := sort.Search(len(levelAnchors), func(i int) bool { return levelAnchors[i].level >= level })
	hi, lo := levelAnchors[i], levelAnchors[i-1]
	f := float64(level-lo.level) / float64(hi.level-lo.level)
	return lo.mult + f*(hi.mult-lo.mult)
}
