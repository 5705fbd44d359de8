package modifier

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/squadsim/internal/data"
	"github.com/udisondev/squadsim/internal/game/reaction"
	"github.com/udisondev/squadsim/internal/model"
)

func newContext() *StepContext {
	roster := data.TestRoster(
		data.TestCharacter("A", model.ElementPyro, "standard"),
		data.TestCharacter("B", model.ElementHydro, "standard"),
	)
	return &StepContext{Roster: roster, Enemy: data.TestEnemy()}
}

func addHook(owner int, stat model.Stat, v float64) Hook {
	return Func(func(_ *StepContext, atk *model.Attack, st *model.State) {
		if atk.Actor == owner {
			st.Add(stat, v)
		}
	})
}

func scaleHook(stat model.Stat, f float64) Hook {
	return Func(func(_ *StepContext, _ *model.Attack, st *model.State) {
		st.Scale(stat, f)
	})
}

type observed struct {
	calls int
	err   error
	reset bool
}

func (o *observed) Modify(*StepContext, *model.Attack, *model.State) {}
func (o *observed) Observe(*StepContext) error                       { o.calls++; return o.err }
func (o *observed) Reset()                                           { o.reset = true }

func TestPipeline_PermutationInvariant(t *testing.T) {
	ctx := newContext()
	hooks := []Hook{
		Stats{Owner: 0},
		addHook(0, model.StatATKPercent, 0.2),
		addHook(0, model.StatDMGBonus, 0.466),
		addHook(0, model.StatFlatATK, 311),
		addHook(0, model.StatCritRate, 0.3),
		addHook(0, model.StatMultBonus, 0.1),
		addHook(0, model.StatFlatDamage, 250),
		addHook(1, model.StatATKPercent, 5),
		scaleHook(model.StatDMGBonus, 1.5),
		scaleHook(model.StatFlatATK, 1.1),
	}

	damage := func(order []int) float64 {
		p := NewPipeline()
		for _, i := range order {
			p.Register(0, hooks[i])
		}
		atk := &model.Attack{Kind: model.KindSkill, Actor: 0, Mult: 2, Element: model.ElementPyro}
		st := p.Resolve(ctx, atk)
		return Damage(Inputs{Attack: atk, Stats: &st, BaseATK: ctx.Roster[0].BaseATK(), Level: 90, Enemy: ctx.Enemy})
	}

	order := make([]int, len(hooks))
	for i := range order {
		order[i] = i
	}
	want := damage(order)
	require.Greater(t, want, 0.0)

	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		assert.InEpsilon(t, want, damage(order), 1e-12)
	}
}

func TestPipeline_ResolveWritesAttackFieldsOnce(t *testing.T) {
	ctx := newContext()
	p := NewPipeline()
	p.Register(0, addHook(0, model.StatMultBonus, 0.25))
	p.Register(0, addHook(0, model.StatFlatDamage, 100))
	p.Register(0, addHook(0, model.StatFlatDamage, 50))

	atk := &model.Attack{Actor: 0}
	p.Resolve(ctx, atk)
	p.Resolve(ctx, atk)

	assert.InDelta(t, 0.25, atk.MultBonus, 1e-12)
	assert.InDelta(t, 150.0, atk.FlatDamage, 1e-12, "each hook contributes once per resolution")
}

func TestPipeline_RunsInRosterOrder(t *testing.T) {
	var got []int
	record := func(i int) Hook {
		return Func(func(*StepContext, *model.Attack, *model.State) { got = append(got, i) })
	}
	p := NewPipeline()
	p.Register(1, record(10))
	p.Register(0, record(0))
	p.Register(1, record(11))
	p.Register(0, record(1))

	p.Resolve(newContext(), &model.Attack{})

	assert.Equal(t, []int{0, 1, 10, 11}, got)
	assert.Equal(t, 4, p.Len())
}

func TestPipeline_ObserveAndReset(t *testing.T) {
	ok := &observed{}
	bad := &observed{err: errors.New("boom")}
	p := NewPipeline()
	p.Register(0, ok)
	p.Register(1, bad)

	err := p.Observe(newContext())
	assert.ErrorContains(t, err, "observe slot 1")
	assert.Equal(t, 1, ok.calls)

	p.Reset()
	assert.True(t, ok.reset)
	assert.True(t, bad.reset)
}

func TestStats_OnlyOwnAttacks(t *testing.T) {
	ctx := newContext()
	ctx.Roster[0].Base.Add(model.StatEM, 200)

	st := model.NewState()
	Stats{Owner: 0}.Modify(ctx, &model.Attack{Actor: 1}, &st)
	assert.Zero(t, st.Get(model.StatEM))

	Stats{Owner: 0}.Modify(ctx, &model.Attack{Actor: 0}, &st)
	assert.Equal(t, 200.0, st.Get(model.StatEM))
	assert.Equal(t, model.BaseCritRate, st.Get(model.StatCritRate))
}

func TestDamage_Formula(t *testing.T) {
	st := model.NewState()
	st.Add(model.StatATKPercent, 0.5)
	st.Add(model.StatFlatATK, 100)
	st.Add(model.StatDMGBonus, 0.2)
	st.Add(model.StatSkillDMG, 0.1)
	st.Add(model.StatPyroDMG, 0.466)
	st.Add(model.StatCritRate, 0.6)
	st.Add(model.StatCritDMG, 1.2)
	atk := &model.Attack{Kind: model.KindSkill, Mult: 2, Element: model.ElementPyro, MultBonus: 0.1, FlatDamage: 40}
	enemy := &model.EnemySpec{Level: 90}

	got := Damage(Inputs{Attack: atk, Stats: &st, BaseATK: 800, Level: 90, Enemy: enemy})

	atkValue := 800*1.5 + 100.0
	want := (2*1.1*atkValue + 40) * 1.3 * 1.466 * (1 + 0.6*1.2) * 0.5 * 0.9
	assert.InEpsilon(t, want, got, 1e-12)
}

func TestDamage_ReactionFactors(t *testing.T) {
	st := model.NewState()
	st.Add(model.StatEM, 100)
	atk := &model.Attack{Kind: model.KindNormal, Mult: 1, Element: model.ElementHydro}
	enemy := &model.EnemySpec{Level: 90}
	in := Inputs{Attack: atk, Stats: &st, BaseATK: 1000, Level: 90, Enemy: enemy}

	plain := Damage(in)

	in.Reaction = reaction.Result{Kind: model.ReactionVaporize, Category: model.CategoryAmplifying, Base: 2}
	assert.InEpsilon(t, plain*reaction.AmpMultiplier(2, 100, 0), Damage(in), 1e-12)

	in.Reaction = reaction.Result{Kind: model.ReactionSpread, Category: model.CategoryAdditive, Base: 1.25}
	add := reaction.AdditiveDamage(1.25, 90, 100, 0)
	assert.InEpsilon(t, plain*(1000+add)/1000, Damage(in), 1e-12)
}

func TestTransformativeDamage_ResistanceOnly(t *testing.T) {
	st := model.NewState()
	in := Inputs{
		Stats: &st, Level: 90,
		Enemy:    &model.EnemySpec{Level: 90, Resist: map[model.Element]float64{model.ElementPyro: 0.5}},
		Reaction: reaction.Result{Kind: model.ReactionOverloaded, Category: model.CategoryTransformative, Base: 2, DamageElement: model.ElementPyro},
	}

	assert.InEpsilon(t, 2*reaction.LevelMultiplier(90)*0.5, TransformativeDamage(in), 1e-12)
}

func TestFactors(t *testing.T) {
	assert.InDelta(t, 0.5, DefenseFactor(90, 90, 0), 1e-12)
	assert.InDelta(t, 190/(190+190*0.7), DefenseFactor(90, 90, 0.3), 1e-12)

	assert.InDelta(t, 1.1, ResistanceFactor(-0.2), 1e-12)
	assert.InDelta(t, 0.9, ResistanceFactor(0.1), 1e-12)
	assert.InDelta(t, 0.25, ResistanceFactor(0.75), 1e-12)

	assert.InDelta(t, 2.0, CritFactor(1.4, 1.0), 1e-12, "crit rate clamps at 1")
	assert.InDelta(t, 1.0, CritFactor(-0.3, 1.0), 1e-12)
}

func TestCalculator_RolledIsDeterministicPerSeed(t *testing.T) {
	st := model.NewState()
	st.Add(model.StatCritRate, 0.5)
	st.Add(model.StatCritDMG, 1)
	in := Inputs{Attack: &model.Attack{Mult: 1}, Stats: &st, BaseATK: 100, Level: 90, Enemy: &model.EnemySpec{Level: 90}}

	roll := func(c *Calculator) []bool {
		out := make([]bool, 64)
		for i := range out {
			_, out[i] = c.Hit(in)
		}
		return out
	}

	c := NewCalculator(CritRolled, 42)
	first := roll(c)
	assert.Contains(t, first, true)
	assert.Contains(t, first, false)

	c.Reset()
	assert.Equal(t, first, roll(c))
	assert.Equal(t, first, roll(NewCalculator(CritRolled, 42)))
}

func TestCalculator_ExpectedNeverFlagsCrit(t *testing.T) {
	st := model.NewState()
	st.Add(model.StatCritRate, 1)
	in := Inputs{Attack: &model.Attack{Mult: 1}, Stats: &st, BaseATK: 100, Level: 90, Enemy: &model.EnemySpec{Level: 90}}

	dmg, crit := NewCalculator(CritExpected, 0).Hit(in)
	assert.False(t, crit)
	assert.InEpsilon(t, Damage(in), dmg, 1e-12)
}

func TestParseCritMode(t *testing.T) {
	m, err := ParseCritMode("Rolled")
	require.NoError(t, err)
	assert.Equal(t, CritRolled, m)

	m, err = ParseCritMode("")
	require.NoError(t, err)
	assert.Equal(t, CritExpected, m)

	_, err = ParseCritMode("sometimes")
	assert.Error(t, err)
}

func TestStacks(t *testing.T) {
	s := NewStacks(3, 100)

	s.Gain(0)
	s.Gain(10)
	s.Gain(20)
	s.Gain(30)
	assert.Equal(t, 3, s.Count(30), "capped")
	assert.Equal(t, 2, s.Count(110), "stacks expire individually")
	assert.Equal(t, 0, s.Count(130))

	s.Reset()
	assert.Zero(t, s.Count(30))
}

func TestWindow(t *testing.T) {
	w := Window{Duration: 60}
	assert.False(t, w.Active(0))

	w.Open(100)
	assert.True(t, w.Active(100))
	assert.True(t, w.Active(159))
	assert.False(t, w.Active(160))

	w.Reset()
	assert.False(t, w.Active(100))
	assert.Equal(t, model.Frame(60), w.Duration)
}

func TestStepContext(t *testing.T) {
	ctx := newContext()
	ctx.Begin(5)
	ctx.Emit(Signal{Kind: SignalAction, Actor: 1, Action: model.ActionBurst})
	ctx.Emit(Signal{Kind: SignalHit, Actor: 0})
	ctx.Schedule(model.Attack{Frame: 9})

	var actions []Signal
	ctx.Each(SignalAction, func(s Signal) { actions = append(actions, s) })
	require.Len(t, actions, 1)
	assert.Equal(t, model.Frame(5), actions[0].Frame)
	assert.Len(t, ctx.Pending(), 1)
	assert.Equal(t, 0, ctx.OnField())
	assert.Nil(t, ctx.Actor(7))

	ctx.Begin(6)
	assert.Empty(t, ctx.Signals)
	assert.Empty(t, ctx.Pending())
}
