package attack

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/squadsim/internal/data"
	"github.com/udisondev/squadsim/internal/game/energy"
	"github.com/udisondev/squadsim/internal/model"
)

func TestBuild_NormalSwingHits(t *testing.T) {
	spec := data.TestCharacter("A", model.ElementPyro, "standard")
	spec.Talents.Normals[1] = model.Swing{Mult: 0.5, Hits: 3, HitMark: 8, Spacing: 4, Frames: 30}
	b := NewBuilder(2, spec)

	atks, parts := b.Build(model.Action{Type: model.ActionNormal, Index: 1}, 100)

	require.Len(t, atks, 3)
	assert.Empty(t, parts)
	for i, a := range atks {
		assert.Equal(t, model.Frame(108+4*i), a.Frame)
		assert.Equal(t, model.KindNormal, a.Kind)
		assert.Equal(t, 2, a.Actor)
		assert.Equal(t, model.ElementPhysical, a.Element)
		assert.Equal(t, model.ICDKey{Actor: 2, Tag: model.ICDNormal}, a.ICD)
		assert.Equal(t, "N2", a.Ability)
	}
}

func TestBuild_SkillWithTicksAndParticles(t *testing.T) {
	spec := data.TestCharacter("A", model.ElementElectro, "standard")
	spec.Talents.Skill.Ticks = 3
	spec.Talents.Skill.TickStart = 50
	spec.Talents.Skill.TickEvery = 60
	spec.Talents.Skill.TickMult = 0.8
	spec.Talents.Skill.TickUnits = 1
	spec.Talents.Skill.TickICD = "summon"
	b := NewBuilder(0, spec)

	atks, parts := b.Build(model.Action{Type: model.ActionSkillPress}, 10)

	require.Len(t, atks, 4)
	assert.Equal(t, model.KindSkill, atks[0].Kind)
	assert.Equal(t, model.Frame(20), atks[0].Frame)
	assert.Equal(t, model.ElementElectro, atks[0].Element)
	for k, a := range atks[1:] {
		assert.Equal(t, model.KindDot, a.Kind)
		assert.Equal(t, model.Frame(60+60*k), a.Frame)
		assert.Equal(t, model.ICDTag("summon"), a.ICD.Tag)
	}

	require.Len(t, parts, 1)
	assert.Equal(t, energy.Particle{Source: 0, Count: 3, Element: model.ElementElectro, Frame: 70}, parts[0])
}

func TestBuild_BurstTicksAreBurstKind(t *testing.T) {
	spec := data.TestCharacter("A", model.ElementCryo, "standard")
	spec.Talents.Burst.Ticks = 2
	spec.Talents.Burst.TickEvery = 30
	b := NewBuilder(0, spec)

	atks, _ := b.Build(model.Action{Type: model.ActionBurst}, 0)

	require.Len(t, atks, 3)
	for _, a := range atks {
		assert.Equal(t, model.KindBurst, a.Kind)
		assert.Equal(t, model.ICDBurst, a.ICD.Tag)
	}
}

func TestBuild_MissingTalentsYieldNothing(t *testing.T) {
	b := NewBuilder(0, data.TestCharacter("A", model.ElementCryo, "standard"))

	for _, a := range []model.Action{
		{Type: model.ActionCharged},
		{Type: model.ActionSkillHold},
		{Type: model.ActionNormal, Index: 9},
		model.StandStill,
	} {
		atks, parts := b.Build(a, 0)
		assert.Empty(t, atks, a.String())
		assert.Empty(t, parts, a.String())
	}
}

func TestQueue_OrdersByFrameThenInsertion(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.PushAttack(model.Attack{Ability: "late", Frame: 5}))
	require.NoError(t, q.PushAttack(model.Attack{Ability: "first", Frame: 3}))
	require.NoError(t, q.PushParticle(energy.Particle{Count: 1, Frame: 3}))
	require.NoError(t, q.PushAttack(model.Attack{Ability: "second", Frame: 3}))

	due, err := q.PopDue(3)
	require.NoError(t, err)
	require.Len(t, due, 3)
	assert.Equal(t, "first", due[0].Attack.Ability)
	assert.NotNil(t, due[1].Particle)
	assert.Equal(t, "second", due[2].Attack.Ability)
	assert.Less(t, due[0].Seq, due[2].Seq)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_RandomInsertionPopsSorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	q := NewQueue()
	for range 500 {
		require.NoError(t, q.PushAttack(model.Attack{Frame: model.Frame(rng.IntN(100))}))
	}

	due, err := q.PopDue(100)
	require.NoError(t, err)
	require.Len(t, due, 500)
	for i := 1; i < len(due); i++ {
		prev, cur := due[i-1], due[i]
		assert.True(t, prev.Frame < cur.Frame || (prev.Frame == cur.Frame && prev.Seq < cur.Seq))
	}
}

func TestQueue_RejectsRegression(t *testing.T) {
	q := NewQueue()
	_, err := q.PopDue(10)
	require.NoError(t, err)

	assert.ErrorIs(t, q.PushAttack(model.Attack{Frame: 9}), model.ErrTimestampRegression)
	assert.ErrorIs(t, q.PushParticle(energy.Particle{Frame: 9}), model.ErrTimestampRegression)
	_, err = q.PopDue(9)
	assert.ErrorIs(t, err, model.ErrTimestampRegression)

	assert.NoError(t, q.PushAttack(model.Attack{Frame: 10}), "current frame is allowed")
}

func TestQueue_Reset(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Schedule([]model.Attack{{Frame: 4}}, []energy.Particle{{Frame: 6}}))
	_, err := q.PopDue(2)
	require.NoError(t, err)

	q.Reset()

	assert.Zero(t, q.Len())
	assert.Zero(t, q.Now())
	require.NoError(t, q.PushAttack(model.Attack{Frame: 0}))
}
