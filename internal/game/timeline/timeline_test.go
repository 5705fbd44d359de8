package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/squadsim/internal/data"
	"github.com/udisondev/squadsim/internal/model"
)

func newActor(t *testing.T) *model.CharacterData {
	t.Helper()
	roster := data.TestRoster(data.TestCharacter("Tester", model.ElementPyro, "standard"))
	return roster[0]
}

// advance moves every counter of c forward and returns the new frame.
func advance(t *testing.T, c *model.CharacterData, now, dt model.Frame) model.Frame {
	t.Helper()
	require.NoError(t, c.Counters.Advance(dt))
	return now + dt
}

func TestDecide_Priority(t *testing.T) {
	c := newActor(t)

	snap := Take(c, 0)
	assert.Equal(t, model.ActionBurst, Decide(snap, false).Type, "full energy bursts first")

	c.Energy = 0
	snap = Take(c, 0)
	assert.Equal(t, model.ActionSkillPress, Decide(snap, false).Type)

	c.Counters.Reset(model.ActionSkillPress)
	snap = Take(c, 0)
	assert.Equal(t, model.Action{Type: model.ActionNormal, Index: 0}, Decide(snap, false))

	c.OnField = false
	snap = Take(c, 0)
	assert.Equal(t, model.StandStill, Decide(snap, false), "off-field actors do not normal attack")
}

func TestDecide_BusyActorStandsStill(t *testing.T) {
	c := newActor(t)
	c.BusyUntil = 30

	assert.Equal(t, model.StandStill, Decide(Take(c, 29), false))
	assert.NotEqual(t, model.StandStill, Decide(Take(c, 30), false))
}

func TestDecide_PreferHoldNeedsHoldVariant(t *testing.T) {
	c := newActor(t)
	c.Energy = 0

	assert.Equal(t, model.ActionSkillPress, Decide(Take(c, 0), true).Type, "no hold variant falls back to press")

	spec := *c.Spec
	spec.Talents.SkillHold = &model.Ability{Name: "Hold", Frames: 40, Cooldown: 600}
	c.Spec = &spec
	assert.Equal(t, model.ActionSkillHold, Decide(Take(c, 0), true).Type)
}

func TestSnapshot_BurstReadyIffFullEnergy(t *testing.T) {
	c := newActor(t)

	c.Energy = c.EnergyCost() - 0.001
	assert.False(t, Take(c, 0).BurstReady())

	c.Energy = c.EnergyCost()
	assert.True(t, Take(c, 0).BurstReady())

	c.Counters.Reset(model.ActionBurst)
	assert.False(t, Take(c, 0).BurstReady(), "cooldown not elapsed")
}

func TestSnapshot_IsolatedFromLaterMutation(t *testing.T) {
	c := newActor(t)
	snap := Take(c, 0)

	require.NoError(t, Commit(c, model.Action{Type: model.ActionBurst}, 0))

	assert.Equal(t, c.EnergyCost(), snap.Energy)
	assert.Equal(t, Never, snap.Counters.Since(model.ActionBurst))
}

func TestNextNormal(t *testing.T) {
	swings := []model.Swing{{Frames: 20}, {Frames: 25}, {Frames: 30}}

	tests := []struct {
		name    string
		prev    int
		elapsed model.Frame
		want    int
	}{
		{"fresh combo", -1, Never, 0},
		{"chain inside swing", 0, 20, 1},
		{"chain inside reset window", 1, 25 + 29, 2},
		{"window expired", 1, 25 + 30, 0},
		{"wraps at end", 2, 30, 0},
		{"long pause never skips swings", 0, 45, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextNormal(tt.prev, tt.elapsed, swings, 30))
		})
	}
}

func TestCommit_NormalChainAdvancesOneSwingAtATime(t *testing.T) {
	c := newActor(t)
	c.Energy = 0
	c.Counters.Reset(model.ActionSkillPress)

	var now model.Frame
	var got []int
	for len(got) < 5 {
		snap := Take(c, now)
		a := Decide(snap, false)
		if a.Type == model.ActionNormal {
			require.NoError(t, Commit(c, a, now))
			got = append(got, a.Index)
		}
		now = advance(t, c, now, 1)
	}

	assert.Equal(t, []int{0, 1, 2, 0, 1}, got)
}

func TestCommit_Burst(t *testing.T) {
	c := newActor(t)

	require.NoError(t, Commit(c, model.Action{Type: model.ActionBurst}, 10))

	assert.Zero(t, c.Energy)
	assert.Equal(t, model.Frame(0), c.Counters.Since(model.ActionBurst))
	assert.Equal(t, model.Frame(10)+c.Spec.Talents.Burst.Frames, c.BusyUntil)
}

func TestCommit_RejectsIllegal(t *testing.T) {
	c := newActor(t)
	c.Energy = 1

	err := Commit(c, model.Action{Type: model.ActionBurst}, 0)
	assert.ErrorIs(t, err, model.ErrIllegalAction, "burst without full energy")

	err = Commit(c, model.Action{Type: model.ActionCharged}, 0)
	assert.ErrorIs(t, err, model.ErrIllegalAction, "no charged talent")

	c.BusyUntil = 50
	err = Commit(c, model.Action{Type: model.ActionSkillPress}, 10)
	assert.ErrorIs(t, err, model.ErrIllegalAction, "busy")

	assert.NoError(t, Commit(c, model.StandStill, 10))
}

func TestCommit_SkillVariantsShareCooldown(t *testing.T) {
	c := newActor(t)
	spec := *c.Spec
	spec.Talents.SkillHold = &model.Ability{Name: "Hold", Frames: 40, Cooldown: 300}
	c.Spec = &spec

	require.NoError(t, Commit(c, model.Action{Type: model.ActionSkillPress}, 0))

	snap := Take(c, 0)
	assert.False(t, snap.SkillReady(true))
	assert.False(t, snap.SkillReady(false))
}

func TestLegal(t *testing.T) {
	c := newActor(t)
	snap := Take(c, 0)

	assert.True(t, snap.Legal(model.ActionStandStill))
	assert.True(t, snap.Legal(model.ActionBurst))
	assert.False(t, snap.Legal(model.ActionCharged))
	assert.False(t, snap.Legal(model.ActionSkillHold))

	c.BusyUntil = 5
	assert.False(t, Take(c, 0).Legal(model.ActionNormal))
}
