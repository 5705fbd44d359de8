package rotation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/squadsim/internal/data"
	"github.com/udisondev/squadsim/internal/game/timeline"
	"github.com/udisondev/squadsim/internal/model"
)

func snapshot(t *testing.T, name string, energy float64, frame model.Frame) timeline.Snapshot {
	t.Helper()
	c := data.TestRoster(data.TestCharacter(name, model.ElementPyro, "standard"))[0]
	c.Energy = energy
	return timeline.Take(c, frame)
}

func TestPriority_FirstLegalEntryWins(t *testing.T) {
	p, err := NewPriority(map[string][]string{
		"Carry":    {"burst", "skill", "normal"},
		DefaultKey: {"charged", "normal"},
	})
	require.NoError(t, err)

	a, ok := p.Next(snapshot(t, "carry", 0, 0))
	require.True(t, ok)
	assert.Equal(t, model.ActionSkillPress, a, "burst is not legal without energy")

	a, ok = p.Next(snapshot(t, "Carry", 60, 0))
	require.True(t, ok)
	assert.Equal(t, model.ActionBurst, a)

	a, ok = p.Next(snapshot(t, "Support", 60, 0))
	require.True(t, ok)
	assert.Equal(t, model.ActionNormal, a, "default list, charged is unavailable")
}

func TestPriority_NoOpinion(t *testing.T) {
	p, err := NewPriority(map[string][]string{"Carry": {"burst"}})
	require.NoError(t, err)

	_, ok := p.Next(snapshot(t, "Support", 60, 0))
	assert.False(t, ok, "no list for actor")

	_, ok = p.Next(snapshot(t, "Carry", 0, 0))
	assert.False(t, ok, "nothing legal")
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority([]byte("default: [skill_hold, skill, stand]\n"))
	require.NoError(t, err)
	a, ok := p.Next(snapshot(t, "Any", 0, 0))
	require.True(t, ok)
	assert.Equal(t, model.ActionSkillPress, a)

	tests := map[string]string{
		"not yaml":       "default: [skill",
		"unknown action": "default: [dance]",
		"empty list":     "default: []",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePriority([]byte(src))
			assert.ErrorIs(t, err, ErrInvalidRotation)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotation.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default: [normal]\n"), 0o644))

	p, err := LoadPriority(path)
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = LoadPriority(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

const script = `
function next_action(a)
  if a.burst_ready then
    return "burst"
  end
  if a.frame < seconds(1) then
    return "stand"
  end
  if a.on_field and a.normal_ready then
    return "normal"
  end
  return nil
end
`

func TestLua_Next(t *testing.T) {
	p, err := NewLua("test", script)
	require.NoError(t, err)

	a, ok := p.Next(snapshot(t, "Carry", 60, 0))
	require.True(t, ok)
	assert.Equal(t, model.ActionBurst, a)

	a, ok = p.Next(snapshot(t, "Carry", 0, 30))
	require.True(t, ok)
	assert.Equal(t, model.ActionStandStill, a)

	a, ok = p.Next(snapshot(t, "Carry", 0, 90))
	require.True(t, ok)
	assert.Equal(t, model.ActionNormal, a)

	s := snapshot(t, "Carry", 0, 90)
	s.OnField = false
	_, ok = p.Next(s)
	assert.False(t, ok, "nil means no opinion")
	assert.NoError(t, p.Err())
}

func TestLua_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotation.lua")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	p, err := LoadLua(path)
	require.NoError(t, err)
	_, ok := p.Next(snapshot(t, "Carry", 60, 0))
	assert.True(t, ok)
}

func TestLua_LoadErrors(t *testing.T) {
	_, err := NewLua("missing", "x = 1")
	assert.ErrorIs(t, err, ErrInvalidRotation)

	_, err = NewLua("syntax", "function next_action(")
	assert.Error(t, err)

	_, err = NewLua("runtime", "error('nope')")
	assert.Error(t, err)
}

func TestLua_ScriptErrorsAreKept(t *testing.T) {
	p, err := NewLua("bad", `
function next_action(a)
  if a.frame > 10 then
    error("broken")
  end
  return "dance"
end`)
	require.NoError(t, err)

	_, ok := p.Next(snapshot(t, "Carry", 0, 0))
	assert.False(t, ok)
	assert.ErrorIs(t, p.Err(), ErrInvalidRotation)

	_, ok = p.Next(snapshot(t, "Carry", 0, 20))
	assert.False(t, ok)
	assert.ErrorIs(t, p.Err(), ErrInvalidRotation, "first error is kept")
}

func TestLua_ShippedRotation(t *testing.T) {
	p, err := LoadLua(filepath.Join("..", "..", "config", "rotation.lua"))
	require.NoError(t, err)

	a, ok := p.Next(snapshot(t, "carry", 60, 0))
	require.True(t, ok)
	assert.Equal(t, model.ActionBurst, a)

	a, ok = p.Next(snapshot(t, "carry", 0, 0))
	require.True(t, ok)
	assert.Equal(t, model.ActionSkillPress, a)
	require.NoError(t, p.Err())
}
