package rotation

import (
	"fmt"
	"log/slog"

	"github.com/Shopify/go-lua"

	"github.com/udisondev/squadsim/internal/game/timeline"
	"github.com/udisondev/squadsim/internal/model"
)

// EntryPoint is the global function a rotation script must define.
const EntryPoint = "next_action"

// Lua is a policy backed by a Lua script. The script defines
// next_action(actor) which receives a table describing the actor's
// snapshot and returns an action name or nil.
//
// A Lua policy owns one interpreter and must not be shared between runs.
type Lua struct {
	state *lua.State
	name  string
	err   error
}

// LoadLua runs the script at path and checks that it defines the entry point.
func LoadLua(path string) (*Lua, error) {
	l := newState()
	if err := lua.LoadFile(l, path, ""); err != nil {
		return nil, fmt.Errorf("load lua rotation %s: %w", path, err)
	}
	return start(l, path)
}

// NewLua runs source and checks that it defines the entry point.
func NewLua(name, source string) (*Lua, error) {
	l := newState()
	if err := lua.LoadString(l, source); err != nil {
		return nil, fmt.Errorf("load lua rotation %s: %w", name, err)
	}
	return start(l, name)
}

func newState() *lua.State {
	l := lua.NewState()
	lua.OpenLibraries(l)
	l.Register("seconds", func(l *lua.State) int {
		l.PushInteger(int(model.Seconds(lua.CheckNumber(l, 1))))
		return 1
	})
	return l
}

func start(l *lua.State, name string) (*Lua, error) {
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		return nil, fmt.Errorf("run lua rotation %s: %w", name, err)
	}
	l.Global(EntryPoint)
	defer l.Pop(1)
	if !l.IsFunction(-1) {
		return nil, fmt.Errorf("%w: %s does not define %s", ErrInvalidRotation, name, EntryPoint)
	}
	return &Lua{state: l, name: name}, nil
}

// Err returns the first script error raised during Next, if any.
func (p *Lua) Err() error { return p.err }

// Next calls next_action with the snapshot. Script errors and unknown
// action names yield no proposal; the first error is kept for Err.
func (p *Lua) Next(snap timeline.Snapshot) (model.ActionType, bool) {
	l := p.state
	l.Global(EntryPoint)
	pushSnapshot(l, snap)
	if err := l.ProtectedCall(1, 1, 0); err != nil {
		l.Pop(1)
		p.fail(fmt.Errorf("%s: %s: %w", p.name, EntryPoint, err))
		return model.ActionStandStill, false
	}
	defer l.Pop(1)

	if l.IsNil(-1) {
		return model.ActionStandStill, false
	}
	s, ok := l.ToString(-1)
	if !ok {
		p.fail(fmt.Errorf("%w: %s: %s returned a non-string", ErrInvalidRotation, p.name, EntryPoint))
		return model.ActionStandStill, false
	}
	a, err := model.ParseActionType(s)
	if err != nil {
		p.fail(fmt.Errorf("%w: %s: %w", ErrInvalidRotation, p.name, err))
		return model.ActionStandStill, false
	}
	return a, true
}

func (p *Lua) fail(err error) {
	if p.err == nil {
		p.err = err
		slog.Warn("lua rotation error", "script", p.name, "error", err)
	}
}

func pushSnapshot(l *lua.State, s timeline.Snapshot) {
	l.NewTable()
	l.PushInteger(s.Index)
	l.SetField(-2, "index")
	l.PushString(s.Name)
	l.SetField(-2, "name")
	l.PushString(s.Element.String())
	l.SetField(-2, "element")
	l.PushInteger(int(s.Frame))
	l.SetField(-2, "frame")
	l.PushNumber(s.Energy)
	l.SetField(-2, "energy")
	l.PushNumber(s.Cost)
	l.SetField(-2, "cost")
	l.PushInteger(s.Combo)
	l.SetField(-2, "combo")
	l.PushBoolean(s.OnField)
	l.SetField(-2, "on_field")
	l.PushBoolean(s.Busy())
	l.SetField(-2, "busy")
	l.PushBoolean(s.SkillReady(false))
	l.SetField(-2, "skill_ready")
	l.PushBoolean(s.SkillReady(true))
	l.SetField(-2, "hold_ready")
	l.PushBoolean(s.BurstReady())
	l.SetField(-2, "burst_ready")
	l.PushBoolean(s.NormalReady())
	l.SetField(-2, "normal_ready")
}
