package model

import (
	"fmt"
	"strings"
)

// ActionType is a decision the timeline can make for one actor in one step.
type ActionType uint8

const (
	ActionStandStill ActionType = iota
	ActionNormal
	ActionCharged
	ActionSkillPress
	ActionSkillHold
	ActionBurst

	ActionTypeCount
)

var actionNames = [ActionTypeCount]string{
	ActionStandStill: "stand",
	ActionNormal:     "normal",
	ActionCharged:    "charged",
	ActionSkillPress: "skill",
	ActionSkillHold:  "skill_hold",
	ActionBurst:      "burst",
}

func (a ActionType) String() string {
	if a >= ActionTypeCount {
		return fmt.Sprintf("action(%d)", uint8(a))
	}
	return actionNames[a]
}

// ParseActionType parses an action name as used in rotation files and scripts.
func ParseActionType(s string) (ActionType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range actionNames {
		if name == s {
			return ActionType(i), nil
		}
	}
	return ActionStandStill, fmt.Errorf("unknown action %q", s)
}

// IsSkill reports whether the action is either skill variant.
func (a ActionType) IsSkill() bool {
	return a == ActionSkillPress || a == ActionSkillHold
}

// Action is one decided action. Index is the normal-attack combo index and
// is only meaningful for ActionNormal.
type Action struct {
	Type  ActionType
	Index int
}

// StandStill is the explicit no-op action.
var StandStill = Action{Type: ActionStandStill}

func (a Action) String() string {
	if a.Type == ActionNormal {
		return fmt.Sprintf("normal[%d]", a.Index)
	}
	return a.Type.String()
}

// AttackKind classifies a damage event.
type AttackKind uint8

const (
	KindNormal AttackKind = iota
	KindCharged
	KindSkill
	KindBurst
	KindAdditional
	KindDot
	KindReaction // transformative reaction damage

	AttackKindCount
)

var kindNames = [AttackKindCount]string{
	KindNormal:     "normal",
	KindCharged:    "charged",
	KindSkill:      "skill",
	KindBurst:      "burst",
	KindAdditional: "additional",
	KindDot:        "dot",
	KindReaction:   "reaction",
}

func (k AttackKind) String() string {
	if k >= AttackKindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}
