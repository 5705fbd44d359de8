// Package rotation provides external policies that answer "what should
// actor i do next": YAML priority lists and Lua scripts.
package rotation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/squadsim/internal/game/timeline"
	"github.com/udisondev/squadsim/internal/model"
)

// ErrInvalidRotation is wrapped by every rotation parse failure.
var ErrInvalidRotation = errors.New("invalid rotation")

// Policy proposes an action for a snapshot. false means no opinion.
type Policy interface {
	Next(snap timeline.Snapshot) (model.ActionType, bool)
}

// DefaultKey is the priority list used for actors without their own.
const DefaultKey = "default"

// Priority is a per-actor ordered action list. The first entry legal for
// the snapshot wins.
type Priority struct {
	lists map[string][]model.ActionType
}

// NewPriority builds a priority policy from action names keyed by actor
// name (case-insensitive) or DefaultKey.
func NewPriority(lists map[string][]string) (*Priority, error) {
	p := &Priority{lists: make(map[string][]model.ActionType, len(lists))}
	for actor, names := range lists {
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: empty list for %q", ErrInvalidRotation, actor)
		}
		actions := make([]model.ActionType, 0, len(names))
		for _, n := range names {
			a, err := model.ParseActionType(n)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRotation, actor, err)
			}
			actions = append(actions, a)
		}
		p.lists[strings.ToLower(actor)] = actions
	}
	return p, nil
}

// ParsePriority decodes a YAML mapping of actor name to action list.
func ParsePriority(b []byte) (*Priority, error) {
	var lists map[string][]string
	if err := yaml.Unmarshal(b, &lists); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRotation, err)
	}
	return NewPriority(lists)
}

// LoadPriority reads a priority file.
func LoadPriority(path string) (*Priority, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rotation: %w", err)
	}
	return ParsePriority(b)
}

// Next returns the first legal entry of the actor's list.
func (p *Priority) Next(snap timeline.Snapshot) (model.ActionType, bool) {
	list, ok := p.lists[strings.ToLower(snap.Name)]
	if !ok {
		list, ok = p.lists[DefaultKey]
	}
	if !ok {
		return model.ActionStandStill, false
	}
	for _, a := range list {
		if snap.Legal(a) {
			return a, true
		}
	}
	return model.ActionStandStill, false
}
