package icd

import (
	"fmt"
	"sort"

	"github.com/udisondev/squadsim/internal/model"
)

// Preset builds a fresh timer for one (actor, tag) pair.
type Preset func() Timer

// Standard is the common rule: first hit applies, then every third hit,
// three applications per 2.5 s at most.
func Standard() Timer {
	b, _ := NewBucket(3, 3, model.Seconds(2.5))
	return b
}

// None never gates application.
func None() Timer { return &always{} }

// DurationPreset returns a preset for a Cooldown of d frames.
func DurationPreset(d model.Frame) Preset {
	return func() Timer {
		c, _ := NewCooldown(d)
		return c
	}
}

// BucketPreset returns a preset for a Bucket.
func BucketPreset(every, limit int, window model.Frame) (Preset, error) {
	if _, err := NewBucket(every, limit, window); err != nil {
		return nil, err
	}
	return func() Timer {
		b, _ := NewBucket(every, limit, window)
		return b
	}, nil
}

// Arena owns every ICD timer of a run, keyed by (actor, tag). Attacks carry
// the key, never the timer.
type Arena struct {
	presets map[model.ICDTag]Preset
	timers  map[model.ICDKey]Timer
}

// NewArena returns an arena with the built-in tags defined.
func NewArena() *Arena {
	a := &Arena{
		presets: make(map[model.ICDTag]Preset, 8),
		timers:  make(map[model.ICDKey]Timer, 16),
	}
	a.presets[model.ICDNone] = None
	for _, tag := range []model.ICDTag{model.ICDNormal, model.ICDCharged, model.ICDSkill, model.ICDBurst} {
		a.presets[tag] = Standard
	}
	return a
}

// Define registers the preset for tag. Redefining a tag is a configuration
// error because timers already handed out would disagree.
func (a *Arena) Define(tag model.ICDTag, p Preset) error {
	if tag == "" || p == nil {
		return fmt.Errorf("%w: icd tag and preset are required", model.ErrInvalidSpec)
	}
	if _, ok := a.presets[tag]; ok {
		return fmt.Errorf("%w: icd tag %q already defined", model.ErrInvalidSpec, tag)
	}
	a.presets[tag] = p
	return nil
}

// Defined reports whether tag has a preset.
func (a *Arena) Defined(tag model.ICDTag) bool {
	_, ok := a.presets[tag]
	return ok
}

// Timer returns the timer for key, creating it from the tag's preset on
// first use. Unknown tags use Standard.
func (a *Arena) Timer(key model.ICDKey) Timer {
	if t, ok := a.timers[key]; ok {
		return t
	}
	p, ok := a.presets[key.Tag]
	if !ok {
		p = Standard
	}
	t := p()
	a.timers[key] = t
	return t
}

// Check asks the key's timer whether a hit at t applies and records the
// hit. It is the single write path for ICD state.
func (a *Arena) Check(key model.ICDKey, t model.Frame) (bool, error) {
	tm := a.Timer(key)
	apply := tm.ShouldApply(t)
	if err := tm.Update(t, apply); err != nil {
		return false, fmt.Errorf("icd %d/%s: %w", key.Actor, key.Tag, err)
	}
	return apply, nil
}

// ResetActor resets every timer owned by actor.
func (a *Arena) ResetActor(actor int) {
	for k, t := range a.timers {
		if k.Actor == actor {
			t.Reset()
		}
	}
}

// Reset resets every timer.
func (a *Arena) Reset() {
	for _, t := range a.timers {
		t.Reset()
	}
}

// Keys returns the keys of every timer created so far, sorted.
func (a *Arena) Keys() []model.ICDKey {
	keys := make([]model.ICDKey, 0, len(a.timers))
	for k := range a.timers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Actor != keys[j].Actor {
			return keys[i].Actor < keys[j].Actor
		}
		return keys[i].Tag < keys[j].Tag
	})
	return keys
}
