package db

import (
	"context"
	"time"

	"github.com/udisondev/squadsim/internal/game/sim"
	"github.com/udisondev/squadsim/internal/model"
)

// Run is a stored run summary.
type Run struct {
	ID          int64
	Fingerprint string
	Loadout     string
	Duration    model.Frame
	Total       float64
	DPS         float64
	Events      int
	CreatedAt   time.Time
	Actors      []sim.ActorTotal
}

// RunRepository persists finished runs.
type RunRepository interface {
	// SaveRun stores the summary and the full event log atomically and
	// returns the new run ID.
	SaveRun(ctx context.Context, fingerprint string, res *sim.Result) (int64, error)

	// ListByFingerprint returns runs with the given fingerprint, oldest first.
	ListByFingerprint(ctx context.Context, fingerprint string) ([]Run, error)

	// Events returns the event log of a run in log order.
	Events(ctx context.Context, runID int64) ([]model.Event, error)
}

func newRun(fingerprint string, res *sim.Result, at time.Time) Run {
	return Run{
		Fingerprint: fingerprint,
		Loadout:     res.Name,
		Duration:    res.Summary.Duration,
		Total:       res.Summary.Total,
		DPS:         res.Summary.DPS,
		Events:      res.Summary.Events,
		CreatedAt:   at,
		Actors:      res.Summary.ByActor,
	}
}

// eventRow flattens an event into column order of run_events, after
// run_id and seq.
func eventRow(e model.Event) []any {
	return []any{
		int32(e.Frame),
		int16(e.Actor),
		e.ActorName,
		int16(e.Kind),
		e.Ability,
		int16(e.Element),
		int16(e.Reaction),
		e.AppliedAura,
		int16(e.AuraAfter),
		e.Damage,
		e.Crit,
	}
}

var eventColumns = []string{
	"run_id", "seq", "frame", "actor", "actor_name", "kind", "ability",
	"element", "reaction", "applied_aura", "aura_after", "damage", "crit",
}

// scanEvent reads the columns written by eventRow.
func scanEvent(scan func(dest ...any) error) (model.Event, error) {
	var (
		e                                  model.Event
		frame                              int64
		actor, kind, el, reaction, auraAft int64
	)
	if err := scan(&frame, &actor, &e.ActorName, &kind, &e.Ability, &el, &reaction, &e.AppliedAura, &auraAft, &e.Damage, &e.Crit); err != nil {
		return model.Event{}, err
	}
	e.Frame = model.Frame(frame)
	e.Actor = int(actor)
	e.Kind = model.AttackKind(kind)
	e.Element = model.Element(el)
	e.Reaction = model.ReactionKind(reaction)
	e.AuraAfter = model.Element(auraAft)
	return e, nil
}

const selectEvents = `SELECT frame, actor, actor_name, kind, ability, element, reaction, applied_aura, aura_after, damage, crit
	FROM run_events WHERE run_id = %s ORDER BY seq`
