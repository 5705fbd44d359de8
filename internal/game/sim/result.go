package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/squadsim/internal/model"
)

// ActorTotal is one actor's share of a run.
type ActorTotal struct {
	Index  int
	Name   string
	Damage float64
	Share  float64 // of the run total, 0..1
}

// Summary aggregates a run's event log.
type Summary struct {
	Duration  model.Frame
	Total     float64
	DPS       float64
	Events    int
	ByActor   []ActorTotal
	ByKind    map[string]float64
	Reactions map[string]int
}

// Result is the output of one run.
type Result struct {
	Name    string
	Events  []model.Event
	Summary Summary
}

func newResult(name string, d model.Frame, roster []*model.CharacterData, events []model.Event) *Result {
	return &Result{Name: name, Events: events, Summary: Summarize(d, roster, events)}
}

// Summarize totals events over a fight of d frames.
func Summarize(d model.Frame, roster []*model.CharacterData, events []model.Event) Summary {
	sum := Summary{
		Duration:  d,
		Events:    len(events),
		ByActor:   make([]ActorTotal, len(roster)),
		ByKind:    make(map[string]float64),
		Reactions: make(map[string]int),
	}
	for i, c := range roster {
		sum.ByActor[i] = ActorTotal{Index: c.Index, Name: c.Name()}
	}
	for _, e := range events {
		sum.Total += e.Damage
		if e.Actor >= 0 && e.Actor < len(sum.ByActor) {
			sum.ByActor[e.Actor].Damage += e.Damage
		}
		sum.ByKind[e.Kind.String()] += e.Damage
		// transformative reactions log twice: the trigger and the reaction damage
		if e.Reaction != model.ReactionNone && e.Kind != model.KindReaction {
			sum.Reactions[e.Reaction.String()]++
		}
	}
	if secs := d.Seconds(); secs > 0 {
		sum.DPS = sum.Total / secs
	}
	if sum.Total > 0 {
		for i := range sum.ByActor {
			sum.ByActor[i].Share = sum.ByActor[i].Damage / sum.Total
		}
	}
	return sum
}

// RunAll runs every setup concurrently, at most limit at a time (limit <= 0
// means no limit). Results are returned in setup order. The first failure
// cancels the remaining runs.
func RunAll(ctx context.Context, setups []Setup, limit int) ([]*Result, error) {
	results := make([]*Result, len(setups))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range setups {
		g.Go(func() error {
			s, err := New(setups[i])
			if err != nil {
				return fmt.Errorf("setup %q: %w", setups[i].Name, err)
			}
			r, err := s.Run(gctx)
			if err != nil {
				return fmt.Errorf("run %q: %w", setups[i].Name, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
