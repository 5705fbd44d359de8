package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/squadsim/internal/game/sim"
	"github.com/udisondev/squadsim/internal/model"
)

// PostgresRunRepository implements RunRepository on PostgreSQL.
type PostgresRunRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRunRepository creates a PostgreSQL run repository.
func NewPostgresRunRepository(pool *pgxpool.Pool) *PostgresRunRepository {
	return &PostgresRunRepository{pool: pool}
}

// SaveRun stores the run, its actor totals and its events in one transaction.
// Events go through COPY.
func (r *PostgresRunRepository) SaveRun(ctx context.Context, fingerprint string, res *sim.Result) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.Error("rollback failed", "loadout", res.Name, "error", err)
		}
	}()

	run := newRun(fingerprint, res, time.Now())
	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO runs (fingerprint, loadout, duration_frames, total_damage, dps, event_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		run.Fingerprint, run.Loadout, int32(run.Duration), run.Total, run.DPS, int32(run.Events), run.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting run %q: %w", res.Name, err)
	}

	actors := make([][]any, 0, len(run.Actors))
	for _, a := range run.Actors {
		actors = append(actors, []any{id, int16(a.Index), a.Name, a.Damage, a.Share})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"run_actors"},
		[]string{"run_id", "slot", "name", "damage", "share"},
		pgx.CopyFromRows(actors),
	); err != nil {
		return 0, fmt.Errorf("inserting actors for run %d: %w", id, err)
	}

	events := make([][]any, 0, len(res.Events))
	for i, e := range res.Events {
		events = append(events, append([]any{id, int32(i)}, eventRow(e)...))
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"run_events"},
		eventColumns,
		pgx.CopyFromRows(events),
	); err != nil {
		return 0, fmt.Errorf("inserting events for run %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Debug("stored run", "id", id, "loadout", res.Name, "events", len(res.Events))
	return id, nil
}

// ListByFingerprint returns runs with the given fingerprint, oldest first.
func (r *PostgresRunRepository) ListByFingerprint(ctx context.Context, fingerprint string) ([]Run, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, fingerprint, loadout, duration_frames, total_damage, dps, event_count, created_at
		 FROM runs WHERE fingerprint = $1 ORDER BY id`, fingerprint,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs %s: %w", fingerprint, err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run             Run
			duration, count int32
		)
		if err := rows.Scan(&run.ID, &run.Fingerprint, &run.Loadout, &duration, &run.Total, &run.DPS, &count, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		run.Duration = model.Frame(duration)
		run.Events = int(count)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run rows: %w", err)
	}

	for i := range runs {
		if runs[i].Actors, err = r.actors(ctx, runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (r *PostgresRunRepository) actors(ctx context.Context, runID int64) ([]sim.ActorTotal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT slot, name, damage, share FROM run_actors WHERE run_id = $1 ORDER BY slot`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying actors for run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []sim.ActorTotal
	for rows.Next() {
		var (
			a    sim.ActorTotal
			slot int16
		)
		if err := rows.Scan(&slot, &a.Name, &a.Damage, &a.Share); err != nil {
			return nil, fmt.Errorf("scanning actor row: %w", err)
		}
		a.Index = int(slot)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating actor rows: %w", err)
	}
	return out, nil
}

// Events returns the event log of a run.
func (r *PostgresRunRepository) Events(ctx context.Context, runID int64) ([]model.Event, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(selectEvents, "$1"), runID)
	if err != nil {
		return nil, fmt.Errorf("querying events for run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating event rows: %w", err)
	}
	return out, nil
}
