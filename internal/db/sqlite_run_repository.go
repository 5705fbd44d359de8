package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/squadsim/internal/game/sim"
	"github.com/udisondev/squadsim/internal/model"
)

// SQLiteRunRepository implements RunRepository on a local SQLite file.
type SQLiteRunRepository struct {
	db *sql.DB
}

// NewSQLiteRunRepository creates a SQLite run repository.
func NewSQLiteRunRepository(db *sql.DB) *SQLiteRunRepository {
	return &SQLiteRunRepository{db: db}
}

// SaveRun stores the run, its actor totals and its events in one transaction.
func (r *SQLiteRunRepository) SaveRun(ctx context.Context, fingerprint string, res *sim.Result) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("rollback failed", "loadout", res.Name, "error", err)
		}
	}()

	run := newRun(fingerprint, res, time.Now())
	out, err := tx.ExecContext(ctx,
		`INSERT INTO runs (fingerprint, loadout, duration_frames, total_damage, dps, event_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Fingerprint, run.Loadout, int64(run.Duration), run.Total, run.DPS, run.Events, run.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run %q: %w", res.Name, err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, a := range run.Actors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_actors (run_id, slot, name, damage, share) VALUES (?, ?, ?, ?, ?)`,
			id, a.Index, a.Name, a.Damage, a.Share,
		); err != nil {
			return 0, fmt.Errorf("inserting actors for run %d: %w", id, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_events (run_id, seq, frame, actor, actor_name, kind, ability, element, reaction, applied_aura, aura_after, damage, crit)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("preparing event insert: %w", err)
	}
	defer stmt.Close()
	for i, e := range res.Events {
		if _, err := stmt.ExecContext(ctx, append([]any{id, i}, eventRow(e)...)...); err != nil {
			return 0, fmt.Errorf("inserting event %d for run %d: %w", i, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Debug("stored run", "id", id, "loadout", res.Name, "events", len(res.Events))
	return id, nil
}

// ListByFingerprint returns runs with the given fingerprint, oldest first.
func (r *SQLiteRunRepository) ListByFingerprint(ctx context.Context, fingerprint string) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, fingerprint, loadout, duration_frames, total_damage, dps, event_count, created_at
		 FROM runs WHERE fingerprint = ? ORDER BY id`, fingerprint,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs %s: %w", fingerprint, err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			duration  int64
			createdAt int64
		)
		if err := rows.Scan(&run.ID, &run.Fingerprint, &run.Loadout, &duration, &run.Total, &run.DPS, &run.Events, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		run.Duration = model.Frame(duration)
		run.CreatedAt = time.UnixMilli(createdAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run rows: %w", err)
	}
	// release the single connection before the per-run queries
	rows.Close()

	for i := range runs {
		if runs[i].Actors, err = r.actors(ctx, runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (r *SQLiteRunRepository) actors(ctx context.Context, runID int64) ([]sim.ActorTotal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slot, name, damage, share FROM run_actors WHERE run_id = ? ORDER BY slot`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying actors for run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []sim.ActorTotal
	for rows.Next() {
		var a sim.ActorTotal
		if err := rows.Scan(&a.Index, &a.Name, &a.Damage, &a.Share); err != nil {
			return nil, fmt.Errorf("scanning actor row: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating actor rows: %w", err)
	}
	return out, nil
}

// Events returns the event log of a run.
func (r *SQLiteRunRepository) Events(ctx context.Context, runID int64) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(selectEvents, "?"), runID)
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
