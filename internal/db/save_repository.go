package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahidmondal/life-at-dev-sub000/internal/metrics"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
	"github.com/rahidmondal/life-at-dev-sub000/internal/save"
)

const storeName = "postgres"

// SaveRepository implements save.Store on PostgreSQL.
// The state is stored as JSONB; the checksum is re-verified on every read.
type SaveRepository struct {
	db      *pgxpool.Pool
	metrics *metrics.Metrics
}

var _ save.Store = (*SaveRepository)(nil)

// NewSaveRepository creates a new SaveRepository. m may be nil.
func NewSaveRepository(db *pgxpool.Pool, m *metrics.Metrics) *SaveRepository {
	return &SaveRepository{db: db, metrics: m}
}

// Put upserts sv. The stored row is locked while the write rules are checked
// so concurrent writers of the same id serialize.
func (r *SaveRepository) Put(ctx context.Context, sv save.Save) error {
	payload, err := save.Encode(sv.State)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var stored save.Save
	err = tx.QueryRow(ctx,
		`SELECT checksum, updated_at FROM saves WHERE id = $1 FOR UPDATE`, sv.ID,
	).Scan(&stored.Checksum, &stored.UpdatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return fmt.Errorf("locking save %s: %w", sv.ID, err)
	default:
		stored.ID = sv.ID
		skip, err := save.CheckWrite(stored, sv)
		if err != nil {
			r.metrics.RecordSave(storeName, "stale")
			return err
		}
		if skip {
			r.metrics.RecordSave(storeName, "unchanged")
			return nil
		}
	}

	p := sv.Preview
	_, err = tx.Exec(ctx,
		`INSERT INTO saves (id, state, checksum, player_name, job_title, year, week, age, money, stress, status, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
			state = EXCLUDED.state,
			checksum = EXCLUDED.checksum,
			player_name = EXCLUDED.player_name,
			job_title = EXCLUDED.job_title,
			year = EXCLUDED.year,
			week = EXCLUDED.week,
			age = EXCLUDED.age,
			money = EXCLUDED.money,
			stress = EXCLUDED.stress,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		sv.ID, payload, sv.Checksum, p.PlayerName, p.JobTitle, p.Year, p.Week, p.Age, p.Money, p.Stress, string(p.Status), sv.UpdatedAt,
	)
	if err != nil {
		r.metrics.RecordSave(storeName, "error")
		return fmt.Errorf("writing save %s: %w", sv.ID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		r.metrics.RecordSave(storeName, "error")
		return fmt.Errorf("committing save %s: %w", sv.ID, err)
	}
	r.metrics.RecordSave(storeName, "ok")
	return nil
}

// Get loads a save and verifies its checksum.
func (r *SaveRepository) Get(ctx context.Context, id uuid.UUID) (save.Save, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, state, checksum, player_name, job_title, year, week, age, money, stress, status, updated_at
		 FROM saves WHERE id = $1`, id)
	sv, err := scanSave(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return save.Save{}, fmt.Errorf("%w: %s", save.ErrNotFound, id)
	}
	if err != nil {
		return save.Save{}, fmt.Errorf("loading save %s: %w", id, err)
	}
	return sv, nil
}

// List returns all saves, most recently updated first.
func (r *SaveRepository) List(ctx context.Context) ([]save.Save, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, state, checksum, player_name, job_title, year, week, age, money, stress, status, updated_at
		 FROM saves ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying saves: %w", err)
	}
	defer rows.Close()

	result := make([]save.Save, 0, 16)
	for rows.Next() {
		sv, err := scanSave(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning save row: %w", err)
		}
		result = append(result, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating save rows: %w", err)
	}
	return result, nil
}

// Delete removes a save.
func (r *SaveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM saves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting save %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", save.ErrNotFound, id)
	}
	return nil
}

func scanSave(row pgx.Row) (save.Save, error) {
	var (
		sv      save.Save
		payload []byte
		status  string
	)
	p := &sv.Preview
	if err := row.Scan(&sv.ID, &payload, &sv.Checksum,
		&p.PlayerName, &p.JobTitle, &p.Year, &p.Week, &p.Age, &p.Money, &p.Stress, &status, &sv.UpdatedAt,
	); err != nil {
		return save.Save{}, err
	}
	p.Status = model.Status(status)

	state, err := save.Decode(payload)
	if err != nil {
		return save.Save{}, err
	}
	// JSONB does not keep key order, so verify against a fresh encoding.
	canonical, err := save.Encode(state)
	if err != nil {
		return save.Save{}, err
	}
	if save.Checksum(canonical) != sv.Checksum {
		return save.Save{}, fmt.Errorf("%w: %s", save.ErrChecksum, sv.ID)
	}
	sv.State = state
	return sv, nil
}
