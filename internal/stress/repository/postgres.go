package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"stresswatch/backend/internal/stress/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgresRepository is a Repository backed by the stress_records table.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a stress record repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save inserts the record. A unique violation on record_id maps to
// domain.ErrDuplicateRecord; any other database failure maps to
// domain.ErrStoreUnavailable. Single-record inserts are transactional
// on their own, so no explicit transaction is opened.
func (r *PostgresRepository) Save(ctx context.Context, rec *domain.StressRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stress_records (record_id, user_id, stress_score, analysis, threshold_exceeded, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.RecordID, rec.UserID, rec.StressScore, rec.Analysis, rec.ThresholdExceeded, rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("record %q: %w", rec.RecordID, domain.ErrDuplicateRecord)
		}
		return fmt.Errorf("%w: save: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// ListFlagged returns all flagged records ordered by created_at ascending.
func (r *PostgresRepository) ListFlagged(ctx context.Context) ([]*domain.StressRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT record_id, user_id, stress_score, analysis, threshold_exceeded, created_at
		 FROM stress_records
		 WHERE threshold_exceeded = TRUE
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list flagged: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []*domain.StressRecord
	for rows.Next() {
		var rec domain.StressRecord
		if err := rows.Scan(&rec.RecordID, &rec.UserID, &rec.StressScore, &rec.Analysis, &rec.ThresholdExceeded, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", domain.ErrStoreUnavailable, err)
		}
		rec.CreatedAt = rec.CreatedAt.UTC()
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %v", domain.ErrStoreUnavailable, err)
	}
	return out, nil
}
