package statistikk

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PostgresStore implements the outbox on postgres. Rows are deleted once
// published; the statistics topic is the durable record.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the outbox table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS statistikk_utboks (
			id UUID PRIMARY KEY,
			rina_sak_id TEXT NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create statistikk outbox table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, m Melding) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal statistikk payload: %w", err)
	}

	query := `
		INSERT INTO statistikk_utboks (id, rina_sak_id, payload, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.ExecContext(ctx, query, uuid.New(), m.RinaSakID, payload, time.Now()); err != nil {
		return fmt.Errorf("insert statistikk outbox row: %w", err)
	}
	return nil
}

func (s *PostgresStore) NextBatch(ctx context.Context, limit int) ([]Rad, error) {
	query := `
		SELECT id, payload FROM statistikk_utboks
		ORDER BY created_at
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("select statistikk outbox rows: %w", err)
	}
	defer rows.Close()

	var batch []Rad
	for rows.Next() {
		var r Rad
		if err := rows.Scan(&r.ID, &r.Payload); err != nil {
			return nil, fmt.Errorf("scan statistikk outbox row: %w", err)
		}
		batch = append(batch, r)
	}
	return batch, rows.Err()
}

func (s *PostgresStore) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `DELETE FROM statistikk_utboks WHERE id = ANY($1)`
	if _, err := s.db.ExecContext(ctx, query, ids); err != nil {
		return fmt.Errorf("delete published statistikk rows: %w", err)
	}
	return nil
}
