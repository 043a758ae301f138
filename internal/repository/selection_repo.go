package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"device_library/internal/models"
)

type SelectionSQLite struct {
	db *sql.DB
}

func NewSelectionSQLite(db *sql.DB) *SelectionSQLite {
	return &SelectionSQLite{db: db}
}

var _ SelectionRepo = (*SelectionSQLite)(nil)

const (
	upsertSelectionSQL = `
		INSERT INTO device_selection (user_id, device_id, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			device_id=excluded.device_id,
			updated_at=excluded.updated_at
	`

	selectSelectionSQL = `
		SELECT user_id, device_id, updated_at
		FROM device_selection WHERE user_id=?
	`
)

// Save inserts or replaces the user's selection.
func (r *SelectionSQLite) Save(ctx context.Context, s models.Selection) error {
	// always persist UTC; set if zero
	ts := s.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	if _, err := r.db.ExecContext(ctx, upsertSelectionSQL, s.UserID, s.DeviceID, ts); err != nil {
		return fmt.Errorf("save selection for %q: %w", s.UserID, err)
	}
	return nil
}

// Load fetches the user's selection. A user who never selected anything
// gets a zero Selection and no error.
func (r *SelectionSQLite) Load(ctx context.Context, userID string) (models.Selection, error) {
	var s models.Selection
	err := r.db.QueryRowContext(ctx, selectSelectionSQL, userID).Scan(&s.UserID, &s.DeviceID, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Selection{}, nil
		}
		return models.Selection{}, fmt.Errorf("load selection for %q: %w", userID, err)
	}
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
