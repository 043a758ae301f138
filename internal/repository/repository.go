package repository

import (
	"context"
	"database/sql"
	"time"

	"device_library/internal/models"
)

// SelectionRepo stores the device each user has selected.
type SelectionRepo interface {
	Save(ctx context.Context, s models.Selection) error
	Load(ctx context.Context, userID string) (models.Selection, error)
}

// EventRepo is the append-only analytics log.
type EventRepo interface {
	Append(ctx context.Context, e models.DeviceEvent) error
	List(ctx context.Context, from, to time.Time, action string) ([]models.DeviceEvent, error)
}

type Repository struct {
	SelectionRepo SelectionRepo
	EventRepo     EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SelectionRepo: NewSelectionSQLite(db),
		EventRepo:     NewEventSQLite(db),
	}
}
