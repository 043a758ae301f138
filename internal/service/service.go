package service

import (
	"context"

	"device_library/internal/catalog"
	"device_library/internal/logger"
	"device_library/internal/models"
	"device_library/internal/repository"
)

// Reconciler exposes the static catalog and the pure merge against it.
type Reconciler interface {
	Catalog() []models.DeviceDescriptor
	Reconcile(raw []models.RawDeviceEntry) []models.DeviceDescriptor
}

// Library exposes discovery, the reconciled device list and the per-user view.
type Library interface {
	Refresh(ctx context.Context) ([]models.DeviceDescriptor, error)
	Devices(ctx context.Context) ([]models.DeviceDescriptor, error)
	Library(ctx context.Context, userID string, f LibraryFilter) ([]models.LibraryItem, error)
}

// Selection loads and remembers the device a user works with.
type Selection interface {
	Select(ctx context.Context, p SelectParams) (models.Selection, error)
	Selected(ctx context.Context, userID string) (models.Selection, error)
}

// EventLog exposes the append-only analytics log with filtering access.
type EventLog interface {
	List(ctx context.Context, f EventFilter) ([]models.DeviceEvent, error)
}

// VMBridge is everything the service needs from the host VM.
type VMBridge interface {
	DeviceSource
	DeviceLoader
}

type Service struct {
	Reconciler
	Library
	Selection
	EventLog
}

// NewService wires the catalog, the VM bridge, the entitlement API and the
// repository layer into concrete services.
func NewService(repos *repository.Repository, cat *catalog.Catalog, vm VMBridge, ent EntitlementSource, log *logger.Logger) *Service {
	reconciler := NewReconcilerService(cat, log.Named("reconciler"))
	library := NewLibraryService(reconciler, vm, ent, log.Named("library"))
	return &Service{
		Reconciler: reconciler,
		Library:    library,
		Selection:  NewSelectionService(library, ent, vm, repos.SelectionRepo, repos.EventRepo, log.Named("selection")),
		EventLog:   NewEventLogService(repos.EventRepo),
	}
}
