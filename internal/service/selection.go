package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"device_library/internal/logger"
	"device_library/internal/models"
	"device_library/internal/repository"
)

// DeviceLoader drives device and extension loading in the host VM.
type DeviceLoader interface {
	IsDeviceLoaded(ctx context.Context, deviceID string) (bool, error)
	LoadDevice(ctx context.Context, deviceID string, deviceType models.DeviceType, pnpIDList []string) error
	InstallExtensions(ctx context.Context, extensions []string) error
}

// deviceLister is the part of the library a selection needs.
type deviceLister interface {
	Devices(ctx context.Context) ([]models.DeviceDescriptor, error)
}

type SelectionService struct {
	devices       deviceLister
	entitlements  EntitlementSource
	loader        DeviceLoader
	selectionRepo repository.SelectionRepo
	eventRepo     repository.EventRepo
	log           *logger.Logger
	now           func() time.Time
}

func NewSelectionService(
	devices deviceLister,
	ent EntitlementSource,
	loader DeviceLoader,
	selectionRepo repository.SelectionRepo,
	eventRepo repository.EventRepo,
	log *logger.Logger,
) *SelectionService {
	return &SelectionService{
		devices:       devices,
		entitlements:  ent,
		loader:        loader,
		selectionRepo: selectionRepo,
		eventRepo:     eventRepo,
		log:           log,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Select makes p.DeviceID the user's current device, loading it into the VM
// first unless it is already loaded. Selecting "null" clears the selection.
func (s *SelectionService) Select(ctx context.Context, p SelectParams) (models.Selection, error) {
	userID := strings.TrimSpace(p.UserID)
	deviceID := strings.TrimSpace(p.DeviceID)
	if userID == "" {
		return models.Selection{}, ErrInvalidUser
	}

	sel := models.Selection{UserID: userID, DeviceID: deviceID, UpdatedAt: s.now()}
	if deviceID == models.UnselectDeviceID {
		if err := s.selectionRepo.Save(ctx, sel); err != nil {
			return models.Selection{}, err
		}
		return sel, nil
	}

	d, err := s.find(ctx, deviceID)
	if err != nil {
		return models.Selection{}, err
	}
	if d.Disabled {
		return models.Selection{}, fmt.Errorf("%w: %s", ErrDeviceDisabled, deviceID)
	}
	if !d.FreeDevice && !s.entitlement(ctx, userID).Annotate(d).Available {
		return models.Selection{}, fmt.Errorf("%w: %s", ErrDeviceUnavailable, deviceID)
	}

	loaded, err := s.loader.IsDeviceLoaded(ctx, deviceID)
	if err != nil {
		s.log.Warnw("device load check failed", "device_id", deviceID, "error", err)
	}
	if !loaded {
		if err := s.load(ctx, d); err != nil {
			return models.Selection{}, err
		}
	}

	if err := s.selectionRepo.Save(ctx, sel); err != nil {
		return models.Selection{}, err
	}
	if !loaded {
		s.record(ctx, userID, d)
	}
	return sel, nil
}

// Selected returns the user's stored selection, or the unselect entry if
// there is none.
func (s *SelectionService) Selected(ctx context.Context, userID string) (models.Selection, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return models.Selection{}, ErrInvalidUser
	}
	sel, err := s.selectionRepo.Load(ctx, userID)
	if err != nil {
		return models.Selection{}, err
	}
	if sel.DeviceID == "" {
		return models.Selection{UserID: userID, DeviceID: models.UnselectDeviceID}, nil
	}
	return sel, nil
}

func (s *SelectionService) find(ctx context.Context, deviceID string) (models.DeviceDescriptor, error) {
	devices, err := s.devices.Devices(ctx)
	if err != nil {
		return models.DeviceDescriptor{}, err
	}
	for _, d := range devices {
		if d.DeviceID == deviceID {
			return d, nil
		}
	}
	return models.DeviceDescriptor{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, deviceID)
}

func (s *SelectionService) entitlement(ctx context.Context, userID string) models.Entitlement {
	if s.entitlements == nil {
		return models.Entitlement{UserID: userID}
	}
	ent, err := s.entitlements.Fetch(ctx, userID)
	if err != nil {
		s.log.Warnw("entitlement fetch failed", "user_id", userID, "error", err)
		return models.Entitlement{UserID: userID}
	}
	return ent
}

// load loads the device and then its extensions. Extension failures are
// logged only; the device itself is usable without them.
func (s *SelectionService) load(ctx context.Context, d models.DeviceDescriptor) error {
	if err := s.loader.LoadDevice(ctx, d.DeviceID, d.Type, d.PnpIDList); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDeviceLoad, d.DeviceID, err)
	}
	if len(d.DeviceExtensions) == 0 {
		return nil
	}
	if err := s.loader.InstallExtensions(ctx, d.DeviceExtensions); err != nil {
		s.log.Warnw("device extensions install failed",
			"device_id", d.DeviceID,
			"extensions", d.DeviceExtensions,
			"error", err,
		)
	}
	return nil
}

func (s *SelectionService) record(ctx context.Context, userID string, d models.DeviceDescriptor) {
	ev := models.DeviceEvent{
		OccurredAt: s.now(),
		Category:   models.EventCategoryDevices,
		Action:     models.EventActionSelect,
		Label:      d.DeviceID,
		UserID:     userID,
	}
	if d.Type != "" {
		ev.Metadata = map[string]any{"type": d.Type}
	}
	if err := s.eventRepo.Append(ctx, ev); err != nil {
		s.log.Errorw("record select event", "device_id", d.DeviceID, "error", err)
	}
}
