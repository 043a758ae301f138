package service

import (
	"context"
	"sync"
	"sync/atomic"

	"device_library/internal/logger"
	"device_library/internal/models"

	"golang.org/x/sync/errgroup"
)

// DeviceSource discovers the devices the host VM currently knows about.
type DeviceSource interface {
	ListDevices(ctx context.Context) ([]models.RawDeviceEntry, error)
}

// EntitlementSource reports what a user purchased or subscribed to.
type EntitlementSource interface {
	Fetch(ctx context.Context, userID string) (models.Entitlement, error)
}

// LibraryService keeps the latest reconciled device list and annotates it
// per user.
type LibraryService struct {
	reconciler   *ReconcilerService
	source       DeviceSource
	entitlements EntitlementSource
	log          *logger.Logger

	nextGen atomic.Uint64

	mu      sync.RWMutex
	gen     uint64
	devices []models.DeviceDescriptor
}

func NewLibraryService(r *ReconcilerService, src DeviceSource, ent EntitlementSource, log *logger.Logger) *LibraryService {
	return &LibraryService{reconciler: r, source: src, entitlements: ent, log: log}
}

// Refresh runs discovery and reconciles the result. A failed discovery falls
// back to the static catalog. When refreshes overlap, only the one started
// last is kept.
func (s *LibraryService) Refresh(ctx context.Context) ([]models.DeviceDescriptor, error) {
	gen := s.nextGen.Add(1)

	raw, err := s.source.ListDevices(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.log.Warnw("device discovery failed, using static catalog", "error", err)
		raw = nil
	}
	list := s.reconciler.Reconcile(raw)

	s.mu.Lock()
	if gen > s.gen {
		s.gen = gen
		s.devices = list
	} else {
		s.log.Debugw("discarding stale device list", "generation", gen, "current", s.gen)
	}
	out := cloneDescriptors(s.devices)
	s.mu.Unlock()

	return out, nil
}

// Devices returns the latest reconciled list, refreshing once if nothing has
// been reconciled yet.
func (s *LibraryService) Devices(ctx context.Context) ([]models.DeviceDescriptor, error) {
	s.mu.RLock()
	ready := s.gen > 0
	out := cloneDescriptors(s.devices)
	s.mu.RUnlock()

	if ready {
		return out, nil
	}
	return s.Refresh(ctx)
}

// Library returns the device list annotated with availability for userID.
// An entitlement failure leaves only free devices available.
func (s *LibraryService) Library(ctx context.Context, userID string, f LibraryFilter) ([]models.LibraryItem, error) {
	var (
		ent     = models.Entitlement{UserID: userID}
		devices []models.DeviceDescriptor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ent = s.entitlement(gctx, userID)
		return nil
	})
	g.Go(func() error {
		var err error
		devices, err = s.Devices(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]models.LibraryItem, 0, len(devices))
	for _, d := range devices {
		if d.Hide && !f.IncludeHidden {
			continue
		}
		if f.Tag != "" && !d.HasTag(f.Tag) {
			continue
		}
		items = append(items, ent.Annotate(d))
	}
	return items, nil
}

func (s *LibraryService) entitlement(ctx context.Context, userID string) models.Entitlement {
	empty := models.Entitlement{UserID: userID}
	if userID == "" || s.entitlements == nil {
		return empty
	}
	ent, err := s.entitlements.Fetch(ctx, userID)
	if err != nil {
		s.log.Warnw("entitlement fetch failed", "user_id", userID, "error", err)
		return empty
	}
	ent.UserID = userID
	return ent
}

func cloneDescriptors(in []models.DeviceDescriptor) []models.DeviceDescriptor {
	if in == nil {
		return nil
	}
	out := make([]models.DeviceDescriptor, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}
