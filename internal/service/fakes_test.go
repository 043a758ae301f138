package service

import (
	"context"
	"sync"
	"time"

	"device_library/internal/logger"
	"device_library/internal/models"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeEventRepo is a minimal stub that satisfies the repository.EventRepo interface.
type fakeEventRepo struct {
	gotFrom   time.Time
	gotTo     time.Time
	gotAction string

	events    []models.DeviceEvent
	err       error
	appendErr error

	calls    int
	appended []models.DeviceEvent
}

func (f *fakeEventRepo) List(_ context.Context, from, to time.Time, action string) ([]models.DeviceEvent, error) {
	f.calls++
	f.gotFrom = from
	f.gotTo = to
	f.gotAction = action
	return f.events, f.err
}

func (f *fakeEventRepo) Append(_ context.Context, e models.DeviceEvent) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, e)
	return nil
}

type fakeSelectionRepo struct {
	saved   []models.Selection
	stored  models.Selection
	saveErr error
	loadErr error
}

func (f *fakeSelectionRepo) Save(_ context.Context, s models.Selection) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s)
	return nil
}

func (f *fakeSelectionRepo) Load(_ context.Context, _ string) (models.Selection, error) {
	return f.stored, f.loadErr
}

type loadCall struct {
	deviceID   string
	deviceType models.DeviceType
	pnpIDs     []string
}

// fakeVM plays both the discovery source and the device loader.
type fakeVM struct {
	mu sync.Mutex

	raw     []models.RawDeviceEntry
	listErr error
	listFn  func(ctx context.Context) ([]models.RawDeviceEntry, error)

	loaded     map[string]bool
	loadedErr  error
	loadErr    error
	installErr error

	listCalls  int
	loads      []loadCall
	installs   [][]string
	loadChecks int
}

func (f *fakeVM) ListDevices(ctx context.Context) ([]models.RawDeviceEntry, error) {
	f.mu.Lock()
	f.listCalls++
	fn := f.listFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return f.raw, f.listErr
}

func (f *fakeVM) IsDeviceLoaded(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loadChecks++
	return f.loaded[id], f.loadedErr
}

func (f *fakeVM) LoadDevice(_ context.Context, id string, typ models.DeviceType, pnp []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads = append(f.loads, loadCall{deviceID: id, deviceType: typ, pnpIDs: pnp})
	return f.loadErr
}

func (f *fakeVM) InstallExtensions(_ context.Context, ext []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.installs = append(f.installs, ext)
	return f.installErr
}

type fakeEntitlements struct {
	ent   models.Entitlement
	err   error
	calls int
}

func (f *fakeEntitlements) Fetch(_ context.Context, userID string) (models.Entitlement, error) {
	f.calls++
	ent := f.ent
	ent.UserID = userID
	return ent, f.err
}

// observedLogger returns a logger whose entries can be inspected.
func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return logger.FromCore(core), logs
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
