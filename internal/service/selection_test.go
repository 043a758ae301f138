package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"device_library/internal/logger"
	"device_library/internal/models"
)

type selectionFixture struct {
	vm    *fakeVM
	ent   *fakeEntitlements
	sel   *fakeSelectionRepo
	ev    *fakeEventRepo
	svc   *SelectionService
	clock time.Time
}

func newSelectionFixture(t *testing.T, raw []models.RawDeviceEntry) *selectionFixture {
	t.Helper()
	f := &selectionFixture{
		vm:    &fakeVM{raw: raw, loaded: map[string]bool{}},
		ent:   &fakeEntitlements{},
		sel:   &fakeSelectionRepo{},
		ev:    &fakeEventRepo{},
		clock: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
	}
	lib := newTestLibrary(t, f.vm, f.ent)
	f.svc = NewSelectionService(lib, f.ent, f.vm, f.sel, f.ev, logger.Nop())
	f.svc.now = func() time.Time { return f.clock }
	return f
}

var selectionRaw = []models.RawDeviceEntry{
	{DeviceID: "arduinoUno"},
	{
		DeviceID:         "ironKit_arduinoUno",
		PnpIDList:        []string{"USB\\VID_1A86&PID_7523"},
		DeviceExtensions: []string{"ironKitMotors"},
	},
	{DeviceID: "off_arduinoUno", Disabled: boolPtr(true)},
	{DeviceID: "shop_arduinoUno", FreeDevice: boolPtr(false)},
}

func TestSelect_LoadsDeviceAndRecordsEvent(t *testing.T) {
	f := newSelectionFixture(t, selectionRaw)

	sel, err := f.svc.Select(context.Background(), SelectParams{UserID: " u1 ", DeviceID: "ironKit_arduinoUno"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	want := models.Selection{UserID: "u1", DeviceID: "ironKit_arduinoUno", UpdatedAt: f.clock}
	if sel != want {
		t.Fatalf("selection = %+v, want %+v", sel, want)
	}

	wantLoad := []loadCall{{
		deviceID:   "ironKit_arduinoUno",
		deviceType: models.DeviceTypeArduino,
		pnpIDs:     []string{"USB\\VID_1A86&PID_7523"},
	}}
	if !reflect.DeepEqual(f.vm.loads, wantLoad) {
		t.Fatalf("loads = %+v", f.vm.loads)
	}
	if !reflect.DeepEqual(f.vm.installs, [][]string{{"ironKitMotors"}}) {
		t.Fatalf("installs = %v", f.vm.installs)
	}
	if len(f.sel.saved) != 1 || f.sel.saved[0] != want {
		t.Fatalf("saved = %+v", f.sel.saved)
	}
	if len(f.ev.appended) != 1 {
		t.Fatalf("events = %+v", f.ev.appended)
	}
	ev := f.ev.appended[0]
	if ev.Category != "devices" || ev.Action != "select device" || ev.Label != "ironKit_arduinoUno" || ev.UserID != "u1" {
		t.Fatalf("event = %+v", ev)
	}
}

func TestSelect_AlreadyLoadedOnlyPersists(t *testing.T) {
	f := newSelectionFixture(t, selectionRaw)
	f.vm.loaded["arduinoUno"] = true

	if _, err := f.svc.Select(context.Background(), SelectParams{UserID: "u1", DeviceID: "arduinoUno"}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(f.vm.loads) != 0 || len(f.vm.installs) != 0 {
		t.Fatalf("loaded device reloaded: %+v %+v", f.vm.loads, f.vm.installs)
	}
	if len(f.sel.saved) != 1 {
		t.Fatalf("selection not saved")
	}
	if len(f.ev.appended) != 0 {
		t.Fatalf("unexpected event for already loaded device")
	}
}

func TestSelect_NoExtensionsSkipsInstall(t *testing.T) {
	f := newSelectionFixture(t, selectionRaw)

	if _, err := f.svc.Select(context.Background(), SelectParams{UserID: "u1", DeviceID: "arduinoUno"}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(f.vm.loads) != 1 || len(f.vm.installs) != 0 {
		t.Fatalf("loads=%d installs=%d", len(f.vm.loads), len(f.vm.installs))
	}
}

func TestSelect_Unselect(t *testing.T) {
	f := newSelectionFixture(t, selectionRaw)

	sel, err := f.svc.Select(context.Background(), SelectParams{UserID: "u1", DeviceID: models.UnselectDeviceID})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.DeviceID != models.UnselectDeviceID || len(f.sel.saved) != 1 {
		t.Fatalf("unselect not persisted: %+v", f.sel.saved)
	}
	if f.vm.loadChecks != 0 || len(f.vm.loads) != 0 || f.vm.listCalls != 0 {
		t.Fatalf("unselect touched the VM")
	}
}

func TestSelect_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		params  SelectParams
		wantErr error
	}{
		{name: "missing user", params: SelectParams{DeviceID: "arduinoUno"}, wantErr: ErrInvalidUser},
		{name: "unknown device", params: SelectParams{UserID: "u1", DeviceID: "ghost"}, wantErr: ErrDeviceNotFound},
		{name: "disabled device", params: SelectParams{UserID: "u1", DeviceID: "off_arduinoUno"}, wantErr: ErrDeviceDisabled},
		{name: "not purchased", params: SelectParams{UserID: "u1", DeviceID: "shop_arduinoUno"}, wantErr: ErrDeviceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newSelectionFixture(t, selectionRaw)

			_, err := f.svc.Select(context.Background(), tc.params)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if f.vm.loadChecks != 0 || len(f.vm.loads) != 0 {
				t.Fatalf("loader called on rejected selection")
			}
			if len(f.sel.saved) != 0 || len(f.ev.appended) != 0 {
				t.Fatalf("rejected selection persisted")
			}
		})
	}
}

func TestSelect_PurchasedDevice(t *testing.T) {
	f := newSelectionFixture(t, selectionRaw)
	f.ent.ent = models.Entitlement{PurchasedDeviceIDs: []string{"shop_arduinoUno"}}

	if _, err := f.svc.Select(context.Background(), SelectParams{UserID: "u1", DeviceID: "shop_arduinoUno"}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(f.vm.loads) != 1 {
		t.Fatalf("purchased device not loaded")
	}
}

func TestSelect_LoadFailure(t *testing.T) {
	f := newSelectionFixture(t, selectionRaw)
	f.vm.loadErr = errors.New("serial port busy")

	_, err := f.svc.Select(context.Background(), SelectParams{UserID: "u1", DeviceID: "arduinoUno"})
	if !errors.Is(err, ErrDeviceLoad) {
		t.Fatalf("err = %v, want ErrDeviceLoad", err)
	}
	if len(f.sel.saved) != 0 || len(f.ev.appended) != 0 {
		t.Fatalf("failed load persisted")
	}
}

func TestSelect_ExtensionFailureIsNotFatal(t *testing.T) {
	f := newSelectionFixture(t, selectionRaw)
	f.vm.installErr = errors.New("extension server down")
	log, logs := observedLogger()
	f.svc.log = log

	if _, err := f.svc.Select(context.Background(), SelectParams{UserID: "u1", DeviceID: "ironKit_arduinoUno"}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(f.sel.saved) != 1 || len(f.ev.appended) != 1 {
		t.Fatalf("selection not completed")
	}
	if logs.FilterMessage("device extensions install failed").Len() != 1 {
		t.Fatalf("expected extension warning")
	}
}

func TestSelect_SaveErrorPropagates(t *testing.T) {
	f := newSelectionFixture(t, selectionRaw)
	f.sel.saveErr = errors.New("disk full")

	_, err := f.svc.Select(context.Background(), SelectParams{UserID: "u1", DeviceID: "arduinoUno"})
	if !errors.Is(err, f.sel.saveErr) {
		t.Fatalf("err = %v", err)
	}
}

func TestSelected(t *testing.T) {
	f := newSelectionFixture(t, selectionRaw)

	sel, err := f.svc.Selected(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Selected: %v", err)
	}
	if sel.DeviceID != models.UnselectDeviceID || sel.UserID != "u1" {
		t.Fatalf("empty selection = %+v", sel)
	}

	f.sel.stored = models.Selection{UserID: "u1", DeviceID: "arduinoUno", UpdatedAt: f.clock}
	sel, _ = f.svc.Selected(context.Background(), "u1")
	if sel != f.sel.stored {
		t.Fatalf("stored selection = %+v", sel)
	}

	if _, err := f.svc.Selected(context.Background(), " "); !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("err = %v, want ErrInvalidUser", err)
	}
}
