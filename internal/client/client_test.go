package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"device_library/internal/models"
)

func newVM(t *testing.T, h http.Handler) *VMBridge {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	b, err := NewVMBridge(Options{BaseURL: srv.URL + "/", Timeout: time.Second, Retries: 2, Backoff: time.Millisecond}, nil)
	if err != nil {
		t.Fatalf("NewVMBridge: %v", err)
	}
	return b
}

func TestNormalizeBaseURL(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "127.0.0.1:20111", want: "http://127.0.0.1:20111"},
		{in: "https://api.example.com/", want: "https://api.example.com"},
		{in: "http://host:3000/prefix//", want: "http://host:3000/prefix"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tc := range cases {
		got, err := normalizeBaseURL(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("normalizeBaseURL(%q) err = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("normalizeBaseURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestListDevices(t *testing.T) {
	vm := newVM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/devices" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"deviceId":"arduinoUno"},
			{"deviceId":"ironKit_arduinoUno","defaultBaudRate":"57600","featured":false,"typeList":["arduino"]}
		]`))
	}))

	got, err := vm.ListDevices(context.Background())
	if err != nil {
		t.Fatalf("ListDevices: %v", err)
	}
	if len(got) != 2 || got[0].DeviceID != "arduinoUno" {
		t.Fatalf("got %+v", got)
	}
	d := got[1]
	if d.DefaultBaudRate == nil || *d.DefaultBaudRate != "57600" {
		t.Fatalf("baud rate = %v", d.DefaultBaudRate)
	}
	if d.Featured == nil || *d.Featured {
		t.Fatalf("explicit false featured not preserved: %v", d.Featured)
	}
	if d.Name != nil {
		t.Fatalf("absent name decoded as %q", *d.Name)
	}
	if !reflect.DeepEqual(d.TypeList, []string{"arduino"}) {
		t.Fatalf("typeList = %v", d.TypeList)
	}
}

func TestListDevices_EmptyIsNotNil(t *testing.T) {
	vm := newVM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))

	got, err := vm.ListDevices(context.Background())
	if err != nil {
		t.Fatalf("ListDevices: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", got)
	}
}

func TestDo_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	vm := newVM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))

	if _, err := vm.ListDevices(context.Background()); err != nil {
		t.Fatalf("ListDevices: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("calls = %d, want 3", calls.Load())
	}
}

func TestDo_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	vm := newVM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := vm.ListDevices(context.Background())
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError {
		t.Fatalf("err = %v, want StatusError 500", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("calls = %d, want 3", calls.Load())
	}
}

func TestDo_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	vm := newVM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no such device", http.StatusNotFound)
	}))

	err := vm.LoadDevice(context.Background(), "ghost", models.DeviceTypeArduino, nil)
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound || se.Body != "no such device" {
		t.Fatalf("err = %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1", calls.Load())
	}
}

func TestDo_CanceledContext(t *testing.T) {
	vm := newVM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := vm.ListDevices(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestIsDeviceLoaded(t *testing.T) {
	vm := newVM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/devices/arduinoUno/loaded" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"loaded":true}`))
	}))

	loaded, err := vm.IsDeviceLoaded(context.Background(), "arduinoUno")
	if err != nil || !loaded {
		t.Fatalf("loaded = %v, err = %v", loaded, err)
	}
}

func TestLoadDeviceAndInstallExtensions(t *testing.T) {
	type captured struct {
		path string
		body map[string]any
	}
	reqs := make(chan captured, 2)
	vm := newVM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected %s with content type %q", r.Method, r.Header.Get("Content-Type"))
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		reqs <- captured{path: r.URL.Path, body: body}
		w.WriteHeader(http.StatusNoContent)
	}))

	ctx := context.Background()
	if err := vm.LoadDevice(ctx, "ironKit_arduinoUno", models.DeviceTypeArduino, []string{"USB\\VID_1A86"}); err != nil {
		t.Fatalf("LoadDevice: %v", err)
	}
	if err := vm.InstallExtensions(ctx, []string{"motors"}); err != nil {
		t.Fatalf("InstallExtensions: %v", err)
	}

	load := <-reqs
	if load.path != "/devices/ironKit_arduinoUno/load" {
		t.Fatalf("load path = %s", load.path)
	}
	wantLoad := map[string]any{"type": "arduino", "pnpidList": []any{"USB\\VID_1A86"}}
	if !reflect.DeepEqual(load.body, wantLoad) {
		t.Fatalf("load body = %v", load.body)
	}
	install := <-reqs
	if install.path != "/extensions/install" || !reflect.DeepEqual(install.body, map[string]any{"extensions": []any{"motors"}}) {
		t.Fatalf("install = %+v", install)
	}
}

func TestEntitlementFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/user/u 1/kits" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"kit_external_id":[{"kit_external_id":"arduinoNanoNobot"},{"kit_external_id":""}],"subscription_active":true}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewEntitlementClient(Options{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("NewEntitlementClient: %v", err)
	}
	ent, err := c.Fetch(context.Background(), "u 1")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	want := models.Entitlement{UserID: "u 1", PurchasedDeviceIDs: []string{"arduinoNanoNobot"}, SubscriptionActive: true}
	if !reflect.DeepEqual(ent, want) {
		t.Fatalf("ent = %+v, want %+v", ent, want)
	}
}

func TestEntitlementFetch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kit_external_id":`))
	}))
	t.Cleanup(srv.Close)

	c, _ := NewEntitlementClient(Options{BaseURL: srv.URL}, nil)
	if _, err := c.Fetch(context.Background(), "u1"); err == nil {
		t.Fatalf("expected decode error")
	}
}
