package client

import (
	"context"
	"net/http"
	"net/url"

	"device_library/internal/logger"
	"device_library/internal/models"
)

const (
	vmDevices           = "/devices"
	vmInstallExtensions = "/extensions/install"
)

// VMBridge is the HTTP client for the host VM's extension manager.
type VMBridge struct {
	c *jsonClient
}

func NewVMBridge(opts Options, log *logger.Logger) (*VMBridge, error) {
	c, err := newJSONClient(opts, log)
	if err != nil {
		return nil, err
	}
	return &VMBridge{c: c}, nil
}

// ListDevices returns the VM's device list. A successful call never returns
// nil, so an empty list is distinguishable from a failed discovery.
func (b *VMBridge) ListDevices(ctx context.Context) ([]models.RawDeviceEntry, error) {
	var out []models.RawDeviceEntry
	if err := b.c.do(ctx, http.MethodGet, vmDevices, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.RawDeviceEntry{}
	}
	return out, nil
}

type loadedResponse struct {
	Loaded bool `json:"loaded"`
}

func (b *VMBridge) IsDeviceLoaded(ctx context.Context, deviceID string) (bool, error) {
	var out loadedResponse
	if err := b.c.do(ctx, http.MethodGet, devicePath(deviceID, "loaded"), nil, &out); err != nil {
		return false, err
	}
	return out.Loaded, nil
}

type loadDeviceRequest struct {
	Type      models.DeviceType `json:"type,omitempty"`
	PnpIDList []string          `json:"pnpidList"`
}

func (b *VMBridge) LoadDevice(ctx context.Context, deviceID string, deviceType models.DeviceType, pnpIDList []string) error {
	if pnpIDList == nil {
		pnpIDList = []string{}
	}
	req := loadDeviceRequest{Type: deviceType, PnpIDList: pnpIDList}
	return b.c.do(ctx, http.MethodPost, devicePath(deviceID, "load"), req, nil)
}

type installExtensionsRequest struct {
	Extensions []string `json:"extensions"`
}

func (b *VMBridge) InstallExtensions(ctx context.Context, extensions []string) error {
	if extensions == nil {
		extensions = []string{}
	}
	return b.c.do(ctx, http.MethodPost, vmInstallExtensions, installExtensionsRequest{Extensions: extensions}, nil)
}

func devicePath(deviceID, action string) string {
	return vmDevices + "/" + url.PathEscape(deviceID) + "/" + action
}
