package handlers

import (
	"context"
	"sync"

	"device_library/internal/models"
	"device_library/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockReconciler struct {
	catalog []models.DeviceDescriptor
}

func (m *mockReconciler) Catalog() []models.DeviceDescriptor { return m.catalog }

func (m *mockReconciler) Reconcile(raw []models.RawDeviceEntry) []models.DeviceDescriptor {
	return m.catalog
}

type mockLibrary struct {
	mu sync.Mutex

	items      []models.LibraryItem
	libErr     error
	refreshed  []models.DeviceDescriptor
	refreshErr error

	lastUserID string
	lastFilter service.LibraryFilter
	libCalls   int
}

func (m *mockLibrary) Refresh(ctx context.Context) ([]models.DeviceDescriptor, error) {
	return m.refreshed, m.refreshErr
}

func (m *mockLibrary) Devices(ctx context.Context) ([]models.DeviceDescriptor, error) {
	return m.refreshed, m.refreshErr
}

func (m *mockLibrary) Library(ctx context.Context, userID string, f service.LibraryFilter) ([]models.LibraryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.libCalls++
	m.lastUserID = userID
	m.lastFilter = f
	return m.items, m.libErr
}

func (m *mockLibrary) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.libCalls
}

type mockSelection struct {
	sel         models.Selection
	selectErr   error
	selectedErr error
	lastSelect  service.SelectParams
	lastUserID  string
}

func (m *mockSelection) Select(ctx context.Context, p service.SelectParams) (models.Selection, error) {
	m.lastSelect = p
	return m.sel, m.selectErr
}

func (m *mockSelection) Selected(ctx context.Context, userID string) (models.Selection, error) {
	m.lastUserID = userID
	return m.sel, m.selectedErr
}

type mockEventLog struct {
	resp       []models.DeviceEvent
	err        error
	lastFilter service.EventFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.EventFilter) ([]models.DeviceEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}
