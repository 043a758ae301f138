package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	devlib "device_library"
	"device_library/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errLoadDevices     = "failed to load devices"
	errRefreshDevices  = "failed to refresh devices"
	errSelectDevice    = "failed to select device"
	errLoadSelection   = "failed to load selection"
	errIncludeHidden   = "invalid 'include_hidden'; use true or false"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", requestID(c)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, devlib.ErrorResponse{Error: userMsg})
}

// selectionStatus maps selection errors to HTTP codes. Unknown errors are 500.
func selectionStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidUser):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrDeviceNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDeviceDisabled):
		return http.StatusConflict
	case errors.Is(err, service.ErrDeviceUnavailable):
		return http.StatusForbidden
	case errors.Is(err, service.ErrDeviceLoad):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  device_library.StatusResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, devlib.StatusResponse{Status: statusOK})
}

// @Summary      Static catalog
// @Description  Every built-in board in display order, including hidden parent templates. The first entry is the "unselect device" sentinel.
// @Tags         devices
// @Produce      json
// @Success      200  {object}  device_library.CatalogResponse
// @Router       /api/v1/catalog [get]
func (h *Handler) getCatalog(c *gin.Context) {
	devices := h.services.Reconciler.Catalog()
	c.JSON(http.StatusOK, devlib.CatalogResponse{Count: len(devices), Devices: devices})
}

// @Summary      Device library
// @Description  Reconciled device list annotated with availability for the user. Hidden parents are omitted unless include_hidden=true.
// @Tags         devices
// @Produce      json
// @Param        user_id         query  string  false  "User whose kits decide availability"
// @Param        tag             query  string  false  "Keep devices with this tag"  example(realtime)
// @Param        include_hidden  query  bool    false  "Include hidden parent devices"
// @Success      200  {object}  device_library.DevicesResponse
// @Failure      400  {object}  device_library.ErrorResponse
// @Failure      500  {object}  device_library.ErrorResponse
// @Router       /api/v1/devices [get]
func (h *Handler) getDevices(c *gin.Context) {
	filter := service.LibraryFilter{Tag: strings.TrimSpace(c.Query("tag"))}
	if s := c.Query("include_hidden"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, devlib.ErrorResponse{Error: errIncludeHidden})
			return
		}
		filter.IncludeHidden = v
	}

	userID := strings.TrimSpace(c.Query("user_id"))
	items, err := h.services.Library.Library(c.Request.Context(), userID, filter)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadDevices, "devices_list_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, devlib.DevicesResponse{Count: len(items), Devices: items})
}

// @Summary      Refresh devices
// @Description  Re-runs discovery against the VM and reconciles the result. Falls back to the static catalog when the VM is unreachable.
// @Tags         devices
// @Produce      json
// @Success      200  {object}  device_library.CatalogResponse
// @Failure      500  {object}  device_library.ErrorResponse
// @Router       /api/v1/devices/refresh [post]
func (h *Handler) refreshDevices(c *gin.Context) {
	devices, err := h.services.Library.Refresh(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRefreshDevices, "devices_refresh_failed", err)
		return
	}
	c.JSON(http.StatusOK, devlib.CatalogResponse{Count: len(devices), Devices: devices})
}

// @Summary      Select device
// @Description  Loads the device into the VM unless already loaded and stores it as the user's selection. device_id "null" clears the selection.
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        body  body  device_library.SelectRequest  true  "Selection"
// @Success      200   {object}  models.Selection
// @Failure      400   {object}  device_library.ErrorResponse
// @Failure      403   {object}  device_library.ErrorResponse
// @Failure      404   {object}  device_library.ErrorResponse
// @Failure      409   {object}  device_library.ErrorResponse
// @Failure      502   {object}  device_library.ErrorResponse
// @Failure      500   {object}  device_library.ErrorResponse
// @Router       /api/v1/devices/select [post]
func (h *Handler) selectDevice(c *gin.Context) {
	var req devlib.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, devlib.ErrorResponse{Error: errInvalidBodyPref + err.Error()})
		return
	}

	sel, err := h.services.Selection.Select(c.Request.Context(), service.SelectParams{
		UserID:   req.UserID,
		DeviceID: req.DeviceID,
	})
	if err != nil {
		code := selectionStatus(err)
		if code == http.StatusInternalServerError {
			h.logAndJSONError(c, code, errSelectDevice, "device_select_failed", err, "device_id", req.DeviceID)
			return
		}
		if h.log != nil {
			h.log.Infow("device_select_rejected", "err", err, "device_id", req.DeviceID, "user_id", req.UserID)
		}
		c.JSON(code, devlib.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, sel)
}

// @Summary      Current selection
// @Tags         devices
// @Produce      json
// @Param        user_id  query  string  true  "User id"
// @Success      200  {object}  models.Selection
// @Failure      400  {object}  device_library.ErrorResponse
// @Failure      500  {object}  device_library.ErrorResponse
// @Router       /api/v1/devices/selected [get]
func (h *Handler) getSelected(c *gin.Context) {
	sel, err := h.services.Selection.Selected(c.Request.Context(), c.Query("user_id"))
	if errors.Is(err, service.ErrInvalidUser) {
		c.JSON(http.StatusBadRequest, devlib.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadSelection, "selection_load_failed", err)
		return
	}
	c.JSON(http.StatusOK, sel)
}
