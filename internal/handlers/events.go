package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	devlib "device_library"
	"device_library/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errLoadEvents  = "failed to load events"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List device events
// @Description  Filter analytics events by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive.
// @Tags         events
// @Produce      json
// @Param        from    query   string  false  "Start of range"  example(2025-08-01)
// @Param        to      query   string  false  "End of range. Date-only treated as end of day."  example(2025-08-31)
// @Param        action  query   string  false  "Event action"  Enums(select device)
// @Success      200     {object}  device_library.EventsResponse
// @Failure      400     {object}  device_library.ErrorResponse
// @Failure      500     {object}  device_library.ErrorResponse
// @Router       /api/v1/events [get]
func (h *Handler) getEvents(c *gin.Context) {
	var (
		from   time.Time
		to     time.Time
		action = strings.TrimSpace(c.Query("action"))
		err    error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, devlib.ErrorResponse{Error: errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, devlib.ErrorResponse{Error: errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}

	events, err := h.services.EventLog.List(c.Request.Context(), service.EventFilter{
		From:   from,
		To:     to,
		Action: action,
	})
	if errors.Is(err, service.ErrInvalidTimeRange) {
		c.JSON(http.StatusBadRequest, devlib.ErrorResponse{Error: "'from' must be <= 'to'"})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadEvents, "events_list_failed", err,
			"from", from, "to", to, "action", action)
		return
	}
	c.JSON(http.StatusOK, devlib.EventsResponse{Count: len(events), Events: events})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
