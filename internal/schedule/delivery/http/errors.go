package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-schedule/internal/schedule"
	"calendar-schedule/pkg/response"
	"calendar-schedule/pkg/slots"
)

// mapError translates domain errors into HTTP responses. Anything not
// recognized is an upstream failure and stays a 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrUnknownTimezone),
		errors.Is(err, schedule.ErrEmptyAttendee),
		errors.Is(err, slots.ErrInvalidSlotLabel):
		response.Error(c, err, nil)
	case errors.Is(err, schedule.ErrNoAdminForDomain):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
