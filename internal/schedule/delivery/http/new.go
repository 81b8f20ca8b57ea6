package http

import (
	"github.com/gin-gonic/gin"

	"calendar-schedule/internal/schedule"
	"calendar-schedule/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Users(c *gin.Context)
	Open(c *gin.Context)
	Grouped(c *gin.Context)
	Make(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
