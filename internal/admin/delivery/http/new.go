package http

import (
	"github.com/gin-gonic/gin"

	"calendar-schedule/internal/admin"
	"calendar-schedule/pkg/log"
)

// Handler is the public interface for the admin registry HTTP delivery layer.
type Handler interface {
	Add(c *gin.Context)
	Get(c *gin.Context)
	All(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc admin.UseCase
}

// New creates a new HTTP handler for the admin registry.
func New(l log.Logger, uc admin.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
