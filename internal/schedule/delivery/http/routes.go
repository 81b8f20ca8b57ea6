package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/users", h.Users)
	rg.GET("/open", h.Open)
	rg.GET("/grouped", h.Grouped)
	rg.POST("/make", h.Make)
}
