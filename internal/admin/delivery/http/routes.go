package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/add", h.Add)
	rg.GET("/get", h.Get)
	rg.GET("/all", h.All)
	rg.PUT("/update", h.Update)
	rg.DELETE("/delete", h.Delete)
}
