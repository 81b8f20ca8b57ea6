package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	adminHTTP "calendar-schedule/internal/admin/delivery/http"
	"calendar-schedule/internal/middleware"
	"calendar-schedule/internal/model"
	scheduleHTTP "calendar-schedule/internal/schedule/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l, srv.rateLimitPerMin)
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.RateLimit())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Middleware mode: production")
	} else {
		srv.l.Infof(ctx, "Middleware mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	scheduleHTTP.RegisterRoutes(srv.gin.Group("/calendar"), srv.scheduleHandler)
	srv.l.Infof(ctx, "Calendar routes registered under /calendar")

	if srv.adminHandler != nil {
		adminHTTP.RegisterRoutes(srv.gin.Group("/db"), srv.adminHandler)
		srv.l.Infof(ctx, "Admin registry routes registered under /db")
	} else {
		srv.l.Infof(ctx, "Admin registry not configured, skipping /db routes")
	}

	return nil
}
