package httpserver

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"reminder-nlp-service/internal/model"
	reminderHTTP "reminder-nlp-service/internal/reminder/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	srv.gin.Use(cors.New(corsCfg))

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Warnf(ctx, "CORS allows all origins in %s environment", srv.environment)
	} else {
		srv.l.Infof(ctx, "CORS mode: allow all origins")
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.serviceInfo)
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
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	reminderHTTP.RegisterRoutes(api, srv.reminderHandler, srv.middleware)

	srv.l.Infof(ctx, "Reminder parse route registered at POST /api/v1/reminders/parse")
}
