package router

import (
	"github.com/gin-gonic/gin"

	"trimatch/internal/handler"
	"trimatch/internal/middleware"
	"trimatch/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	fileH *handler.FileHandler,
	sessionH *handler.SessionHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware. RequestID runs first so Recovery and Logger can
	// tag their lines with it.
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// File routes
	files := protected.Group("/files")
	files.POST("/upload", fileH.Upload)
	files.GET("/:id", fileH.GetByID)
	files.GET("/:id/download", fileH.GetDownloadURL)

	// Reconciliation session routes
	sessions := protected.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.GET("", sessionH.List)
	sessions.GET("/:id", sessionH.GetByID)
	sessions.DELETE("/:id", sessionH.Delete)
	sessions.POST("/:id/documents", sessionH.AttachDocument)
	sessions.GET("/:id/record", sessionH.GetRecord)
	sessions.GET("/:id/export/csv", sessionH.ExportCSV)
	sessions.GET("/:id/export/xlsx", sessionH.ExportXLSX)

	return r
}
