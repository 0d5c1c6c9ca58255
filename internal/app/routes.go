package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"github.com/Pritish2005/task-management-app/internal/auth"
	"github.com/Pritish2005/task-management-app/internal/config"
	"github.com/Pritish2005/task-management-app/internal/handlers"
	"github.com/Pritish2005/task-management-app/internal/middleware"
	"github.com/Pritish2005/task-management-app/internal/repo"
	"github.com/Pritish2005/task-management-app/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, log *logrus.Logger, db *pgxpool.Pool) {
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(log))

	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api")

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	authSvc := service.NewAuthService(userRepo)
	authHandler := handlers.NewAuthHandler(tokens, authSvc)
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireAuth(tokens))
	taskRepo := repo.NewPGTaskRepo(db)
	taskSvc := service.NewTaskService(taskRepo)
	taskHandler := handlers.NewTaskHandler(taskSvc)
	registerTaskRoutes(protected, taskHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Task Management API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.GET("/task", h.List)
	api.POST("/task", h.Create)
	api.PUT("/task/:id", h.Update)
	api.PATCH("/task/:id/status", h.SetStatus)
	api.DELETE("/task/:id", h.Delete)
}
