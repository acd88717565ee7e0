package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/handler"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/metrics"
	"github.com/marcos-nsantos/bucket-manager/internal/infrastructure/middleware"
)

type Router struct {
	engine            *gin.Engine
	sessionHandler    *handler.SessionHandler
	objectHandler     *handler.ObjectHandler
	sessionMiddleware *middleware.SessionMiddleware
	logger            *zap.Logger
	metrics           bool
}

type RouterConfig struct {
	SessionHandler    *handler.SessionHandler
	ObjectHandler     *handler.ObjectHandler
	SessionMiddleware *middleware.SessionMiddleware
	Logger            *zap.Logger
	Environment       string
	EnableMetrics     bool
}

func NewRouter(cfg RouterConfig) *Router {
	switch cfg.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r := &Router{
		engine:            gin.New(),
		sessionHandler:    cfg.SessionHandler,
		objectHandler:     cfg.ObjectHandler,
		sessionMiddleware: cfg.SessionMiddleware,
		logger:            cfg.Logger,
		metrics:           cfg.EnableMetrics,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if r.metrics {
		r.engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	api := r.engine.Group("/api/v1")
	{
		sessions := api.Group("/sessions")
		{
			sessions.POST("", r.sessionHandler.Connect)
			sessions.DELETE("", r.sessionMiddleware.RequireSession(), r.sessionHandler.Disconnect)
		}

		objects := api.Group("/buckets/:bucket/objects")
		objects.Use(r.sessionMiddleware.RequireSession())
		{
			objects.GET("", r.objectHandler.List)
			objects.POST("", r.objectHandler.Upload)
			objects.DELETE("", r.objectHandler.Delete)
			objects.GET("/download", r.objectHandler.Download)
			objects.GET("/info", r.objectHandler.Info)
			objects.GET("/preview", r.objectHandler.Preview)
			objects.POST("/convert", r.objectHandler.Convert)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
