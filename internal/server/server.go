package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/emilythestrangee/like-me/backend/internal/config"
	"github.com/emilythestrangee/like-me/backend/internal/database"
	"github.com/emilythestrangee/like-me/backend/internal/handlers"
	"github.com/emilythestrangee/like-me/backend/internal/metrics"
)

type Server struct {
	cfg     *config.Config
	handler *handlers.Handler
}

func New(cfg *config.Config, db database.Service) *Server {
	return &Server{
		cfg:     cfg,
		handler: handlers.NewHandler(db),
	}
}

// HTTPServer wraps the routes in tracing and applies the server timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      otelhttp.NewHandler(s.RegisterRoutes(), "likeme-api"),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(metrics.Middleware())

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", s.handler.Health.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	posts := r.Group("/posts")
	{
		posts.GET("", s.handler.Post.GetPosts)
		posts.POST("", s.handler.Post.CreatePost)
		posts.PUT("/like/:id", s.handler.Post.LikePost)
		posts.DELETE("/:id", s.handler.Post.DeletePost)
	}

	return r
}
