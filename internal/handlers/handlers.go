package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/like-me/backend/internal/database"
)

// Handler combines all handler types
type Handler struct {
	Post   *PostHandler
	Health *HealthHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db database.Service) *Handler {
	return &Handler{
		Post:   NewPostHandler(db),
		Health: &HealthHandler{db: db},
	}
}

type healthChecker interface {
	Health() map[string]string
}

type HealthHandler struct {
	db healthChecker
}

// Check reports store health; 503 while the database is unreachable.
func (h *HealthHandler) Check(c *gin.Context) {
	stats := h.db.Health()
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
