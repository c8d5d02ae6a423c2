package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/bun"
)

type SystemHandler struct {
	db *bun.DB
}

func NewSystemHandler(db *bun.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

func (h *SystemHandler) Register(g *gin.RouterGroup) {
	g.GET("/health", h.health)
}

func (h *SystemHandler) health(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
