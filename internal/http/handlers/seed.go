package handlers

import (
	"context"
	"net/http"

	"toursapp/internal/http/middleware"
	"toursapp/internal/services"
	"toursapp/internal/utils"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	svc *services.SeederService
}

func NewSeedHandler(svc *services.SeederService) *SeedHandler {
	return &SeedHandler{svc: svc}
}

func (h *SeedHandler) Register(g *gin.RouterGroup) {
	g.POST("/destinations", h.seed("destinations", h.svc.SeedDestinations))
	g.POST("/tours", h.seed("tours", h.svc.SeedTours))
	g.POST("/bookings", h.seed("bookings", h.svc.SeedBookings))
}

type seedRequest struct {
	Count int `json:"count"`
}

func (h *SeedHandler) seed(resource string, run func(ctx context.Context, count int) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := seedRequest{Count: 10}
		if c.Request.ContentLength > 0 {
			if !BindJSONOrError(c, &req) {
				return
			}
		}
		if err := run(c.Request.Context(), req.Count); err != nil {
			RespondDomainError(c, err)
			return
		}
		utils.LogEventf(middleware.GetRequestID(c), "seed", resource, "count=%d by=%s", req.Count, middleware.GetUserEmail(c))
		c.JSON(http.StatusOK, gin.H{"seeded": resource, "count": req.Count})
	}
}
