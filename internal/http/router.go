package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"toursapp/internal/config"
	"toursapp/internal/domain/models"
	"toursapp/internal/http/handlers"
	"toursapp/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	System       *handlers.SystemHandler
	Auth         *handlers.AuthHandler
	Destinations *handlers.DestinationHandler
	Tours        *handlers.TourHandler
	Bookings     *handlers.BookingHandler
	UserBookings *handlers.UserBookingHandler
	Dashboard    *handlers.DashboardHandler
	Seed         *handlers.SeedHandler
}

func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	gin.SetMode(cfg.HTTP.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	apiGroup := r.Group("/api")

	// Public surface.
	h.System.Register(apiGroup)
	h.Auth.Register(apiGroup.Group("/auth"))

	secured := apiGroup.Group("")
	secured.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret)))

	admin := secured.Group("")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))
	h.Destinations.Register(admin.Group("/destinations"))
	h.Tours.Register(admin.Group("/tours"))
	h.Bookings.Register(admin.Group("/bookings"))
	h.Dashboard.Register(admin.Group("/dashboard"))
	h.Seed.Register(admin.Group("/seed"))

	customer := secured.Group("/my")
	customer.Use(middleware.RequireRoles(models.RoleCustomer))
	h.UserBookings.Register(customer)

	return r
}
