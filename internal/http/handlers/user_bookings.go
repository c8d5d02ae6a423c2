package handlers

import (
	"net/http"

	"toursapp/internal/http/middleware"
	"toursapp/internal/services"
	"toursapp/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserBookingHandler carries the customer-facing booking flow: browse
// active tours, book one (with an emailed PDF ticket), cancel, export.
type UserBookingHandler struct {
	svc *services.UserBookingService
}

func NewUserBookingHandler(svc *services.UserBookingService) *UserBookingHandler {
	return &UserBookingHandler{svc: svc}
}

func (h *UserBookingHandler) Register(g *gin.RouterGroup) {
	g.GET("/tours", h.availableTours)
	g.GET("/bookings", h.myBookings)
	g.POST("/bookings", h.bookTour)
	g.POST("/bookings/:id/cancel", h.cancel)
	g.GET("/bookings/export/pdf", h.exportPDF)
}

func (h *UserBookingHandler) availableTours(c *gin.Context) {
	tours, err := h.svc.AvailableTours(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (h *UserBookingHandler) bookTour(c *gin.Context) {
	var in services.BookTourInput
	if !BindJSONOrError(c, &in) {
		return
	}
	userID := middleware.GetUserID(c)
	booking, emailed, err := h.svc.BookTour(c.Request.Context(), userID, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEventf(middleware.GetRequestID(c), "bookings", "book_tour", "user=%d booking=%d emailed=%t", userID, booking.ID, emailed)
	c.JSON(http.StatusCreated, gin.H{"booking": booking, "ticketEmailed": emailed})
}

func (h *UserBookingHandler) myBookings(c *gin.Context) {
	bookings, err := h.svc.MyBookings(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *UserBookingHandler) cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	userID := middleware.GetUserID(c)
	if err := h.svc.Cancel(c.Request.Context(), userID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEventf(middleware.GetRequestID(c), "bookings", "cancel", "user=%d booking=%d", userID, id)
	c.JSON(http.StatusOK, gin.H{"canceled": id})
}

func (h *UserBookingHandler) exportPDF(c *gin.Context) {
	data, filename, err := h.svc.ExportMyBookings(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, data, filename)
}
