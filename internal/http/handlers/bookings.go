package handlers

import (
	"net/http"

	"toursapp/internal/domain"
	"toursapp/internal/domain/models"
	"toursapp/internal/http/middleware"
	"toursapp/internal/services"
	"toursapp/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings *services.BookingService
	pdf      services.PdfService
	excel    services.ExcelService
}

func NewBookingHandler(bookings *services.BookingService, pdf services.PdfService, excel services.ExcelService) *BookingHandler {
	return &BookingHandler{bookings: bookings, pdf: pdf, excel: excel}
}

func (h *BookingHandler) Register(g *gin.RouterGroup) {
	g.GET("", h.list)
	g.GET("/export/pdf", h.exportPDF)
	g.GET("/export/excel", h.exportExcel)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *BookingHandler) list(c *gin.Context) {
	pageNumber, pageSize := pagingParams(c)
	page, err := h.bookings.List(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *BookingHandler) get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	b, err := h.bookings.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) create(c *gin.Context) {
	var b models.Booking
	if !BindJSONOrError(c, &b) {
		return
	}
	b.ID = 0
	b.RowVersion = 0
	if b.CreatedBy == "" {
		b.CreatedBy = middleware.GetUserEmail(c)
	}
	if err := h.bookings.Create(c.Request.Context(), &b); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var b models.Booking
	if !BindJSONOrError(c, &b) {
		return
	}
	if err := h.bookings.Update(c.Request.Context(), id, &b); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.bookings.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *BookingHandler) exportPDF(c *gin.Context) {
	all, err := h.bookings.All(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if len(all) == 0 {
		RespondDomainError(c, domain.NotFoundError{Resource: "bookings"})
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "bookings", "export_pdf", middleware.GetUserEmail(c))
	data, filename, err := h.pdf.BookingsReport(all)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, data, filename)
}

func (h *BookingHandler) exportExcel(c *gin.Context) {
	all, err := h.bookings.All(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "bookings", "export_excel", middleware.GetUserEmail(c))
	data, filename, err := h.excel.BookingsWorkbook(all)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendExcel(c, data, filename)
}
