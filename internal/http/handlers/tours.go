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

type TourHandler struct {
	tours *services.TourService
	pdf   services.PdfService
	excel services.ExcelService
}

func NewTourHandler(tours *services.TourService, pdf services.PdfService, excel services.ExcelService) *TourHandler {
	return &TourHandler{tours: tours, pdf: pdf, excel: excel}
}

func (h *TourHandler) Register(g *gin.RouterGroup) {
	g.GET("", h.list)
	g.GET("/export/pdf", h.exportPDF)
	g.GET("/export/excel", h.exportExcel)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *TourHandler) list(c *gin.Context) {
	pageNumber, pageSize := pagingParams(c)
	page, err := h.tours.List(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *TourHandler) get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := h.tours.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TourHandler) create(c *gin.Context) {
	var t models.Tour
	if !BindJSONOrError(c, &t) {
		return
	}
	t.ID = 0
	t.RowVersion = 0
	if t.CreatedBy == "" {
		t.CreatedBy = middleware.GetUserEmail(c)
	}
	if err := h.tours.Create(c.Request.Context(), &t); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TourHandler) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var t models.Tour
	if !BindJSONOrError(c, &t) {
		return
	}
	if err := h.tours.Update(c.Request.Context(), id, &t); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TourHandler) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.tours.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *TourHandler) exportPDF(c *gin.Context) {
	all, err := h.tours.All(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if len(all) == 0 {
		RespondDomainError(c, domain.NotFoundError{Resource: "tours"})
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "tours", "export_pdf", middleware.GetUserEmail(c))
	data, filename, err := h.pdf.ToursReport(all)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, data, filename)
}

func (h *TourHandler) exportExcel(c *gin.Context) {
	all, err := h.tours.All(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "tours", "export_excel", middleware.GetUserEmail(c))
	data, filename, err := h.excel.ToursWorkbook(all)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendExcel(c, data, filename)
}
