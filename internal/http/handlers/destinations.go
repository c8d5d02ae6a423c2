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

type DestinationHandler struct {
	destinations *services.DestinationService
	pdf          services.PdfService
	excel        services.ExcelService
}

func NewDestinationHandler(destinations *services.DestinationService, pdf services.PdfService, excel services.ExcelService) *DestinationHandler {
	return &DestinationHandler{destinations: destinations, pdf: pdf, excel: excel}
}

func (h *DestinationHandler) Register(g *gin.RouterGroup) {
	g.GET("", h.list)
	g.GET("/export/pdf", h.exportPDF)
	g.GET("/export/excel", h.exportExcel)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *DestinationHandler) list(c *gin.Context) {
	pageNumber, pageSize := pagingParams(c)
	page, err := h.destinations.List(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *DestinationHandler) get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	d, err := h.destinations.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DestinationHandler) create(c *gin.Context) {
	var d models.Destination
	if !BindJSONOrError(c, &d) {
		return
	}
	d.ID = 0
	d.RowVersion = 0
	if d.CreatedBy == "" {
		d.CreatedBy = middleware.GetUserEmail(c)
	}
	if err := h.destinations.Create(c.Request.Context(), &d); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DestinationHandler) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var d models.Destination
	if !BindJSONOrError(c, &d) {
		return
	}
	if err := h.destinations.Update(c.Request.Context(), id, &d); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DestinationHandler) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.destinations.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *DestinationHandler) exportPDF(c *gin.Context) {
	all, err := h.destinations.All(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if len(all) == 0 {
		RespondDomainError(c, domain.NotFoundError{Resource: "destinations"})
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "destinations", "export_pdf", middleware.GetUserEmail(c))
	data, filename, err := h.pdf.DestinationsReport(all)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, data, filename)
}

func (h *DestinationHandler) exportExcel(c *gin.Context) {
	all, err := h.destinations.All(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "destinations", "export_excel", middleware.GetUserEmail(c))
	data, filename, err := h.excel.DestinationsWorkbook(all)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendExcel(c, data, filename)
}
