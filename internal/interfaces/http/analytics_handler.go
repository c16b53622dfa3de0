package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// AnalyticsService lo que el handler necesita de *analytics.AnalyticsUseCase.
type AnalyticsService interface {
	GetDashboard(ctx context.Context, viewer analytics.Viewer, req dto.DashboardRequest) (*dto.DashboardDTO, error)
	GetDailyReport(ctx context.Context, viewer analytics.Viewer, req dto.DailyReportRequest) (*dto.DailyReportDTO, error)
	ExportDailyReport(ctx context.Context, viewer analytics.Viewer, req dto.DailyReportRequest) (*analytics.ExportFile, error)
	ArchiveDailyReport(ctx context.Context, startDate, endDate string) (*dto.ArchiveReportResponse, error)
}

// AnalyticsHandler maneja el dashboard y el registro diario de ventas.
type AnalyticsHandler struct {
	uc AnalyticsService
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Dashboard de ventas, vendedores, inventario y tendencia
// @Description  Los usuarios no admin no ven los datos del vendedor oculto.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        period          query  string  false  "week | month | all (default week)"
// @Param        salesperson_id  query  string  false  "Filtra clientes y ranking por vendedor"
// @Param        sales_type      query  string  false  "inventory | follow-up | all (default all)"
// @Param        search          query  string  false  "Texto sobre nombre o modelo de producto"
// @Param        brand_id        query  string  false  "Filtra inventario por marca"
// @Success      200  {object}  dto.DashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := bindQuery(c, &req); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetDashboard(c.Context(), viewerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetDailyReport godoc
// @Summary      Registro diario de ventas
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date      query  string  false  "YYYY-MM-DD. Default: primer día del mes"
// @Param        end_date        query  string  false  "YYYY-MM-DD. Default: hoy"
// @Param        salesperson_id  query  string  false  "Solo ventas de seguimiento de este vendedor"
// @Param        sales_type      query  string  false  "inventory | follow-up | all"
// @Success      200  {object}  dto.DailyReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/daily-report [get]
func (h *AnalyticsHandler) GetDailyReport(c *fiber.Ctx) error {
	var req dto.DailyReportRequest
	if err := bindQuery(c, &req); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetDailyReport(c.Context(), viewerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportDailyReport godoc
// @Summary      Descarga el registro diario como xlsx o pdf
// @Tags         analytics
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        start_date      query  string  false  "YYYY-MM-DD"
// @Param        end_date        query  string  false  "YYYY-MM-DD"
// @Param        salesperson_id  query  string  false  "Vendedor"
// @Param        sales_type      query  string  false  "inventory | follow-up | all"
// @Param        format          query  string  false  "xlsx | pdf (default xlsx)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/daily-report/export [get]
func (h *AnalyticsHandler) ExportDailyReport(c *fiber.Ctx) error {
	var req dto.DailyReportRequest
	if err := bindQuery(c, &req); err != nil {
		return respondError(c, err)
	}
	file, err := h.uc.ExportDailyReport(c.Context(), viewerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Content)
}

// ArchiveDailyReport godoc
// @Summary      Genera el xlsx del rango y lo sube al almacenamiento de reportes (solo admin)
// @Tags         analytics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ArchiveReportRequest  true  "Rango de fechas"
// @Success      201   {object}  dto.ArchiveReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/analytics/daily-report/archive [post]
func (h *AnalyticsHandler) ArchiveDailyReport(c *fiber.Ctx) error {
	var in dto.ArchiveReportRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ArchiveDailyReport(c.Context(), in.StartDate, in.EndDate)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
