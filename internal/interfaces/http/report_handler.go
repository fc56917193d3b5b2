package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/report"
)

// ReportHandler maneja los snapshots de solo lectura y las exportaciones.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory godoc
// @Summary      Inventario actual
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockItemDTO
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	items, err := h.uc.Inventory(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// LowStock godoc
// @Summary      Ítems en o por debajo del umbral mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockItemDTO
// @Router       /api/reports/inventory/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// Movements godoc
// @Summary      Historial de movimientos (paginado, más reciente primero)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 50)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.MovementPageDTO
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.Movements(c.Context(), page)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Daily godoc
// @Summary      Agregados diarios por dirección (entrada vs salida)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DailyAggregateDTO
// @Router       /api/reports/movements/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	out, err := h.uc.Daily(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "daily": out})
}

// Dashboard godoc
// @Summary      Resumen ejecutivo del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar historial completo como CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/movements/export [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.uc.ExportHistoryCSV(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	filename := fmt.Sprintf("historial_%s.csv", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar historial completo como PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string
// @Router       /api/reports/movements/export.pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ExportHistoryPDF(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	filename := fmt.Sprintf("historial_%s.pdf", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportXLSX godoc
// @Summary      Exportar inventario actual como XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {string}  string
// @Router       /api/reports/inventory/export.xlsx [get]
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	data, err := h.uc.ExportInventoryXLSX(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	filename := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
