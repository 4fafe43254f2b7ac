package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stock-ledger/internal/application/analytics"
)

// ReportHandler expone el reporte de inventario y las estadísticas del dashboard.
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryReport godoc
// @Summary      Stock actual por producto y ubicación
// @Description  Solo cantidades positivas, ordenado por nombre de producto y de ubicación.
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.InventoryReportRowDTO
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) InventoryReport(c *fiber.Ctx) error {
	rows, err := h.uc.InventoryReport(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.InventoryPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventory-report.pdf"`)
	return c.Send(pdf)
}

// Stats godoc
// @Summary      Totales del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *ReportHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.DashboardStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}
