package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rustock/internal/application/report"
)

// ReportHandler reportes de inventario, ventas y compras.
type ReportHandler struct {
	svc *report.Service
}

// NewReportHandler construye el handler.
func NewReportHandler(svc *report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Summary godoc
// @Summary      Resumen de inventario, ventas y compras
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  report.Summary
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.svc.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Resumen en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/summary/pdf [get]
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	doc, err := h.svc.SummaryPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="rustock-%s.pdf"`, time.Now().Format("20060102")))
	return c.Send(doc)
}

// Replenishment godoc
// @Summary      Reposición sugerida para productos con stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  report.RestockSuggestion
// @Router       /api/reports/replenishment [get]
func (h *ReportHandler) Replenishment(c *fiber.Ctx) error {
	out, err := h.svc.Replenishment(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
