package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-restaurante/internal/application/report"
)

// ReportHandler expone el reporte de faltantes en texto (para WhatsApp) y en PDF.
type ReportHandler struct {
	uc  *report.ReportUseCase
	log zerolog.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// LowStockText godoc
// @Summary      Reporte de faltantes (texto)
// @Tags         reports
// @Security     Bearer
// @Produce      plain
// @Success      200  {string}  string
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStockText(c *fiber.Ctx) error {
	text, err := h.uc.LowStockText(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

// LowStockPDF godoc
// @Summary      Reporte de faltantes (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock.pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	doc, filename, err := h.uc.LowStockPDF(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
