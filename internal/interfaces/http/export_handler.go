package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/application/export"
)

// ExportHandler maneja las descargas CSV y los trabajos de exportación PDF/Excel.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// CSV godoc
// @Summary      Descargar una colección en CSV
// @Tags         exports
// @Security     BearerAuth
// @Produce      text/csv
// @Param        dataset     path   string  true   "customers, orders, invoices o delivery-notes"
// @Param        subsidiary  query  string  false  "all o id (solo Owner)"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/exports/{dataset}.csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	scope, err := requestScope(c)
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	filename, err := h.uc.WriteCSV(&buf, GetPrincipal(c), scope, c.Params("dataset"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// Start godoc
// @Summary      Iniciar exportación PDF o Excel
// @Tags         exports
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExportJobRequest  true  "dataset y formato"
// @Success      202   {object}  dto.ExportJobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/exports [post]
func (h *ExportHandler) Start(c *fiber.Ctx) error {
	var in dto.ExportJobRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Start(GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}

// Status godoc
// @Summary      Estado de un trabajo de exportación
// @Tags         exports
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "id del trabajo"
// @Success      200   {object}  dto.ExportJobResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/exports/{id} [get]
func (h *ExportHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
