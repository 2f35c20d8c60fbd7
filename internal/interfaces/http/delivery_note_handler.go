package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zakayo-api/internal/application/billing"
	"github.com/jhoicas/zakayo-api/internal/application/dto"
)

// DeliveryNoteHandler maneja las peticiones HTTP de notas de entrega (protegido).
type DeliveryNoteHandler struct {
	uc   *billing.DeliveryNoteUseCase
	docs *billing.DocumentUseCase
}

// NewDeliveryNoteHandler construye el handler.
func NewDeliveryNoteHandler(uc *billing.DeliveryNoteUseCase, docs *billing.DocumentUseCase) *DeliveryNoteHandler {
	return &DeliveryNoteHandler{uc: uc, docs: docs}
}

// List godoc
// @Summary      Listar notas de entrega visibles
// @Tags         delivery-notes
// @Security     BearerAuth
// @Produce      json
// @Param        q           query  string  false  "búsqueda por número, cliente o pedido"
// @Param        status      query  string  false  "Pending, In Transit, Delivered, Failed o all"
// @Param        subsidiary  query  string  false  "all o id (solo Owner)"
// @Success      200   {object}  dto.ListResponse[dto.DeliveryNoteResponse]
// @Router       /api/delivery-notes [get]
func (h *DeliveryNoteHandler) List(c *fiber.Ctx) error {
	q, err := listQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.List(GetPrincipal(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(list, effectiveScope(c, q.Scope)))
}

// Create godoc
// @Summary      Crear nota de entrega
// @Tags         delivery-notes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryNoteRequest  true  "nota de entrega"
// @Success      201   {object}  dto.DeliveryNoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/delivery-notes [post]
func (h *DeliveryNoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Detalle de nota de entrega
// @Tags         delivery-notes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  int  true  "id"
// @Success      200   {object}  dto.DeliveryNoteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/delivery-notes/{id} [get]
func (h *DeliveryNoteHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(GetPrincipal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la nota de entrega
// @Tags         delivery-notes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "id"
// @Param        body  body  dto.UpdateStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.DeliveryNoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/delivery-notes/{id}/status [patch]
func (h *DeliveryNoteHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(GetPrincipal(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar nota de entrega en PDF
// @Tags         delivery-notes
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id   path  int  true  "id"
// @Success      200   {file}    binary
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/delivery-notes/{id}/pdf [get]
func (h *DeliveryNoteHandler) PDF(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.docs.ExportDeliveryNote(c.UserContext(), GetPrincipal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, res)
}

// Share godoc
// @Summary      Enlace de WhatsApp para avisar la entrega
// @Tags         delivery-notes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  int  true  "id"
// @Success      200   {object}  dto.ShareResponse
// @Router       /api/delivery-notes/{id}/share [get]
func (h *DeliveryNoteHandler) Share(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.docs.ShareDeliveryNote(GetPrincipal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
