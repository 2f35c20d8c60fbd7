package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/application/usecase"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes visibles
// @Tags         customers
// @Security     BearerAuth
// @Produce      json
// @Param        q           query  string  false  "búsqueda"
// @Param        status      query  string  false  "Active, Inactive o all"
// @Param        subsidiary  query  string  false  "all o id (solo Owner)"
// @Success      200   {object}  dto.ListResponse[dto.CustomerResponse]
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
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
// @Summary      Crear cliente
// @Tags         customers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
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
// @Summary      Detalle de cliente
// @Tags         customers
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  int  true  "id"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "id"
// @Param        body  body  dto.UpdateCustomerRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(GetPrincipal(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// effectiveScope alcance realmente aplicado (para Manager/Staff siempre su subsidiaria).
func effectiveScope(c *fiber.Ctx, requested access.Scope) access.Scope {
	return access.ForUser(GetPrincipal(c), requested).Scope()
}
