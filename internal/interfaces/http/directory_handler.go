package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/application/usecase"
)

// DirectoryHandler expone subsidiarias y usuarios.
type DirectoryHandler struct {
	subs  *usecase.SubsidiaryUseCase
	users *usecase.UserUseCase
}

// NewDirectoryHandler construye el handler.
func NewDirectoryHandler(subs *usecase.SubsidiaryUseCase, users *usecase.UserUseCase) *DirectoryHandler {
	return &DirectoryHandler{subs: subs, users: users}
}

// ListSubsidiaries godoc
// @Summary      Listar subsidiarias
// @Tags         directory
// @Security     BearerAuth
// @Produce      json
// @Success      200   {array}   dto.SubsidiaryResponse
// @Router       /api/subsidiaries [get]
func (h *DirectoryHandler) ListSubsidiaries(c *fiber.Ctx) error {
	list, err := h.subs.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListUsers godoc
// @Summary      Listar usuarios (solo Owner)
// @Tags         directory
// @Security     BearerAuth
// @Produce      json
// @Param        q     query  string  false  "búsqueda por nombre o email"
// @Param        role  query  string  false  "Owner, Manager o Staff"
// @Success      200   {array}   dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *DirectoryHandler) ListUsers(c *fiber.Ctx) error {
	list, err := h.users.List(GetPrincipal(c), dto.UserListQuery{Term: c.Query("q"), Role: c.Query("role")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
