package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zakayo-api/internal/application/workspace"
)

// DashboardHandler maneja el resumen del tablero y la búsqueda global.
type DashboardHandler struct {
	uc *workspace.WorkspaceUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *workspace.WorkspaceUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Resumen por colección
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        subsidiary  query  string  false  "all o id (solo Owner)"
// @Success      200   {object}  dto.OverviewResponse
// @Router       /api/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	scope, err := requestScope(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Overview(GetPrincipal(c), scope)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Búsqueda global en clientes, pedidos, facturas y notas de entrega
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        q           query  string  true   "término"
// @Param        subsidiary  query  string  false  "all o id (solo Owner)"
// @Success      200   {object}  dto.SearchResponse
// @Router       /api/search [get]
func (h *DashboardHandler) Search(c *fiber.Ctx) error {
	scope, err := requestScope(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Search(GetPrincipal(c), scope, c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
