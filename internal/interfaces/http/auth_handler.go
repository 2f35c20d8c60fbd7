package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zakayo-api/internal/application/auth"
	"github.com/jhoicas/zakayo-api/internal/application/dto"
)

// AuthHandler maneja login, logout y la sesión del usuario.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email and password are required"})
	}
	out, ok, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetSession(c).ID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Usuario de la sesión y alcance efectivo
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200   {object}  dto.MeResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(h.me(GetSession(c)))
}

// SetScope godoc
// @Summary      Cambiar de subsidiaria (solo Owner)
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetScopeRequest  true  "all o id de subsidiaria"
// @Success      200   {object}  dto.MeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scope [put]
func (h *AuthHandler) SetScope(c *fiber.Ctx) error {
	var in dto.SetScopeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	sess, err := h.uc.SetScope(c.UserContext(), GetSession(c).ID, in.Subsidiary)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.me(sess))
}

func (h *AuthHandler) me(sess *auth.Session) dto.MeResponse {
	return dto.MeResponse{
		User:       dto.UserFromEntity(&sess.User),
		Scope:      sess.View().Scope().String(),
		ScopeLabel: h.uc.ScopeLabel(sess),
		CanPivot:   sess.User.IsOwner(),
	}
}
