package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zakayo-api/internal/application/auth"
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	apphttp "github.com/jhoicas/zakayo-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeAuthenticator acepta tokens con el nombre de un rol y rechaza el resto.
type fakeAuthenticator struct{}

func (fakeAuthenticator) Authenticate(_ context.Context, token string) (*auth.Session, error) {
	switch entity.Role(token) {
	case entity.RoleOwner, entity.RoleManager, entity.RoleStaff:
		sub := 1
		return &auth.Session{ID: "sid", User: entity.User{ID: 7, Role: entity.Role(token), SubsidiaryID: &sub}}, nil
	}
	return nil, domain.ErrUnauthorized
}

// buildMiddlewareApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para restaurar la sesión
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildMiddlewareApp(allowed ...entity.Role) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(fakeAuthenticator{}),
		apphttp.RequireRole(allowed...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":      true,
				"role":    apphttp.GetRole(c),
				"session": apphttp.GetSession(c).ID,
			})
		},
	)
	return app
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinCabecera_Retorna401(t *testing.T) {
	resp := doProtected(t, buildMiddlewareApp(entity.RoleOwner), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	for _, h := range []string{"Owner", "Basic Owner", "Bearer   "} {
		resp := doProtected(t, buildMiddlewareApp(entity.RoleOwner), h)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, h)
	}
}

func TestAuthMiddleware_SesionInexistente_Retorna401(t *testing.T) {
	resp := doProtected(t, buildMiddlewareApp(entity.RoleOwner), "Bearer caducado")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_OwnerAccedeRutaOwner(t *testing.T) {
	resp := doProtected(t, buildMiddlewareApp(entity.RoleOwner), "Bearer Owner")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Owner", body["role"])
	assert.Equal(t, "sid", body["session"])
}

func TestRequireRole_MultiRol(t *testing.T) {
	resp := doProtected(t, buildMiddlewareApp(entity.RoleOwner, entity.RoleManager), "bearer Manager")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_StaffBloqueadoEnRutaOwner(t *testing.T) {
	resp := doProtected(t, buildMiddlewareApp(entity.RoleOwner), "Bearer Staff")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_SinAuthMiddleware_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/x", apphttp.RequireRole(entity.RoleOwner), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
