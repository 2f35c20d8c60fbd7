package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// writeError
// ──────────────────────────────────────────────────────────────────────────────

func TestWriteError_InternoNoExponeDetalle(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestLogger(logger.New(logger.Config{Env: "production", Out: &buf})))
	app.Get("/boom", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("obtener factura: %w", errors.New("tabla bloqueada")))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "INTERNAL", out.Code)
	assert.Equal(t, "internal server error", out.Message)
	assert.NotContains(t, string(body), "obtener factura")

	assert.Contains(t, buf.String(), "obtener factura: tabla bloqueada")
}

func TestWriteError_ErroresDeDominio(t *testing.T) {
	app := fiber.New()
	app.Get("/:kind", func(c *fiber.Ctx) error {
		switch c.Params("kind") {
		case "validation":
			return writeError(c, domain.NewValidationError("due_date", "must not be before the issue date"))
		case "forbidden":
			return writeError(c, fmt.Errorf("factura 3: %w", domain.ErrForbidden))
		default:
			return writeError(c, domain.ErrNotFound)
		}
	})

	for kind, status := range map[string]int{
		"validation": fiber.StatusBadRequest,
		"forbidden":  fiber.StatusForbidden,
		"missing":    fiber.StatusNotFound,
	} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/"+kind, nil))
		require.NoError(t, err, kind)
		assert.Equal(t, status, resp.StatusCode, kind)
		_ = resp.Body.Close()
	}
}
