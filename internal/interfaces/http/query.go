package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
)

// requestScope lee ?subsidiary=all|<id>; sin parámetro aplica el alcance guardado en la sesión.
func requestScope(c *fiber.Ctx) (access.Scope, error) {
	raw := strings.TrimSpace(c.Query("subsidiary"))
	if raw == "" {
		if sess := GetSession(c); sess != nil {
			return sess.Scope, nil
		}
		return access.All(), nil
	}
	scope, err := access.ParseScope(raw)
	if err != nil {
		return access.Scope{}, domain.NewValidationError("subsidiary", `must be "all" or a subsidiary id`)
	}
	return scope, nil
}

// listQuery arma los filtros comunes: q, status y subsidiary.
func listQuery(c *fiber.Ctx) (dto.ListQuery, error) {
	scope, err := requestScope(c)
	if err != nil {
		return dto.ListQuery{}, err
	}
	return dto.ListQuery{Term: c.Query("q"), Status: c.Query("status"), Scope: scope}, nil
}

// idParam interpreta :id como entero positivo.
func idParam(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
