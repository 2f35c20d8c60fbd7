package dto

import (
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
)

// ListQuery filtros comunes de los listados: búsqueda, estado y alcance.
// Scope es el alcance solicitado; para usuarios que no son Owner se ignora.
type ListQuery struct {
	Term   string
	Status string
	Scope  access.Scope
}

// ListResponse envoltorio de listados. Empty permite a los clientes mostrar "sin resultados".
type ListResponse[T any] struct {
	Items []T    `json:"items"`
	Total int    `json:"total"`
	Empty bool   `json:"empty"`
	Scope string `json:"scope"`
}

// NewListResponse construye la respuesta garantizando items no nulo.
func NewListResponse[T any](items []T, scope access.Scope) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items), Empty: len(items) == 0, Scope: scope.String()}
}

// UpdateStatusRequest body para PATCH .../:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}
