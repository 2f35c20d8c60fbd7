// Package policy reúne las comprobaciones compartidas por los casos de uso:
// acceso a subsidiarias, fechas de formulario y numeración de documentos.
package policy

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/domain/repository"
)

// DateLayout formato de fecha de los formularios y respuestas.
const DateLayout = time.DateOnly

// Readable devuelve ErrForbidden si el usuario no puede ver el registro en detalle.
func Readable(principal *entity.User, r entity.BusinessRecord) error {
	if !access.CanAccess(principal, r.OwningSubsidiary()) {
		return domain.ErrForbidden
	}
	return nil
}

// Writable verifica que la subsidiaria exista y que el usuario pueda operar en ella.
// Una subsidiaria inexistente es un error de validación del campo subsidiary_id.
func Writable(subs repository.SubsidiaryRepository, principal *entity.User, subsidiaryID int) error {
	sub, err := subs.GetByID(subsidiaryID)
	if err != nil {
		return fmt.Errorf("buscar subsidiaria: %w", err)
	}
	if sub == nil {
		return domain.NewValidationError("subsidiary_id", "unknown subsidiary")
	}
	if !access.CanAccess(principal, subsidiaryID) {
		return domain.ErrForbidden
	}
	return nil
}

// ParseDate interpreta YYYY-MM-DD; el error se asocia a field.
func ParseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// OneOf valida que value pertenezca a allowed.
func OneOf(field, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return domain.NewValidationError(field, "must be one of: "+strings.Join(allowed, ", "))
	}
	return nil
}

// DocumentNumber arma números como INV-2024-004: prefijo, año y secuencia de tres dígitos.
func DocumentNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

// FormatDate formatea una fecha opcional; nil produce "".
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
