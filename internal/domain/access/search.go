package access

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/zakayo-api/internal/domain/entity"
)

// MatchesSearch informa si alguno de los campos contiene term sin distinguir mayúsculas.
// Un término vacío coincide con todo.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	// cases.Caser no es seguro para uso concurrente; se crea uno por llamada.
	fold := cases.Fold()
	needle := fold.String(term)
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}

// Filter compone el predicado de acceso, la búsqueda de texto y filtros adicionales
// (ej. estado). Todos son filtros puros: el orden de aplicación no cambia el resultado.
// Siempre devuelve un slice no nil.
func Filter[T entity.BusinessRecord](records []T, view View, term string, extra ...func(T) bool) []T {
	out := make([]T, 0, len(records))
	if view.IsEmpty() {
		return out
	}
next:
	for _, r := range records {
		if !view.Visible(r) {
			continue
		}
		if !MatchesSearch(term, r.SearchFields()...) {
			continue
		}
		for _, keep := range extra {
			if keep != nil && !keep(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// StatusIs construye un filtro por estado; "" y "all" no filtran.
func StatusIs[T any](status string, get func(T) string) func(T) bool {
	if status == "" || strings.EqualFold(status, AllToken) {
		return nil
	}
	return func(r T) bool { return get(r) == status }
}
