// Package access resuelve qué registros de negocio puede ver un usuario.
//
// La visibilidad depende de tres entradas: el rol, la subsidiaria de origen del usuario y
// el alcance solicitado (una subsidiaria concreta o "all"). Solo el Owner puede elegir el
// alcance; para Manager y Staff siempre se fuerza su propia subsidiaria. Todo aquí es puro:
// no hay estado, se recalcula en cada consulta.
package access

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/zakayo-api/internal/domain/entity"
)

// AllToken es el valor textual del alcance "todas las subsidiarias".
const AllToken = "all"

// Scope es el alcance solicitado. El valor cero significa "all".
type Scope struct {
	subsidiaryID int
}

// All devuelve el alcance sin filtro.
func All() Scope { return Scope{} }

// Of devuelve el alcance de una subsidiaria concreta. id <= 0 equivale a All.
func Of(id int) Scope {
	if id <= 0 {
		return Scope{}
	}
	return Scope{subsidiaryID: id}
}

// IsAll informa si el alcance no filtra por subsidiaria.
func (s Scope) IsAll() bool { return s.subsidiaryID == 0 }

// SubsidiaryID devuelve la subsidiaria solicitada, o (0, false) si es "all".
func (s Scope) SubsidiaryID() (int, bool) {
	return s.subsidiaryID, s.subsidiaryID != 0
}

func (s Scope) String() string {
	if s.IsAll() {
		return AllToken
	}
	return strconv.Itoa(s.subsidiaryID)
}

// ParseScope interpreta "" y "all" como All y un entero positivo como esa subsidiaria.
func ParseScope(raw string) (Scope, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, AllToken) {
		return All(), nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return Scope{}, fmt.Errorf("access: alcance inválido %q", raw)
	}
	return Of(id), nil
}

type viewKind uint8

const (
	viewNone viewKind = iota // no coincide con nada
	viewAll
	viewSubsidiary
)

// View es el alcance efectivo ya resuelto; su método Allows es el predicado de visibilidad.
// El valor cero no coincide con ningún registro.
type View struct {
	kind         viewKind
	subsidiaryID int
}

// Resolve calcula la vista efectiva.
//
//  1. role != Owner: solo la subsidiaria del usuario, sin importar requested.
//     Sin subsidiaria válida la vista queda vacía (estado válido, no error).
//  2. Owner con requested "all": todo.
//  3. Owner con requested s: solo s.
func Resolve(role entity.Role, userSubsidiaryID *int, requested Scope) View {
	if role != entity.RoleOwner {
		if userSubsidiaryID == nil || *userSubsidiaryID <= 0 {
			return View{kind: viewNone}
		}
		return View{kind: viewSubsidiary, subsidiaryID: *userSubsidiaryID}
	}
	if id, ok := requested.SubsidiaryID(); ok {
		return View{kind: viewSubsidiary, subsidiaryID: id}
	}
	return View{kind: viewAll}
}

// ForUser resuelve la vista para un usuario de sesión. Sin usuario no se ve nada.
func ForUser(u *entity.User, requested Scope) View {
	if u == nil {
		return View{kind: viewNone}
	}
	return Resolve(u.Role, u.SubsidiaryID, requested)
}

// Allows es el predicado visible(record) aplicado al subsidiaryId del registro.
func (v View) Allows(subsidiaryID int) bool {
	switch v.kind {
	case viewAll:
		return true
	case viewSubsidiary:
		return subsidiaryID == v.subsidiaryID
	default:
		return false
	}
}

// Visible aplica el predicado a un registro de negocio.
func (v View) Visible(r entity.BusinessRecord) bool {
	return v.Allows(r.OwningSubsidiary())
}

// IsAll informa si la vista no filtra.
func (v View) IsAll() bool { return v.kind == viewAll }

// IsEmpty informa si la vista no puede coincidir con ningún registro.
func (v View) IsEmpty() bool { return v.kind == viewNone }

// SubsidiaryID devuelve la subsidiaria de la vista cuando filtra por una sola.
func (v View) SubsidiaryID() (int, bool) {
	return v.subsidiaryID, v.kind == viewSubsidiary
}

// Scope devuelve el alcance equivalente a la vista (para mostrarlo o persistirlo).
func (v View) Scope() Scope {
	if v.kind == viewSubsidiary {
		return Of(v.subsidiaryID)
	}
	return All()
}

// CanAccess decide si el usuario puede leer en detalle o modificar registros de la subsidiaria.
// Es independiente del alcance elegido: un Owner puede operar en cualquier subsidiaria.
func CanAccess(u *entity.User, subsidiaryID int) bool {
	if u == nil {
		return false
	}
	if u.Role == entity.RoleOwner {
		return true
	}
	return u.SubsidiaryID != nil && *u.SubsidiaryID == subsidiaryID
}
