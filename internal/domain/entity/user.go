package entity

// Role rol de un usuario dentro del holding.
type Role string

// Roles válidos para User.
const (
	RoleOwner   Role = "Owner"   // visibilidad sobre todas las subsidiarias
	RoleManager Role = "Manager" // restringido a su subsidiaria
	RoleStaff   Role = "Staff"   // restringido a su subsidiaria
)

// Valid informa si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleStaff:
		return true
	}
	return false
}

// User representa un usuario del sistema. Se crea en la siembra y es inmutable durante la sesión.
type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string // bcrypt
	Role         Role
	SubsidiaryID *int   // subsidiaria de origen; nil para el Owner
	Avatar       string // iniciales mostradas en la cabecera
}

// IsOwner informa si el usuario tiene visibilidad sin restricción.
func (u *User) IsOwner() bool {
	return u != nil && u.Role == RoleOwner
}

// SearchFields campos usados por la búsqueda de gestión de usuarios.
func (u User) SearchFields() []string {
	return []string{u.Name, u.Email}
}
