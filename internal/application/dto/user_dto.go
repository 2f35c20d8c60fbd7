package dto

import "github.com/jhoicas/zakayo-api/internal/domain/entity"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token + usuario tras login exitoso.
type LoginResponse struct {
	Token     string       `json:"token"`
	SessionID string       `json:"session_id"`
	User      UserResponse `json:"user"`
	Scope     string       `json:"scope"`
}

// UserResponse usuario en respuestas (sin hash de contraseña).
type UserResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	SubsidiaryID *int   `json:"subsidiary_id,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
}

// MeResponse usuario de la sesión y su alcance efectivo.
type MeResponse struct {
	User       UserResponse `json:"user"`
	Scope      string       `json:"scope"`
	ScopeLabel string       `json:"scope_label"`
	CanPivot   bool         `json:"can_pivot"` // solo el Owner puede cambiar de subsidiaria
}

// SetScopeRequest body para PUT /api/scope: "all" o el id de una subsidiaria.
type SetScopeRequest struct {
	Subsidiary string `json:"subsidiary"`
}

// UserListQuery filtros de la gestión de usuarios.
type UserListQuery struct {
	Term string
	Role string
}

// SubsidiaryResponse subsidiaria en respuestas.
type SubsidiaryResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Products    []string `json:"products"`
}

// UserFromEntity mapea un usuario de dominio a su respuesta.
func UserFromEntity(u *entity.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	out := UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), Avatar: u.Avatar}
	if u.SubsidiaryID != nil {
		id := *u.SubsidiaryID
		out.SubsidiaryID = &id
	}
	return out
}

// SubsidiaryFromEntity mapea una subsidiaria a su respuesta.
func SubsidiaryFromEntity(s entity.Subsidiary) SubsidiaryResponse {
	products := append([]string{}, s.Products...)
	return SubsidiaryResponse{ID: s.ID, Name: s.Name, Description: s.Description, Color: s.Color, Products: products}
}
