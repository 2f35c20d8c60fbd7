package auth

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
)

// Session sesión activa: el usuario autenticado y el alcance elegido.
// Se pasa explícitamente a los casos de uso; no existe un "usuario actual" global.
type Session struct {
	ID    string
	User  entity.User
	Scope access.Scope // alcance guardado; solo tiene efecto para el Owner
}

// View resuelve el alcance efectivo de la sesión.
func (s *Session) View() access.View {
	if s == nil {
		return access.ForUser(nil, access.All())
	}
	return access.ForUser(&s.User, s.Scope)
}

// sessionPayload es el registro serializado en el almacén. No incluye el hash de contraseña.
type sessionPayload struct {
	User struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		Role         string `json:"role"`
		SubsidiaryID *int   `json:"subsidiaryId,omitempty"`
		Avatar       string `json:"avatar,omitempty"`
	} `json:"user"`
	Scope string `json:"scope"`
}

func encodeSession(s *Session) ([]byte, error) {
	var p sessionPayload
	p.User.ID = s.User.ID
	p.User.Name = s.User.Name
	p.User.Email = s.User.Email
	p.User.Role = string(s.User.Role)
	p.User.SubsidiaryID = s.User.SubsidiaryID
	p.User.Avatar = s.User.Avatar
	p.Scope = s.Scope.String()
	return json.Marshal(p)
}

func decodeSession(id string, raw []byte) (*Session, error) {
	var p sessionPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("auth: decodificar sesión: %w", err)
	}
	scope, err := access.ParseScope(p.Scope)
	if err != nil {
		scope = access.All()
	}
	return &Session{
		ID: id,
		User: entity.User{
			ID:           p.User.ID,
			Name:         p.User.Name,
			Email:        p.User.Email,
			Role:         entity.Role(p.User.Role),
			SubsidiaryID: p.User.SubsidiaryID,
			Avatar:       p.User.Avatar,
		},
		Scope: scope,
	}, nil
}
