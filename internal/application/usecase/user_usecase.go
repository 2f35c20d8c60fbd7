package usecase

import (
	"fmt"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios; reservada al Owner.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List filtra por nombre/email y rol. Un usuario que no es Owner recibe ErrForbidden.
func (uc *UserUseCase) List(principal *entity.User, q dto.UserListQuery) ([]dto.UserResponse, error) {
	if !principal.IsOwner() {
		return nil, domain.ErrForbidden
	}
	if q.Role != "" && q.Role != access.AllToken && !entity.Role(q.Role).Valid() {
		return nil, domain.NewValidationError("role", "must be one of: Owner, Manager, Staff")
	}
	users, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		if !access.MatchesSearch(q.Term, u.SearchFields()...) {
			continue
		}
		if q.Role != "" && q.Role != access.AllToken && string(u.Role) != q.Role {
			continue
		}
		out = append(out, dto.UserFromEntity(u))
	}
	return out, nil
}

// SubsidiaryUseCase lectura del catálogo de subsidiarias.
type SubsidiaryUseCase struct {
	repo repository.SubsidiaryRepository
}

// NewSubsidiaryUseCase construye el caso de uso.
func NewSubsidiaryUseCase(repo repository.SubsidiaryRepository) *SubsidiaryUseCase {
	return &SubsidiaryUseCase{repo: repo}
}

// List devuelve todas las subsidiarias (catálogo público para usuarios autenticados).
func (uc *SubsidiaryUseCase) List() ([]dto.SubsidiaryResponse, error) {
	subs, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar subsidiarias: %w", err)
	}
	out := make([]dto.SubsidiaryResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, dto.SubsidiaryFromEntity(s))
	}
	return out, nil
}

// Get devuelve una subsidiaria o ErrNotFound.
func (uc *SubsidiaryUseCase) Get(id int) (*dto.SubsidiaryResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener subsidiaria: %w", err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.SubsidiaryFromEntity(*s)
	return &out, nil
}
