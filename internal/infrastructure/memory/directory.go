package memory

import (
	"strings"

	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/domain/repository"
)

var (
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.SubsidiaryRepository = (*SubsidiaryRepo)(nil)
)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	t *table[entity.User]
}

// NewUserRepository construye el repositorio con los usuarios dados.
func NewUserRepository(users []entity.User) *UserRepo {
	r := &UserRepo{t: newTable(
		func(u *entity.User) int { return u.ID },
		func(u *entity.User, id int) { u.ID = id },
		cloneUser,
	)}
	for i := range users {
		r.t.insert(&users[i])
	}
	return r
}

func (r *UserRepo) GetByID(id int) (*entity.User, error) { return r.t.get(id) }

func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	for _, u := range r.t.list() {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List() ([]entity.User, error) { return r.t.list(), nil }

func cloneUser(u entity.User) entity.User {
	if u.SubsidiaryID != nil {
		id := *u.SubsidiaryID
		u.SubsidiaryID = &id
	}
	return u
}

// SubsidiaryRepo implementación en memoria de SubsidiaryRepository.
type SubsidiaryRepo struct {
	t *table[entity.Subsidiary]
}

// NewSubsidiaryRepository construye el repositorio con las subsidiarias dadas.
func NewSubsidiaryRepository(subs []entity.Subsidiary) *SubsidiaryRepo {
	r := &SubsidiaryRepo{t: newTable(
		func(s *entity.Subsidiary) int { return s.ID },
		func(s *entity.Subsidiary, id int) { s.ID = id },
		func(s entity.Subsidiary) entity.Subsidiary {
			s.Products = append([]string(nil), s.Products...)
			return s
		},
	)}
	for i := range subs {
		r.t.insert(&subs[i])
	}
	return r
}

func (r *SubsidiaryRepo) GetByID(id int) (*entity.Subsidiary, error) { return r.t.get(id) }

func (r *SubsidiaryRepo) List() ([]entity.Subsidiary, error) { return r.t.list(), nil }
