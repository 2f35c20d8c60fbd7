package repository

import "github.com/jhoicas/zakayo-api/internal/domain/entity"

// UserRepository define el puerto de lectura de usuarios (DIP). Los usuarios se siembran
// al arrancar y no se modifican.
type UserRepository interface {
	GetByID(id int) (*entity.User, error)
	// GetByEmail compara el correo sin distinguir mayúsculas.
	GetByEmail(email string) (*entity.User, error)
	List() ([]entity.User, error)
}

// SubsidiaryRepository define el puerto de lectura de subsidiarias.
type SubsidiaryRepository interface {
	GetByID(id int) (*entity.Subsidiary, error)
	List() ([]entity.Subsidiary, error)
}
