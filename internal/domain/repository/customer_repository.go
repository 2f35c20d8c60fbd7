package repository

import "github.com/jhoicas/zakayo-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create asigna ID al cliente.
	Create(customer *entity.Customer) error
	GetByID(id int) (*entity.Customer, error)
	List() ([]entity.Customer, error)
	Update(customer *entity.Customer) error
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id int) (*entity.Order, error)
	List() ([]entity.Order, error)
	Update(order *entity.Order) error
	CreateNumbered(order *entity.Order, number func(seq int) string) error
	Count() (int, error)
}
