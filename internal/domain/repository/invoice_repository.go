package repository

import "github.com/jhoicas/zakayo-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice (con sus líneas).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id int) (*entity.Invoice, error)
	List() ([]entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	// CreateNumbered guarda la factura numerándola con number(tamaño de la colección + 1)
	// de forma atómica respecto a otras altas.
	CreateNumbered(invoice *entity.Invoice, number func(seq int) string) error
	Count() (int, error)
}

// DeliveryNoteRepository define el puerto de persistencia para DeliveryNote.
type DeliveryNoteRepository interface {
	Create(note *entity.DeliveryNote) error
	GetByID(id int) (*entity.DeliveryNote, error)
	List() ([]entity.DeliveryNote, error)
	Update(note *entity.DeliveryNote) error
	CreateNumbered(note *entity.DeliveryNote, number func(seq int) string) error
	Count() (int, error)
}
