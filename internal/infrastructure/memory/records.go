package memory

import (
	"fmt"
	"time"

	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/domain/repository"
)

var (
	_ repository.CustomerRepository     = (*CustomerRepo)(nil)
	_ repository.OrderRepository        = (*OrderRepo)(nil)
	_ repository.InvoiceRepository      = (*InvoiceRepo)(nil)
	_ repository.DeliveryNoteRepository = (*DeliveryNoteRepo)(nil)
)

// ── Customers ──

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	t *table[entity.Customer]
}

func NewCustomerRepository(seed []entity.Customer) *CustomerRepo {
	r := &CustomerRepo{t: newTable(
		func(c *entity.Customer) int { return c.ID },
		func(c *entity.Customer, id int) { c.ID = id },
		nil,
	)}
	for i := range seed {
		r.t.insert(&seed[i])
	}
	return r
}

func (r *CustomerRepo) Create(c *entity.Customer) error {
	c.ID = 0
	r.t.insert(c)
	return nil
}

func (r *CustomerRepo) GetByID(id int) (*entity.Customer, error) { return r.t.get(id) }

func (r *CustomerRepo) List() ([]entity.Customer, error) { return r.t.list(), nil }

func (r *CustomerRepo) Update(c *entity.Customer) error {
	if !r.t.replace(c) {
		return fmt.Errorf("update customer %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// ── Orders ──

// OrderRepo implementación en memoria de OrderRepository.
type OrderRepo struct {
	t *table[entity.Order]
}

func NewOrderRepository(seed []entity.Order) *OrderRepo {
	r := &OrderRepo{t: newTable(
		func(o *entity.Order) int { return o.ID },
		func(o *entity.Order, id int) { o.ID = id },
		func(o entity.Order) entity.Order {
			o.DeliveryDate = cloneTime(o.DeliveryDate)
			return o
		},
	)}
	for i := range seed {
		r.t.insert(&seed[i])
	}
	return r
}

func (r *OrderRepo) Create(o *entity.Order) error {
	o.ID = 0
	r.t.insert(o)
	return nil
}

// CreateNumbered asigna ID y número de documento en una sola operación.
func (r *OrderRepo) CreateNumbered(o *entity.Order, number func(seq int) string) error {
	o.ID = 0
	r.t.insertNumbered(o, func(v *entity.Order, seq int) { v.OrderNumber = number(seq) })
	return nil
}

func (r *OrderRepo) GetByID(id int) (*entity.Order, error) { return r.t.get(id) }

func (r *OrderRepo) List() ([]entity.Order, error) { return r.t.list(), nil }

func (r *OrderRepo) Update(o *entity.Order) error {
	if !r.t.replace(o) {
		return fmt.Errorf("update order %d: %w", o.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *OrderRepo) Count() (int, error) { return r.t.count(), nil }

// ── Invoices ──

// InvoiceRepo implementación en memoria de InvoiceRepository.
type InvoiceRepo struct {
	t *table[entity.Invoice]
}

func NewInvoiceRepository(seed []entity.Invoice) *InvoiceRepo {
	r := &InvoiceRepo{t: newTable(
		func(i *entity.Invoice) int { return i.ID },
		func(i *entity.Invoice, id int) { i.ID = id },
		func(i entity.Invoice) entity.Invoice {
			i.Items = append([]entity.InvoiceItem(nil), i.Items...)
			return i
		},
	)}
	for i := range seed {
		r.t.insert(&seed[i])
	}
	return r
}

func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	inv.ID = 0
	r.t.insert(inv)
	return nil
}

// CreateNumbered asigna ID y número de documento en una sola operación.
func (r *InvoiceRepo) CreateNumbered(inv *entity.Invoice, number func(seq int) string) error {
	inv.ID = 0
	r.t.insertNumbered(inv, func(v *entity.Invoice, seq int) { v.InvoiceNumber = number(seq) })
	return nil
}

func (r *InvoiceRepo) GetByID(id int) (*entity.Invoice, error) { return r.t.get(id) }

func (r *InvoiceRepo) List() ([]entity.Invoice, error) { return r.t.list(), nil }

func (r *InvoiceRepo) Update(inv *entity.Invoice) error {
	if !r.t.replace(inv) {
		return fmt.Errorf("update invoice %d: %w", inv.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *InvoiceRepo) Count() (int, error) { return r.t.count(), nil }

// ── Delivery notes ──

// DeliveryNoteRepo implementación en memoria de DeliveryNoteRepository.
type DeliveryNoteRepo struct {
	t *table[entity.DeliveryNote]
}

func NewDeliveryNoteRepository(seed []entity.DeliveryNote) *DeliveryNoteRepo {
	r := &DeliveryNoteRepo{t: newTable(
		func(d *entity.DeliveryNote) int { return d.ID },
		func(d *entity.DeliveryNote, id int) { d.ID = id },
		func(d entity.DeliveryNote) entity.DeliveryNote {
			d.Items = append([]entity.DeliveryItem(nil), d.Items...)
			d.DeliveredDate = cloneTime(d.DeliveredDate)
			return d
		},
	)}
	for i := range seed {
		r.t.insert(&seed[i])
	}
	return r
}

func (r *DeliveryNoteRepo) Create(d *entity.DeliveryNote) error {
	d.ID = 0
	r.t.insert(d)
	return nil
}

// CreateNumbered asigna ID y número de documento en una sola operación.
func (r *DeliveryNoteRepo) CreateNumbered(d *entity.DeliveryNote, number func(seq int) string) error {
	d.ID = 0
	r.t.insertNumbered(d, func(v *entity.DeliveryNote, seq int) { v.DeliveryNumber = number(seq) })
	return nil
}

func (r *DeliveryNoteRepo) GetByID(id int) (*entity.DeliveryNote, error) { return r.t.get(id) }

func (r *DeliveryNoteRepo) List() ([]entity.DeliveryNote, error) { return r.t.list(), nil }

func (r *DeliveryNoteRepo) Update(d *entity.DeliveryNote) error {
	if !r.t.replace(d) {
		return fmt.Errorf("update delivery note %d: %w", d.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *DeliveryNoteRepo) Count() (int, error) { return r.t.count(), nil }

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
