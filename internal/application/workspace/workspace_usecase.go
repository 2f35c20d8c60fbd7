// Package workspace contiene los casos de uso del tablero principal: el resumen por
// colección y la búsqueda global, ambos bajo el alcance efectivo del usuario.
package workspace

import (
	"fmt"
	"strings"

	"github.com/jhoicas/zakayo-api/internal/application/auth"
	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/domain/repository"
)

// Tipos de resultado de la búsqueda global.
const (
	HitCustomer     = "Customer"
	HitOrder        = "Order"
	HitInvoice      = "Invoice"
	HitDeliveryNote = "DeliveryNote"
)

// WorkspaceUseCase lee las cuatro colecciones de negocio.
type WorkspaceUseCase struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	invoices  repository.InvoiceRepository
	notes     repository.DeliveryNoteRepository
	subs      repository.SubsidiaryRepository
}

// NewWorkspaceUseCase construye el caso de uso.
func NewWorkspaceUseCase(
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	invoices repository.InvoiceRepository,
	notes repository.DeliveryNoteRepository,
	subs repository.SubsidiaryRepository,
) *WorkspaceUseCase {
	return &WorkspaceUseCase{customers: customers, orders: orders, invoices: invoices, notes: notes, subs: subs}
}

// snapshot colecciones ya filtradas por la misma vista.
type snapshot struct {
	customers []entity.Customer
	orders    []entity.Order
	invoices  []entity.Invoice
	notes     []entity.DeliveryNote
}

// Overview cuenta los registros visibles de cada colección.
func (uc *WorkspaceUseCase) Overview(principal *entity.User, scope access.Scope) (*dto.OverviewResponse, error) {
	view := access.ForUser(principal, scope)
	snap, err := uc.load(view, "")
	if err != nil {
		return nil, err
	}
	return &dto.OverviewResponse{
		Scope:         view.Scope().String(),
		ScopeLabel:    auth.ScopeLabel(uc.subs, view),
		Customers:     len(snap.customers),
		Orders:        len(snap.orders),
		Invoices:      len(snap.invoices),
		DeliveryNotes: len(snap.notes),
	}, nil
}

// Search busca term en las cuatro colecciones. Un término vacío no devuelve resultados.
func (uc *WorkspaceUseCase) Search(principal *entity.User, scope access.Scope, term string) (*dto.SearchResponse, error) {
	out := &dto.SearchResponse{Term: term, Hits: []dto.SearchHit{}}
	if strings.TrimSpace(term) == "" {
		out.Empty = true
		return out, nil
	}
	snap, err := uc.load(access.ForUser(principal, scope), term)
	if err != nil {
		return nil, err
	}
	for _, c := range snap.customers {
		out.Hits = append(out.Hits, dto.SearchHit{Type: HitCustomer, ID: c.ID, Title: c.Name, Subtitle: c.Phone, SubsidiaryID: c.SubsidiaryID})
	}
	for _, o := range snap.orders {
		out.Hits = append(out.Hits, dto.SearchHit{Type: HitOrder, ID: o.ID, Title: o.OrderNumber, Subtitle: o.CustomerName, SubsidiaryID: o.SubsidiaryID})
	}
	for _, i := range snap.invoices {
		out.Hits = append(out.Hits, dto.SearchHit{Type: HitInvoice, ID: i.ID, Title: i.InvoiceNumber, Subtitle: i.CustomerName, SubsidiaryID: i.SubsidiaryID})
	}
	for _, d := range snap.notes {
		out.Hits = append(out.Hits, dto.SearchHit{Type: HitDeliveryNote, ID: d.ID, Title: d.DeliveryNumber, Subtitle: d.CustomerName, SubsidiaryID: d.SubsidiaryID})
	}
	out.Empty = len(out.Hits) == 0
	return out, nil
}

type result[T any] struct {
	rows []T
	err  error
}

// load lee y filtra las cuatro colecciones en paralelo.
func (uc *WorkspaceUseCase) load(view access.View, term string) (*snapshot, error) {
	customersCh := make(chan result[entity.Customer], 1)
	ordersCh := make(chan result[entity.Order], 1)
	invoicesCh := make(chan result[entity.Invoice], 1)
	notesCh := make(chan result[entity.DeliveryNote], 1)

	go func() {
		rows, err := uc.customers.List()
		customersCh <- result[entity.Customer]{access.Filter(rows, view, term), err}
	}()
	go func() {
		rows, err := uc.orders.List()
		ordersCh <- result[entity.Order]{access.Filter(rows, view, term), err}
	}()
	go func() {
		rows, err := uc.invoices.List()
		invoicesCh <- result[entity.Invoice]{access.Filter(rows, view, term), err}
	}()
	go func() {
		rows, err := uc.notes.List()
		notesCh <- result[entity.DeliveryNote]{access.Filter(rows, view, term), err}
	}()

	customers := <-customersCh
	orders := <-ordersCh
	invoices := <-invoicesCh
	notes := <-notesCh

	if customers.err != nil {
		return nil, fmt.Errorf("workspace: clientes: %w", customers.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("workspace: pedidos: %w", orders.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("workspace: facturas: %w", invoices.err)
	}
	if notes.err != nil {
		return nil, fmt.Errorf("workspace: notas de entrega: %w", notes.err)
	}
	return &snapshot{customers: customers.rows, orders: orders.rows, invoices: invoices.rows, notes: notes.rows}, nil
}
