// Package export implementa las descargas de datos: CSV inmediato de cualquier colección
// y el flujo de notificación de exportación PDF/Excel con un temporizador.
package export

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/application/validation"
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/domain/repository"
	csvexport "github.com/jhoicas/zakayo-api/internal/infrastructure/export"
	"github.com/jhoicas/zakayo-api/pkg/logger"
)

// Conjuntos de datos exportables.
const (
	DatasetCustomers     = "customers"
	DatasetOrders        = "orders"
	DatasetInvoices      = "invoices"
	DatasetDeliveryNotes = "delivery-notes"
)

// Datasets lista los conjuntos válidos.
var Datasets = []string{DatasetCustomers, DatasetOrders, DatasetInvoices, DatasetDeliveryNotes}

// Estados de un trabajo de exportación.
const (
	StateStarted   = "started"
	StateCompleted = "completed"
)

var formatLabels = map[string]string{"pdf": "PDF", "xlsx": "Excel"}

type job struct {
	dto.ExportJobResponse
	ownerID int
}

// ExportUseCase exporta colecciones respetando la vista del usuario.
type ExportUseCase struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	invoices  repository.InvoiceRepository
	notes     repository.DeliveryNoteRepository
	validator *validation.Validator
	delay     time.Duration
	retention time.Duration
	log       *logger.Logger

	mu   sync.RWMutex
	jobs map[string]*job
}

// NewExportUseCase construye el caso de uso. delay es el tiempo hasta marcar un trabajo
// completado; retention, cuánto se conserva un trabajo completado antes de descartarlo.
func NewExportUseCase(
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	invoices repository.InvoiceRepository,
	notes repository.DeliveryNoteRepository,
	v *validation.Validator,
	delay time.Duration,
	retention time.Duration,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		customers: customers,
		orders:    orders,
		invoices:  invoices,
		notes:     notes,
		validator: v,
		delay:     delay,
		retention: retention,
		log:       log,
		jobs:      make(map[string]*job),
	}
}

// WriteCSV escribe en w el dataset filtrado por la vista y devuelve el nombre de archivo.
func (uc *ExportUseCase) WriteCSV(w io.Writer, principal *entity.User, scope access.Scope, dataset string) (string, error) {
	if !slices.Contains(Datasets, dataset) {
		return "", domain.NewValidationError("dataset", "must be one of: customers, orders, invoices, delivery-notes")
	}
	view := access.ForUser(principal, scope)

	var err error
	switch dataset {
	case DatasetCustomers:
		var rows []entity.Customer
		if rows, err = uc.customers.List(); err == nil {
			err = csvexport.WriteCustomersCSV(w, access.Filter(rows, view, ""))
		}
	case DatasetOrders:
		var rows []entity.Order
		if rows, err = uc.orders.List(); err == nil {
			err = csvexport.WriteOrdersCSV(w, access.Filter(rows, view, ""))
		}
	case DatasetInvoices:
		var rows []entity.Invoice
		if rows, err = uc.invoices.List(); err == nil {
			err = csvexport.WriteInvoicesCSV(w, access.Filter(rows, view, ""))
		}
	case DatasetDeliveryNotes:
		var rows []entity.DeliveryNote
		if rows, err = uc.notes.List(); err == nil {
			err = csvexport.WriteDeliveryNotesCSV(w, access.Filter(rows, view, ""))
		}
	}
	if err != nil {
		return "", fmt.Errorf("exportar %s: %w", dataset, err)
	}
	return dataset + ".csv", nil
}

// Start registra un trabajo en estado started y programa su finalización.
// No se puede cancelar una vez iniciado.
func (uc *ExportUseCase) Start(principal *entity.User, in dto.ExportJobRequest) (*dto.ExportJobResponse, error) {
	if principal == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	j := &job{
		ExportJobResponse: dto.ExportJobResponse{
			ID:       uuid.NewString(),
			Dataset:  in.Dataset,
			Format:   in.Format,
			Filename: in.Dataset + "." + in.Format,
			State:    StateStarted,
			Message:  fmt.Sprintf("Exporting %s to %s...", in.Dataset, formatLabels[in.Format]),
		},
		ownerID: principal.ID,
	}

	uc.mu.Lock()
	uc.jobs[j.ID] = j
	out := j.ExportJobResponse
	uc.mu.Unlock()

	time.AfterFunc(uc.delay, func() { uc.complete(j.ID) })
	uc.log.Info().Str("job_id", out.ID).Str("dataset", out.Dataset).Str("format", out.Format).Msg("exportación iniciada")
	return &out, nil
}

// Status devuelve el estado del trabajo. Los trabajos de otro usuario no existen para el llamador.
func (uc *ExportUseCase) Status(principal *entity.User, id string) (*dto.ExportJobResponse, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	j, ok := uc.jobs[id]
	if !ok || principal == nil || j.ownerID != principal.ID {
		return nil, domain.ErrNotFound
	}
	out := j.ExportJobResponse
	return &out, nil
}

func (uc *ExportUseCase) complete(id string) {
	uc.mu.Lock()
	j, ok := uc.jobs[id]
	if ok {
		j.State = StateCompleted
		j.Message = j.Filename + " has been downloaded."
	}
	uc.mu.Unlock()
	if !ok {
		return
	}
	uc.log.Info().Str("job_id", id).Msg("exportación completada")
	time.AfterFunc(uc.retention, func() { uc.discard(id) })
}

func (uc *ExportUseCase) discard(id string) {
	uc.mu.Lock()
	delete(uc.jobs, id)
	uc.mu.Unlock()
	uc.log.Debug().Str("job_id", id).Msg("trabajo de exportación descartado")
}
