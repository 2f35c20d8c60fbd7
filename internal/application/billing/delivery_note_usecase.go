package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/application/policy"
	"github.com/jhoicas/zakayo-api/internal/application/validation"
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/domain/repository"
)

// DeliveryNoteUseCase casos de uso de notas de entrega.
type DeliveryNoteUseCase struct {
	repo      repository.DeliveryNoteRepository
	subs      repository.SubsidiaryRepository
	validator *validation.Validator
	now       func() time.Time
}

// NewDeliveryNoteUseCase construye el caso de uso.
func NewDeliveryNoteUseCase(
	repo repository.DeliveryNoteRepository,
	subs repository.SubsidiaryRepository,
	v *validation.Validator,
) *DeliveryNoteUseCase {
	return &DeliveryNoteUseCase{repo: repo, subs: subs, validator: v, now: time.Now}
}

// List devuelve las notas visibles filtradas por búsqueda y estado.
func (uc *DeliveryNoteUseCase) List(principal *entity.User, q dto.ListQuery) ([]dto.DeliveryNoteResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar notas de entrega: %w", err)
	}
	rows := access.Filter(all, access.ForUser(principal, q.Scope), q.Term,
		access.StatusIs(q.Status, func(d entity.DeliveryNote) string { return d.Status }))
	out := make([]dto.DeliveryNoteResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, toDeliveryNoteResponse(d))
	}
	return out, nil
}

// Get obtiene una nota; ErrForbidden si pertenece a otra subsidiaria.
func (uc *DeliveryNoteUseCase) Get(principal *entity.User, id int) (*dto.DeliveryNoteResponse, error) {
	d, err := loadDeliveryNote(uc.repo, principal, id)
	if err != nil {
		return nil, err
	}
	out := toDeliveryNoteResponse(*d)
	return &out, nil
}

// Create registra la nota en estado Pending con DN-<año>-<NNN>; nada se ha entregado aún.
func (uc *DeliveryNoteUseCase) Create(principal *entity.User, in dto.CreateDeliveryNoteRequest) (*dto.DeliveryNoteResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	date, err := policy.ParseDate("delivery_date", in.DeliveryDate)
	if err != nil {
		return nil, err
	}
	if err := policy.Writable(uc.subs, principal, in.SubsidiaryID); err != nil {
		return nil, err
	}

	items := make([]entity.DeliveryItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.DeliveryItem{Description: strings.TrimSpace(it.Description), Quantity: it.Quantity})
	}
	d := &entity.DeliveryNote{
		SubsidiaryID:    in.SubsidiaryID,
		OrderNumber:     strings.TrimSpace(in.OrderNumber),
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerAddress: strings.TrimSpace(in.CustomerAddress),
		Items:           items,
		Status:          entity.DeliveryPending,
		DeliveryDate:    date,
		DriverName:      strings.TrimSpace(in.DriverName),
		VehicleNumber:   strings.TrimSpace(in.VehicleNumber),
		Notes:           strings.TrimSpace(in.Notes),
	}
	year := uc.now().Year()
	number := func(seq int) string { return policy.DocumentNumber("DN", year, seq) }
	if err := uc.repo.CreateNumbered(d, number); err != nil {
		return nil, fmt.Errorf("crear nota de entrega: %w", err)
	}
	out := toDeliveryNoteResponse(*d)
	return &out, nil
}

// UpdateStatus cambia el estado. Al pasar a Delivered se fija la fecha de entrega y
// cada línea queda entregada por completo.
func (uc *DeliveryNoteUseCase) UpdateStatus(principal *entity.User, id int, in dto.UpdateStatusRequest) (*dto.DeliveryNoteResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if err := policy.OneOf("status", in.Status, entity.DeliveryStatuses); err != nil {
		return nil, err
	}
	d, err := loadDeliveryNote(uc.repo, principal, id)
	if err != nil {
		return nil, err
	}
	d.Status = in.Status
	if in.Status == entity.DeliveryDelivered {
		if d.DeliveredDate == nil {
			now := uc.now().UTC().Truncate(24 * time.Hour)
			d.DeliveredDate = &now
		}
		for i := range d.Items {
			d.Items[i].Delivered = d.Items[i].Quantity
		}
	}
	if err := uc.repo.Update(d); err != nil {
		return nil, fmt.Errorf("actualizar nota de entrega: %w", err)
	}
	out := toDeliveryNoteResponse(*d)
	return &out, nil
}

func loadDeliveryNote(repo repository.DeliveryNoteRepository, principal *entity.User, id int) (*entity.DeliveryNote, error) {
	d, err := repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener nota de entrega: %w", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Readable(principal, *d); err != nil {
		return nil, err
	}
	return d, nil
}

func toDeliveryNoteResponse(d entity.DeliveryNote) dto.DeliveryNoteResponse {
	items := make([]dto.DeliveryItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, dto.DeliveryItemResponse{Description: it.Description, Quantity: it.Quantity, Delivered: it.Delivered})
	}
	return dto.DeliveryNoteResponse{
		ID:              d.ID,
		SubsidiaryID:    d.SubsidiaryID,
		DeliveryNumber:  d.DeliveryNumber,
		OrderNumber:     d.OrderNumber,
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		Items:           items,
		Status:          d.Status,
		DeliveryDate:    d.DeliveryDate.Format(policy.DateLayout),
		DeliveredDate:   policy.FormatDate(d.DeliveredDate),
		DriverName:      d.DriverName,
		VehicleNumber:   d.VehicleNumber,
		Notes:           d.Notes,
	}
}
