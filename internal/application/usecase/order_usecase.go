package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/application/policy"
	"github.com/jhoicas/zakayo-api/internal/application/validation"
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos.
type OrderUseCase struct {
	repo      repository.OrderRepository
	subs      repository.SubsidiaryRepository
	validator *validation.Validator
	now       func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, subs repository.SubsidiaryRepository, v *validation.Validator) *OrderUseCase {
	return &OrderUseCase{repo: repo, subs: subs, validator: v, now: time.Now}
}

// List devuelve los pedidos visibles filtrados por búsqueda y estado.
func (uc *OrderUseCase) List(principal *entity.User, q dto.ListQuery) ([]dto.OrderResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	rows := access.Filter(all, access.ForUser(principal, q.Scope), q.Term,
		access.StatusIs(q.Status, func(o entity.Order) string { return o.Status }))
	out := make([]dto.OrderResponse, 0, len(rows))
	for _, o := range rows {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Get obtiene un pedido; ErrForbidden si pertenece a otra subsidiaria.
func (uc *OrderUseCase) Get(principal *entity.User, id int) (*dto.OrderResponse, error) {
	o, err := uc.load(principal, id)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(*o)
	return &out, nil
}

// Create registra un pedido en estado Draft con número ORD-<año>-<NNN>.
func (uc *OrderUseCase) Create(principal *entity.User, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if !in.UnitPrice.IsPositive() {
		return nil, domain.NewValidationError("unit_price", "must be greater than 0")
	}
	if err := policy.Writable(uc.subs, principal, in.SubsidiaryID); err != nil {
		return nil, err
	}

	now := uc.now()
	orderDate := now.UTC().Truncate(24 * time.Hour)
	if in.OrderDate != "" {
		d, err := policy.ParseDate("order_date", in.OrderDate)
		if err != nil {
			return nil, err
		}
		orderDate = d
	}
	var deliveryDate *time.Time
	if in.DeliveryDate != "" {
		d, err := policy.ParseDate("delivery_date", in.DeliveryDate)
		if err != nil {
			return nil, err
		}
		if d.Before(orderDate) {
			return nil, domain.NewValidationError("delivery_date", "must not be before the order date")
		}
		deliveryDate = &d
	}

	o := &entity.Order{
		SubsidiaryID:  in.SubsidiaryID,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Product:       strings.TrimSpace(in.Product),
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		TotalAmount:   in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:        entity.OrderDraft,
		OrderDate:     orderDate,
		DeliveryDate:  deliveryDate,
	}
	year := now.Year()
	number := func(seq int) string { return policy.DocumentNumber("ORD", year, seq) }
	if err := uc.repo.CreateNumbered(o, number); err != nil {
		return nil, fmt.Errorf("crear pedido: %w", err)
	}
	out := toOrderResponse(*o)
	return &out, nil
}

// UpdateStatus cambia el estado del pedido.
func (uc *OrderUseCase) UpdateStatus(principal *entity.User, id int, in dto.UpdateStatusRequest) (*dto.OrderResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if err := policy.OneOf("status", in.Status, entity.OrderStatuses); err != nil {
		return nil, err
	}
	o, err := uc.load(principal, id)
	if err != nil {
		return nil, err
	}
	o.Status = in.Status
	if in.Status == entity.OrderDelivered && o.DeliveryDate == nil {
		d := uc.now().UTC().Truncate(24 * time.Hour)
		o.DeliveryDate = &d
	}
	if err := uc.repo.Update(o); err != nil {
		return nil, fmt.Errorf("actualizar pedido: %w", err)
	}
	out := toOrderResponse(*o)
	return &out, nil
}

func (uc *OrderUseCase) load(principal *entity.User, id int) (*entity.Order, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener pedido: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Readable(principal, *o); err != nil {
		return nil, err
	}
	return o, nil
}

func toOrderResponse(o entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		SubsidiaryID:  o.SubsidiaryID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Product:       o.Product,
		Quantity:      o.Quantity,
		UnitPrice:     o.UnitPrice,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		OrderDate:     o.OrderDate.Format(policy.DateLayout),
		DeliveryDate:  policy.FormatDate(o.DeliveryDate),
	}
}
