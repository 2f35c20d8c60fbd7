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

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	subs      repository.SubsidiaryRepository
	validator *validation.Validator
	now       func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, subs repository.SubsidiaryRepository, v *validation.Validator) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, subs: subs, validator: v, now: time.Now}
}

// List devuelve los clientes visibles para el usuario bajo el alcance pedido.
func (uc *CustomerUseCase) List(principal *entity.User, q dto.ListQuery) ([]dto.CustomerResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	rows := access.Filter(all, access.ForUser(principal, q.Scope), q.Term,
		access.StatusIs(q.Status, func(c entity.Customer) string { return c.Status }))
	out := make([]dto.CustomerResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Get obtiene un cliente; ErrForbidden si pertenece a otra subsidiaria.
func (uc *CustomerUseCase) Get(principal *entity.User, id int) (*dto.CustomerResponse, error) {
	c, err := uc.load(principal, id)
	if err != nil {
		return nil, err
	}
	out := toCustomerResponse(*c)
	return &out, nil
}

// Create registra un cliente activo en la subsidiaria indicada.
func (uc *CustomerUseCase) Create(principal *entity.User, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if err := policy.Writable(uc.subs, principal, in.SubsidiaryID); err != nil {
		return nil, err
	}
	now := uc.now()
	c := &entity.Customer{
		SubsidiaryID: in.SubsidiaryID,
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		TotalValue:   decimal.Zero,
		Status:       entity.CustomerActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	out := toCustomerResponse(*c)
	return &out, nil
}

// Update modifica los datos de contacto y el estado; los campos vacíos se conservan.
func (uc *CustomerUseCase) Update(principal *entity.User, id int, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	c, err := uc.load(principal, id)
	if err != nil {
		return nil, err
	}
	setIfPresent(&c.Name, in.Name)
	setIfPresent(&c.Email, in.Email)
	setIfPresent(&c.Phone, in.Phone)
	setIfPresent(&c.Address, in.Address)
	setIfPresent(&c.Status, in.Status)
	c.UpdatedAt = uc.now()
	if err := uc.repo.Update(c); err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	out := toCustomerResponse(*c)
	return &out, nil
}

func (uc *CustomerUseCase) load(principal *entity.User, id int) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Readable(principal, *c); err != nil {
		return nil, err
	}
	return c, nil
}

func setIfPresent(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:           c.ID,
		SubsidiaryID: c.SubsidiaryID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		TotalOrders:  c.TotalOrders,
		TotalValue:   c.TotalValue,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
