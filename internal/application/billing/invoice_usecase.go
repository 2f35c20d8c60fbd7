package billing

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

var hundred = decimal.NewFromInt(100)

// InvoiceUseCase casos de uso de facturas.
type InvoiceUseCase struct {
	repo      repository.InvoiceRepository
	subs      repository.SubsidiaryRepository
	validator *validation.Validator
	vatRate   decimal.Decimal // porcentaje por defecto
	now       func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. vatRate es un porcentaje (18 = 18%).
func NewInvoiceUseCase(
	repo repository.InvoiceRepository,
	subs repository.SubsidiaryRepository,
	v *validation.Validator,
	vatRate int,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, subs: subs, validator: v, vatRate: decimal.NewFromInt(int64(vatRate)), now: time.Now}
}

// List devuelve las facturas visibles filtradas por búsqueda y estado.
func (uc *InvoiceUseCase) List(principal *entity.User, q dto.ListQuery) ([]dto.InvoiceResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	rows := access.Filter(all, access.ForUser(principal, q.Scope), q.Term,
		access.StatusIs(q.Status, func(i entity.Invoice) string { return i.Status }))
	out := make([]dto.InvoiceResponse, 0, len(rows))
	for _, inv := range rows {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// Get obtiene una factura; ErrForbidden si pertenece a otra subsidiaria.
func (uc *InvoiceUseCase) Get(principal *entity.User, id int) (*dto.InvoiceResponse, error) {
	inv, err := loadInvoice(uc.repo, principal, id)
	if err != nil {
		return nil, err
	}
	out := toInvoiceResponse(*inv)
	return &out, nil
}

// Create calcula subtotal, impuesto y total y registra la factura en estado Draft.
//
// subtotal = Σ cantidad × precio, tax = subtotal × tarifa / 100, total = subtotal + tax.
// El número es INV-<año>-<NNN> con NNN = tamaño de la colección + 1.
func (uc *InvoiceUseCase) Create(principal *entity.User, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	verr := &domain.ValidationError{}
	for i, it := range in.Items {
		if it.UnitPrice.LessThan(decimal.NewFromInt(1)) {
			verr.Fields = append(verr.Fields, domain.FieldError{
				Field: fmt.Sprintf("items[%d].unit_price", i), Message: "must be at least 1",
			})
		}
	}
	rate := uc.vatRate
	if in.TaxRate != nil {
		rate = *in.TaxRate
		if rate.IsNegative() || rate.GreaterThan(hundred) {
			verr.Fields = append(verr.Fields, domain.FieldError{Field: "tax_rate", Message: "must be between 0 and 100"})
		}
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	issue, err := policy.ParseDate("issue_date", in.IssueDate)
	if err != nil {
		return nil, err
	}
	due, err := policy.ParseDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}
	if due.Before(issue) {
		return nil, domain.NewValidationError("due_date", "must not be before the issue date")
	}
	if err := policy.Writable(uc.subs, principal, in.SubsidiaryID); err != nil {
		return nil, err
	}

	items := make([]entity.InvoiceItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, it := range in.Items {
		line := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
		items = append(items, entity.InvoiceItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       line,
		})
	}
	tax := subtotal.Mul(rate).Div(hundred)

	inv := &entity.Invoice{
		SubsidiaryID:  in.SubsidiaryID,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal.Add(tax),
		Status:        entity.InvoiceDraft,
		IssueDate:     issue,
		DueDate:       due,
		Notes:         strings.TrimSpace(in.Notes),
	}
	year := uc.now().Year()
	number := func(seq int) string { return policy.DocumentNumber("INV", year, seq) }
	if err := uc.repo.CreateNumbered(inv, number); err != nil {
		return nil, fmt.Errorf("crear factura: %w", err)
	}
	out := toInvoiceResponse(*inv)
	return &out, nil
}

// UpdateStatus cambia el estado de la factura (Draft, Sent, Paid, Overdue).
func (uc *InvoiceUseCase) UpdateStatus(principal *entity.User, id int, in dto.UpdateStatusRequest) (*dto.InvoiceResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if err := policy.OneOf("status", in.Status, entity.InvoiceStatuses); err != nil {
		return nil, err
	}
	inv, err := loadInvoice(uc.repo, principal, id)
	if err != nil {
		return nil, err
	}
	inv.Status = in.Status
	if err := uc.repo.Update(inv); err != nil {
		return nil, fmt.Errorf("actualizar factura: %w", err)
	}
	out := toInvoiceResponse(*inv)
	return &out, nil
}

func loadInvoice(repo repository.InvoiceRepository, principal *entity.User, id int) (*entity.Invoice, error) {
	inv, err := repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Readable(principal, *inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func toInvoiceResponse(inv entity.Invoice) dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return dto.InvoiceResponse{
		ID:            inv.ID,
		SubsidiaryID:  inv.SubsidiaryID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		CustomerPhone: inv.CustomerPhone,
		CustomerEmail: inv.CustomerEmail,
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Status:        inv.Status,
		IssueDate:     inv.IssueDate.Format(policy.DateLayout),
		DueDate:       inv.DueDate.Format(policy.DateLayout),
		Notes:         inv.Notes,
	}
}
