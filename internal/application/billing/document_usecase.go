package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/application/policy"
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/domain/repository"
	"github.com/jhoicas/zakayo-api/pkg/logger"
	"github.com/jhoicas/zakayo-api/pkg/money"
)

// ExportResult resultado del colaborador PDF. Una falla de renderizado no se propaga
// como error: queda en Err con Success=false.
type ExportResult struct {
	Success  bool
	Filename string
	Content  []byte
	Err      error
}

// DocumentUseCase exporta a PDF y comparte por WhatsApp facturas y notas de entrega.
type DocumentUseCase struct {
	invoices repository.InvoiceRepository
	notes    repository.DeliveryNoteRepository
	subs     repository.SubsidiaryRepository
	renderer DocumentRenderer
	linker   MessageLinker
	currency string
	log      *logger.Logger
}

// NewDocumentUseCase construye el caso de uso inyectando todas sus dependencias.
func NewDocumentUseCase(
	invoices repository.InvoiceRepository,
	notes repository.DeliveryNoteRepository,
	subs repository.SubsidiaryRepository,
	renderer DocumentRenderer,
	linker MessageLinker,
	currency string,
	log *logger.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoices: invoices,
		notes:    notes,
		subs:     subs,
		renderer: renderer,
		linker:   linker,
		currency: currency,
		log:      log,
	}
}

// ExportInvoice genera <numero>.pdf de la factura.
//
// Retorna:
//   - (result, nil)        con Success true/false según el renderizado.
//   - domain.ErrNotFound   si la factura no existe.
//   - domain.ErrForbidden  si la factura pertenece a otra subsidiaria.
func (uc *DocumentUseCase) ExportInvoice(ctx context.Context, principal *entity.User, id int) (ExportResult, error) {
	inv, err := loadInvoice(uc.invoices, principal, id)
	if err != nil {
		return ExportResult{}, err
	}
	res := ExportResult{Filename: inv.InvoiceNumber + ".pdf"}
	sub, err := uc.subsidiary(inv.SubsidiaryID)
	if err == nil {
		res.Content, err = uc.renderer.RenderInvoice(ctx, inv, sub)
	}
	return uc.finish(res, err), nil
}

// ExportDeliveryNote genera <numero>.pdf de la nota de entrega.
func (uc *DocumentUseCase) ExportDeliveryNote(ctx context.Context, principal *entity.User, id int) (ExportResult, error) {
	dn, err := loadDeliveryNote(uc.notes, principal, id)
	if err != nil {
		return ExportResult{}, err
	}
	res := ExportResult{Filename: dn.DeliveryNumber + ".pdf"}
	sub, err := uc.subsidiary(dn.SubsidiaryID)
	if err == nil {
		res.Content, err = uc.renderer.RenderDeliveryNote(ctx, dn, sub)
	}
	return uc.finish(res, err), nil
}

// ShareInvoice arma el mensaje de la factura y el enlace de WhatsApp al teléfono del cliente.
func (uc *DocumentUseCase) ShareInvoice(principal *entity.User, id int) (*dto.ShareResponse, error) {
	inv, err := loadInvoice(uc.invoices, principal, id)
	if err != nil {
		return nil, err
	}
	msg := fmt.Sprintf("Hello %s,\n\nYour invoice %s for %s is ready.\nIssue Date: %s\nDue Date: %s\n\n"+
		"Thank you for your business.\nZakayo Holdings Management System",
		inv.CustomerName, inv.InvoiceNumber, money.Format(uc.currency, inv.Total),
		inv.IssueDate.Format(policy.DateLayout), inv.DueDate.Format(policy.DateLayout))
	return uc.share(inv.CustomerPhone, msg)
}

// ShareDeliveryNote arma el aviso de entrega y el enlace de WhatsApp.
func (uc *DocumentUseCase) ShareDeliveryNote(principal *entity.User, id int) (*dto.ShareResponse, error) {
	dn, err := loadDeliveryNote(uc.notes, principal, id)
	if err != nil {
		return nil, err
	}
	msg := fmt.Sprintf("Hello %s,\n\nYour delivery %s for order %s is scheduled for %s.\n\n"+
		"Delivery Address: %s\nDriver: %s\nVehicle: %s\n\n"+
		"Please prepare to receive your delivery.\nThank you,\nZakayo Holdings Management System",
		dn.CustomerName, dn.DeliveryNumber, dn.OrderNumber, dn.DeliveryDate.Format(policy.DateLayout),
		dn.CustomerAddress, dn.DriverName, dn.VehicleNumber)
	return uc.share(dn.CustomerPhone, msg)
}

func (uc *DocumentUseCase) share(phone, msg string) (*dto.ShareResponse, error) {
	link, err := uc.linker.Link(phone, msg)
	if err != nil {
		return nil, domain.NewValidationError("customer_phone", err.Error())
	}
	return &dto.ShareResponse{URL: link, Message: msg}, nil
}

func (uc *DocumentUseCase) subsidiary(id int) (*entity.Subsidiary, error) {
	sub, err := uc.subs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("subsidiaria %d no existe", id)
	}
	return sub, nil
}

func (uc *DocumentUseCase) finish(res ExportResult, err error) ExportResult {
	if err != nil {
		uc.log.Error().Err(err).Str("filename", res.Filename).Msg("exportación PDF fallida")
		res.Content = nil
		res.Err = err
		return res
	}
	res.Success = true
	uc.log.Debug().Str("filename", res.Filename).Int("bytes", len(res.Content)).Msg("PDF generado")
	return res
}
