package billing

import (
	"context"

	"github.com/jhoicas/zakayo-api/internal/domain/entity"
)

// DocumentRenderer puerto de salida del colaborador PDF.
type DocumentRenderer interface {
	RenderInvoice(ctx context.Context, inv *entity.Invoice, sub *entity.Subsidiary) ([]byte, error)
	RenderDeliveryNote(ctx context.Context, dn *entity.DeliveryNote, sub *entity.Subsidiary) ([]byte, error)
}

// MessageLinker puerto de salida del colaborador de mensajería (enlace profundo).
type MessageLinker interface {
	Link(phone, message string) (string, error)
}
