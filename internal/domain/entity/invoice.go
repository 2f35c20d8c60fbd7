package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura.
const (
	InvoiceDraft   = "Draft"
	InvoiceSent    = "Sent"
	InvoicePaid    = "Paid"
	InvoiceOverdue = "Overdue"
)

// InvoiceStatuses lista los estados válidos.
var InvoiceStatuses = []string{InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue}

// InvoiceItem línea de factura.
type InvoiceItem struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // Quantity * UnitPrice
}

// Invoice representa una factura emitida por una subsidiaria.
type Invoice struct {
	ID            int
	SubsidiaryID  int
	InvoiceNumber string // INV-<año>-<NNN>
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Status        string
	IssueDate     time.Time
	DueDate       time.Time
	Notes         string
}

func (i Invoice) OwningSubsidiary() int { return i.SubsidiaryID }

func (i Invoice) SearchFields() []string {
	return []string{i.InvoiceNumber, i.CustomerName}
}
