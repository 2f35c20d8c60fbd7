package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido.
const (
	OrderDraft      = "Draft"
	OrderConfirmed  = "Confirmed"
	OrderProcessing = "Processing"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// OrderStatuses lista los estados válidos en orden de flujo.
var OrderStatuses = []string{OrderDraft, OrderConfirmed, OrderProcessing, OrderDelivered, OrderCancelled}

// Order representa un pedido de cliente.
type Order struct {
	ID            int
	SubsidiaryID  int
	OrderNumber   string // ORD-<año>-<NNN>
	CustomerName  string
	CustomerPhone string
	Product       string
	Quantity      int
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        string
	OrderDate     time.Time
	DeliveryDate  *time.Time
}

func (o Order) OwningSubsidiary() int { return o.SubsidiaryID }

func (o Order) SearchFields() []string {
	return []string{o.OrderNumber, o.CustomerName, o.Product}
}
