package entity

import "time"

// Estados de nota de entrega.
const (
	DeliveryPending   = "Pending"
	DeliveryInTransit = "In Transit"
	DeliveryDelivered = "Delivered"
	DeliveryFailed    = "Failed"
)

// DeliveryStatuses lista los estados válidos.
var DeliveryStatuses = []string{DeliveryPending, DeliveryInTransit, DeliveryDelivered, DeliveryFailed}

// DeliveryItem línea de una nota de entrega.
type DeliveryItem struct {
	Description string
	Quantity    int
	Delivered   int
}

// DeliveryNote representa una nota de entrega ligada a un pedido.
type DeliveryNote struct {
	ID              int
	SubsidiaryID    int
	DeliveryNumber  string // DN-<año>-<NNN>
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []DeliveryItem
	Status          string
	DeliveryDate    time.Time
	DeliveredDate   *time.Time
	DriverName      string
	VehicleNumber   string
	Notes           string
}

func (d DeliveryNote) OwningSubsidiary() int { return d.SubsidiaryID }

func (d DeliveryNote) SearchFields() []string {
	return []string{d.DeliveryNumber, d.CustomerName, d.OrderNumber}
}
