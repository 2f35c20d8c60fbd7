package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cliente.
const (
	CustomerActive   = "Active"
	CustomerInactive = "Inactive"
)

// Customer representa un cliente de una subsidiaria.
type Customer struct {
	ID           int
	SubsidiaryID int
	Name         string
	Email        string
	Phone        string
	Address      string
	TotalOrders  int
	TotalValue   decimal.Decimal
	Status       string // Active, Inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c Customer) OwningSubsidiary() int { return c.SubsidiaryID }

func (c Customer) SearchFields() []string {
	return []string{c.Name, c.Email, c.Phone}
}
