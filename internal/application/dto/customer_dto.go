package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	SubsidiaryID int    `json:"subsidiary_id" validate:"required,gt=0"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id. Campos vacíos no se modifican.
type UpdateCustomerRequest struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID           int             `json:"id"`
	SubsidiaryID int             `json:"subsidiary_id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	TotalOrders  int             `json:"total_orders"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateOrderRequest body para POST /api/orders. Fechas en formato YYYY-MM-DD.
type CreateOrderRequest struct {
	CustomerName  string          `json:"customer_name" validate:"required"`
	CustomerPhone string          `json:"customer_phone" validate:"required"`
	Product       string          `json:"product" validate:"required"`
	Quantity      int             `json:"quantity" validate:"required,min=1"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	OrderDate     string          `json:"order_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DeliveryDate  string          `json:"delivery_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SubsidiaryID  int             `json:"subsidiary_id" validate:"required,gt=0"`
}

// OrderResponse pedido en respuestas.
type OrderResponse struct {
	ID            int             `json:"id"`
	SubsidiaryID  int             `json:"subsidiary_id"`
	OrderNumber   string          `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Product       string          `json:"product"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	OrderDate     string          `json:"order_date"`
	DeliveryDate  string          `json:"delivery_date,omitempty"`
}
