package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest línea de factura.
type InvoiceItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest body para POST /api/invoices. Fechas en formato YYYY-MM-DD.
// TaxRate es un porcentaje; si se omite se usa la tarifa configurada.
type CreateInvoiceRequest struct {
	CustomerName  string               `json:"customer_name" validate:"required"`
	CustomerPhone string               `json:"customer_phone" validate:"required"`
	CustomerEmail string               `json:"customer_email" validate:"required,email"`
	SubsidiaryID  int                  `json:"subsidiary_id" validate:"required,gt=0"`
	IssueDate     string               `json:"issue_date" validate:"required,datetime=2006-01-02"`
	DueDate       string               `json:"due_date" validate:"required,datetime=2006-01-02"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	TaxRate       *decimal.Decimal     `json:"tax_rate,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

// InvoiceItemResponse línea de factura en respuestas.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID            int                   `json:"id"`
	SubsidiaryID  int                   `json:"subsidiary_id"`
	InvoiceNumber string                `json:"invoice_number"`
	CustomerName  string                `json:"customer_name"`
	CustomerPhone string                `json:"customer_phone"`
	CustomerEmail string                `json:"customer_email"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Tax           decimal.Decimal       `json:"tax"`
	Total         decimal.Decimal       `json:"total"`
	Status        string                `json:"status"`
	IssueDate     string                `json:"issue_date"`
	DueDate       string                `json:"due_date"`
	Notes         string                `json:"notes,omitempty"`
}

// DeliveryItemRequest línea de nota de entrega.
type DeliveryItemRequest struct {
	Description string `json:"description" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
}

// CreateDeliveryNoteRequest body para POST /api/delivery-notes.
type CreateDeliveryNoteRequest struct {
	OrderNumber     string                `json:"order_number" validate:"required"`
	CustomerName    string                `json:"customer_name" validate:"required"`
	CustomerPhone   string                `json:"customer_phone" validate:"required"`
	CustomerAddress string                `json:"customer_address" validate:"required"`
	SubsidiaryID    int                   `json:"subsidiary_id" validate:"required,gt=0"`
	DeliveryDate    string                `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	DriverName      string                `json:"driver_name" validate:"required"`
	VehicleNumber   string                `json:"vehicle_number" validate:"required"`
	Items           []DeliveryItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes           string                `json:"notes,omitempty"`
}

// DeliveryItemResponse línea de nota de entrega en respuestas.
type DeliveryItemResponse struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Delivered   int    `json:"delivered"`
}

// DeliveryNoteResponse nota de entrega en respuestas.
type DeliveryNoteResponse struct {
	ID              int                    `json:"id"`
	SubsidiaryID    int                    `json:"subsidiary_id"`
	DeliveryNumber  string                 `json:"delivery_number"`
	OrderNumber     string                 `json:"order_number"`
	CustomerName    string                 `json:"customer_name"`
	CustomerPhone   string                 `json:"customer_phone"`
	CustomerAddress string                 `json:"customer_address"`
	Items           []DeliveryItemResponse `json:"items"`
	Status          string                 `json:"status"`
	DeliveryDate    string                 `json:"delivery_date"`
	DeliveredDate   string                 `json:"delivered_date,omitempty"`
	DriverName      string                 `json:"driver_name"`
	VehicleNumber   string                 `json:"vehicle_number"`
	Notes           string                 `json:"notes,omitempty"`
}

// ShareResponse enlace para compartir un documento por WhatsApp.
type ShareResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}
