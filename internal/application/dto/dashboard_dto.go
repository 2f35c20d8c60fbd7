package dto

// OverviewResponse conteos de cada colección bajo el alcance efectivo.
type OverviewResponse struct {
	Scope         string `json:"scope"`
	ScopeLabel    string `json:"scope_label"`
	Customers     int    `json:"customers"`
	Orders        int    `json:"orders"`
	Invoices      int    `json:"invoices"`
	DeliveryNotes int    `json:"delivery_notes"`
}

// SearchHit resultado de la búsqueda global.
type SearchHit struct {
	Type         string `json:"type"` // Customer, Order, Invoice, DeliveryNote
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	SubsidiaryID int    `json:"subsidiary_id"`
}

// SearchResponse resultados de la búsqueda global.
type SearchResponse struct {
	Term  string      `json:"term"`
	Hits  []SearchHit `json:"hits"`
	Empty bool        `json:"empty"`
}

// ExportJobRequest body para POST /api/exports.
type ExportJobRequest struct {
	Dataset string `json:"dataset" validate:"required,oneof=customers orders invoices delivery-notes"`
	Format  string `json:"format" validate:"required,oneof=pdf xlsx"`
}

// ExportJobResponse estado de un trabajo de exportación.
type ExportJobResponse struct {
	ID       string `json:"id"`
	Dataset  string `json:"dataset"`
	Format   string `json:"format"`
	Filename string `json:"filename"`
	State    string `json:"state"` // started, completed
	Message  string `json:"message"`
}
