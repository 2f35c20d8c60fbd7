package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zakayo-api/internal/application/auth"
	"github.com/jhoicas/zakayo-api/internal/application/billing"
	"github.com/jhoicas/zakayo-api/internal/application/export"
	"github.com/jhoicas/zakayo-api/internal/application/usecase"
	"github.com/jhoicas/zakayo-api/internal/application/workspace"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	SubsidiaryUC   *usecase.SubsidiaryUseCase
	UserUC         *usecase.UserUseCase
	CustomerUC     *usecase.CustomerUseCase
	OrderUC        *usecase.OrderUseCase
	InvoiceUC      *billing.InvoiceUseCase
	DeliveryNoteUC *billing.DeliveryNoteUseCase
	DocumentUC     *billing.DocumentUseCase
	WorkspaceUC    *workspace.WorkspaceUseCase
	ExportUC       *export.ExportUseCase
	Status         StatusInfo
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Estado (público)
	statusHandler := NewStatusHandler(deps.Status)
	status := api.Group("/status")
	status.Get("/environment", statusHandler.Environment)
	status.Get("/hello", statusHandler.Hello)
	status.Get("/system-info", statusHandler.SystemInfo)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y sesión activa)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/me", authHandler.Me)
	protected.Put("/scope", authHandler.SetScope)

	directoryHandler := NewDirectoryHandler(deps.SubsidiaryUC, deps.UserUC)
	protected.Get("/subsidiaries", directoryHandler.ListSubsidiaries)
	protected.Get("/users", RequireRole(entity.RoleOwner), directoryHandler.ListUsers)

	dashboardHandler := NewDashboardHandler(deps.WorkspaceUC)
	protected.Get("/overview", dashboardHandler.Overview)
	protected.Get("/search", dashboardHandler.Search)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.DocumentUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Get("/:id/share", invoiceHandler.Share)

	// Delivery notes
	notes := protected.Group("/delivery-notes")
	noteHandler := NewDeliveryNoteHandler(deps.DeliveryNoteUC, deps.DocumentUC)
	notes.Get("/", noteHandler.List)
	notes.Post("/", noteHandler.Create)
	notes.Get("/:id", noteHandler.GetByID)
	notes.Patch("/:id/status", noteHandler.UpdateStatus)
	notes.Get("/:id/pdf", noteHandler.PDF)
	notes.Get("/:id/share", noteHandler.Share)

	// Exports (la ruta CSV va primero: /exports/<uuid> no termina en .csv)
	exports := protected.Group("/exports")
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/:dataset.csv", exportHandler.CSV)
	exports.Post("/", exportHandler.Start)
	exports.Get("/:id", exportHandler.Status)
}
