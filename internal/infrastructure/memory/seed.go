package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/zakayo-api/internal/domain/entity"
)

// Store agrupa los repositorios en memoria de la aplicación.
type Store struct {
	Users         *UserRepo
	Subsidiaries  *SubsidiaryRepo
	Customers     *CustomerRepo
	Orders        *OrderRepo
	Invoices      *InvoiceRepo
	DeliveryNotes *DeliveryNoteRepo
}

// Seed construye el Store con los datos de demostración del holding. Todos los usuarios
// comparten la contraseña demoPassword (se guarda como hash bcrypt).
func Seed(demoPassword string) (*Store, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	users := SeedUsers()
	for i := range users {
		users[i].PasswordHash = string(hash)
	}
	return &Store{
		Users:         NewUserRepository(users),
		Subsidiaries:  NewSubsidiaryRepository(SeedSubsidiaries()),
		Customers:     NewCustomerRepository(SeedCustomers()),
		Orders:        NewOrderRepository(SeedOrders()),
		Invoices:      NewInvoiceRepository(SeedInvoices()),
		DeliveryNotes: NewDeliveryNoteRepository(SeedDeliveryNotes()),
	}, nil
}

func sub(id int) *int { return &id }

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func tsh(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// SeedSubsidiaries las cuatro unidades de negocio del holding.
func SeedSubsidiaries() []entity.Subsidiary {
	return []entity.Subsidiary{
		{ID: 1, Name: "Zakayo Agrovet", Description: "Agricultural products and fertilizers", Color: "#10B981",
			Products: []string{"Fertilizer A", "Fertilizer B", "Seeds", "Pesticides"}},
		{ID: 2, Name: "Zakayo Lubricants", Description: "Motor oils and lubricants", Color: "#3B82F6",
			Products: []string{"Engine Oil", "Brake Fluid", "Transmission Oil", "Grease"}},
		{ID: 3, Name: "Zakayo Sembe", Description: "Maize flour and grain products", Color: "#F59E0B",
			Products: []string{"Maize Flour", "Wheat Flour", "Rice", "Beans"}},
		{ID: 4, Name: "Zakayo Wine & Spirit", Description: "Alcoholic beverages and spirits", Color: "#8B5CF6",
			Products: []string{"Local Beer", "Wine", "Spirits", "Traditional Brew"}},
	}
}

// SeedUsers usuarios de demostración, sin hash de contraseña.
func SeedUsers() []entity.User {
	return []entity.User{
		{ID: 1, Name: "Owner", Email: "owner@zakayo.com", Role: entity.RoleOwner, Avatar: "OW"},
		{ID: 2, Name: "John Manager", Email: "john@agrovet.com", Role: entity.RoleManager, SubsidiaryID: sub(1), Avatar: "JM"},
		{ID: 3, Name: "Mary Sales", Email: "mary.sales@example.com", Role: entity.RoleStaff, SubsidiaryID: sub(2), Avatar: "MS"},
		{ID: 4, Name: "Eve Williams", Email: "eve.williams@example.com", Role: entity.RoleStaff, SubsidiaryID: sub(2), Avatar: "EW"},
		{ID: 5, Name: "Charlie Brown", Email: "charlie.brown@example.com", Role: entity.RoleStaff, SubsidiaryID: sub(3), Avatar: "CB"},
		{ID: 6, Name: "Diana Miller", Email: "diana.miller@example.com", Role: entity.RoleStaff, SubsidiaryID: sub(4), Avatar: "DM"},
	}
}

func SeedCustomers() []entity.Customer {
	created := day("2024-01-01")
	return []entity.Customer{
		{ID: 1, SubsidiaryID: 1, Name: "Mwalimu John Kasonga", Email: "john.kasonga@gmail.com", Phone: "+255712345678",
			Address: "Mwanza, Tanzania", TotalOrders: 12, TotalValue: tsh(2400000), Status: entity.CustomerActive,
			CreatedAt: created, UpdatedAt: created},
		{ID: 2, SubsidiaryID: 2, Name: "Mama Grace Mwangi", Email: "grace.mwangi@yahoo.com", Phone: "+255723456789",
			Address: "Dar es Salaam, Tanzania", TotalOrders: 8, TotalValue: tsh(1800000), Status: entity.CustomerActive,
			CreatedAt: created, UpdatedAt: created},
		{ID: 3, SubsidiaryID: 3, Name: "Bwana Ahmed Hassan", Email: "ahmed.hassan@hotmail.com", Phone: "+255734567890",
			Address: "Arusha, Tanzania", TotalOrders: 15, TotalValue: tsh(3200000), Status: entity.CustomerActive,
			CreatedAt: created, UpdatedAt: created},
		{ID: 4, SubsidiaryID: 4, Name: "Dada Sarah Mbogo", Email: "sarah.mbogo@gmail.com", Phone: "+255745678901",
			Address: "Dodoma, Tanzania", TotalOrders: 6, TotalValue: tsh(950000), Status: entity.CustomerInactive,
			CreatedAt: created, UpdatedAt: created},
	}
}

func SeedOrders() []entity.Order {
	return []entity.Order{
		{ID: 1, SubsidiaryID: 1, OrderNumber: "ORD-2024-001", CustomerName: "Mwalimu John Kasonga", CustomerPhone: "+255712345678",
			Product: "Fertilizer A (50kg)", Quantity: 10, UnitPrice: tsh(45000), TotalAmount: tsh(450000),
			Status: entity.OrderConfirmed, OrderDate: day("2024-01-15"), DeliveryDate: dayPtr("2024-01-20")},
		{ID: 2, SubsidiaryID: 2, OrderNumber: "ORD-2024-002", CustomerName: "Mama Grace Mwangi", CustomerPhone: "+255723456789",
			Product: "Engine Oil (5L)", Quantity: 25, UnitPrice: tsh(18000), TotalAmount: tsh(450000),
			Status: entity.OrderProcessing, OrderDate: day("2024-01-16")},
		{ID: 3, SubsidiaryID: 3, OrderNumber: "ORD-2024-003", CustomerName: "Bwana Ahmed Hassan", CustomerPhone: "+255734567890",
			Product: "Maize Flour (25kg)", Quantity: 50, UnitPrice: tsh(35000), TotalAmount: tsh(1750000),
			Status: entity.OrderDelivered, OrderDate: day("2024-01-14"), DeliveryDate: dayPtr("2024-01-18")},
		{ID: 4, SubsidiaryID: 4, OrderNumber: "ORD-2024-004", CustomerName: "Dada Sarah Mbogo", CustomerPhone: "+255745678901",
			Product: "Local Beer (Crate)", Quantity: 5, UnitPrice: tsh(25000), TotalAmount: tsh(125000),
			Status: entity.OrderDraft, OrderDate: day("2024-01-17")},
	}
}

func SeedInvoices() []entity.Invoice {
	return []entity.Invoice{
		{ID: 1, SubsidiaryID: 1, InvoiceNumber: "INV-2024-001", CustomerName: "Mwalimu John Kasonga",
			CustomerPhone: "+255712345678", CustomerEmail: "john.kasonga@gmail.com",
			Items:    []entity.InvoiceItem{{Description: "Fertilizer A (50kg)", Quantity: 10, UnitPrice: tsh(45000), Total: tsh(450000)}},
			Subtotal: tsh(450000), Tax: tsh(81000), Total: tsh(531000), Status: entity.InvoicePaid,
			IssueDate: day("2024-01-15"), DueDate: day("2024-02-15")},
		{ID: 2, SubsidiaryID: 2, InvoiceNumber: "INV-2024-002", CustomerName: "Mama Grace Mwangi",
			CustomerPhone: "+255723456789", CustomerEmail: "grace.mwangi@yahoo.com",
			Items:    []entity.InvoiceItem{{Description: "Engine Oil (5L)", Quantity: 25, UnitPrice: tsh(18000), Total: tsh(450000)}},
			Subtotal: tsh(450000), Tax: tsh(81000), Total: tsh(531000), Status: entity.InvoiceSent,
			IssueDate: day("2024-01-16"), DueDate: day("2024-02-16")},
		{ID: 3, SubsidiaryID: 3, InvoiceNumber: "INV-2024-003", CustomerName: "Bwana Ahmed Hassan",
			CustomerPhone: "+255734567890", CustomerEmail: "ahmed.hassan@hotmail.com",
			Items:    []entity.InvoiceItem{{Description: "Maize Flour (25kg)", Quantity: 50, UnitPrice: tsh(35000), Total: tsh(1750000)}},
			Subtotal: tsh(1750000), Tax: tsh(315000), Total: tsh(2065000), Status: entity.InvoiceOverdue,
			IssueDate: day("2024-01-10"), DueDate: day("2024-02-10")},
	}
}

func SeedDeliveryNotes() []entity.DeliveryNote {
	return []entity.DeliveryNote{
		{ID: 1, SubsidiaryID: 1, DeliveryNumber: "DN-2024-001", OrderNumber: "ORD-2024-001",
			CustomerName: "Mwalimu John Kasonga", CustomerPhone: "+255712345678", CustomerAddress: "Mwanza, Tanzania",
			Items:  []entity.DeliveryItem{{Description: "Fertilizer A (50kg)", Quantity: 10, Delivered: 10}},
			Status: entity.DeliveryDelivered, DeliveryDate: day("2024-01-20"), DeliveredDate: dayPtr("2024-01-20"),
			DriverName: "Hassan Mwalimu", VehicleNumber: "T123 ABC"},
		{ID: 2, SubsidiaryID: 2, DeliveryNumber: "DN-2024-002", OrderNumber: "ORD-2024-002",
			CustomerName: "Mama Grace Mwangi", CustomerPhone: "+255723456789", CustomerAddress: "Dar es Salaam, Tanzania",
			Items:  []entity.DeliveryItem{{Description: "Engine Oil (5L)", Quantity: 25, Delivered: 25}},
			Status: entity.DeliveryInTransit, DeliveryDate: day("2024-01-18"),
			DriverName: "John Kiprotich", VehicleNumber: "T456 DEF"},
		{ID: 3, SubsidiaryID: 3, DeliveryNumber: "DN-2024-003", OrderNumber: "ORD-2024-003",
			CustomerName: "Bwana Ahmed Hassan", CustomerPhone: "+255734567890", CustomerAddress: "Arusha, Tanzania",
			Items:  []entity.DeliveryItem{{Description: "Maize Flour (25kg)", Quantity: 50, Delivered: 50}},
			Status: entity.DeliveryDelivered, DeliveryDate: day("2024-01-18"), DeliveredDate: dayPtr("2024-01-18"),
			DriverName: "Peter Mwangi", VehicleNumber: "T789 GHI"},
	}
}
