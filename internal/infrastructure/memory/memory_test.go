package memory_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/memory"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s, err := memory.Seed("password123")
	require.NoError(t, err)
	return s
}

func TestSeed_RegistrosReferencianSubsidiariaExistente(t *testing.T) {
	s := seededStore(t)
	subs, err := s.Subsidiaries.List()
	require.NoError(t, err)
	require.Len(t, subs, 4)
	known := map[int]bool{}
	for _, sub := range subs {
		known[sub.ID] = true
	}

	customers, _ := s.Customers.List()
	orders, _ := s.Orders.List()
	invoices, _ := s.Invoices.List()
	notes, _ := s.DeliveryNotes.List()
	var records []entity.BusinessRecord
	for _, r := range customers {
		records = append(records, r)
	}
	for _, r := range orders {
		records = append(records, r)
	}
	for _, r := range invoices {
		records = append(records, r)
	}
	for _, r := range notes {
		records = append(records, r)
	}
	assert.Len(t, records, 4+4+3+3)
	for _, r := range records {
		assert.True(t, known[r.OwningSubsidiary()], "%T con subsidiaria %d", r, r.OwningSubsidiary())
	}
}

func TestSeed_UsuariosConHashBcrypt(t *testing.T) {
	s := seededStore(t)
	users, err := s.Users.List()
	require.NoError(t, err)
	require.Len(t, users, 6)
	for _, u := range users {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")), u.Email)
		if u.Role == entity.RoleOwner {
			assert.Nil(t, u.SubsidiaryID)
		} else {
			assert.NotNil(t, u.SubsidiaryID)
		}
	}
}

func TestUserRepo_GetByEmailSinDistinguirMayusculas(t *testing.T) {
	s := seededStore(t)
	u, err := s.Users.GetByEmail("  John@Agrovet.com ")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, 2, u.ID)

	u, err = s.Users.GetByEmail("nobody@zakayo.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestInvoiceRepo_CreateAsignaIDYAislaCopias(t *testing.T) {
	s := seededStore(t)
	inv := &entity.Invoice{SubsidiaryID: 2, InvoiceNumber: "INV-2024-004",
		Items: []entity.InvoiceItem{{Description: "Grease", Quantity: 1}}}
	require.NoError(t, s.Invoices.Create(inv))
	assert.Equal(t, 4, inv.ID)

	inv.Items[0].Description = "mutado"
	got, err := s.Invoices.GetByID(4)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Grease", got.Items[0].Description)

	n, err := s.Invoices.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestOrderRepo_UpdateInexistente(t *testing.T) {
	s := seededStore(t)
	err := s.Orders.Update(&entity.Order{ID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	o, err := s.Orders.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestCreateNumbered_AltasConcurrentesNoRepitenNumero(t *testing.T) {
	s := seededStore(t)
	number := func(prefix string) func(int) string {
		return func(seq int) string { return fmt.Sprintf("%s-2024-%03d", prefix, seq) }
	}
	const n = 200

	var wg sync.WaitGroup
	invoices := make([]*entity.Invoice, n)
	notes := make([]*entity.DeliveryNote, n)
	orders := make([]*entity.Order, n)
	for i := 0; i < n; i++ {
		invoices[i] = &entity.Invoice{SubsidiaryID: 1}
		notes[i] = &entity.DeliveryNote{SubsidiaryID: 2}
		orders[i] = &entity.Order{SubsidiaryID: 3}
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Invoices.CreateNumbered(invoices[i], number("INV")))
		}(i)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.DeliveryNotes.CreateNumbered(notes[i], number("DN")))
		}(i)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Orders.CreateNumbered(orders[i], number("ORD")))
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		for _, num := range []string{invoices[i].InvoiceNumber, notes[i].DeliveryNumber, orders[i].OrderNumber} {
			assert.False(t, seen[num], num)
			seen[num] = true
		}
	}
	assert.Len(t, seen, 3*n)

	stored, err := s.Invoices.List()
	require.NoError(t, err)
	numbers := map[string]bool{}
	for _, inv := range stored {
		numbers[inv.InvoiceNumber] = true
	}
	assert.True(t, numbers["INV-2024-004"])
	assert.True(t, numbers[fmt.Sprintf("INV-2024-%03d", 3+n)])
}
