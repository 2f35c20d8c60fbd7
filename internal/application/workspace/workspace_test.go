package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zakayo-api/internal/application/workspace"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/memory"
)

func setup(t *testing.T) (*memory.Store, *workspace.WorkspaceUseCase) {
	t.Helper()
	s, err := memory.Seed("password123")
	require.NoError(t, err)
	return s, workspace.NewWorkspaceUseCase(s.Customers, s.Orders, s.Invoices, s.DeliveryNotes, s.Subsidiaries)
}

func user(t *testing.T, s *memory.Store, id int) *entity.User {
	t.Helper()
	u, err := s.Users.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

func TestOverview_OwnerTodas(t *testing.T) {
	s, uc := setup(t)

	got, err := uc.Overview(user(t, s, 1), access.All())
	require.NoError(t, err)
	assert.Equal(t, "all", got.Scope)
	assert.Equal(t, "All Subsidiaries", got.ScopeLabel)
	assert.Equal(t, 4, got.Customers)
	assert.Equal(t, 4, got.Orders)
	assert.Equal(t, 3, got.Invoices)
	assert.Equal(t, 3, got.DeliveryNotes)
}

func TestOverview_OwnerAlcance3(t *testing.T) {
	s, uc := setup(t)

	got, err := uc.Overview(user(t, s, 1), access.Of(3))
	require.NoError(t, err)
	assert.Equal(t, "3", got.Scope)
	assert.Equal(t, "Zakayo Sembe", got.ScopeLabel)
	assert.Equal(t, 1, got.Customers)
	assert.Equal(t, 1, got.Orders)
	assert.Equal(t, 1, got.Invoices)
	assert.Equal(t, 1, got.DeliveryNotes)
}

func TestOverview_DianaSinFacturas(t *testing.T) {
	s, uc := setup(t)

	// Diana (Staff, subsidiaria 4) pide "all" pero se le fuerza la suya.
	got, err := uc.Overview(user(t, s, 6), access.All())
	require.NoError(t, err)
	assert.Equal(t, "Zakayo Wine & Spirit", got.ScopeLabel)
	assert.Equal(t, 1, got.Customers)
	assert.Zero(t, got.Invoices)
	assert.Zero(t, got.DeliveryNotes)
}

func TestSearch_Hassan(t *testing.T) {
	s, uc := setup(t)

	got, err := uc.Search(user(t, s, 1), access.All(), "hassan")
	require.NoError(t, err)
	assert.False(t, got.Empty)

	types := map[string]int{}
	for _, h := range got.Hits {
		assert.Equal(t, 3, h.SubsidiaryID)
		types[h.Type]++
	}
	assert.Equal(t, map[string]int{
		workspace.HitCustomer:     1,
		workspace.HitOrder:        1,
		workspace.HitInvoice:      1,
		workspace.HitDeliveryNote: 1,
	}, types)
}

func TestSearch_RespetaAlcance(t *testing.T) {
	s, uc := setup(t)

	got, err := uc.Search(user(t, s, 2), access.All(), "hassan")
	require.NoError(t, err)
	assert.True(t, got.Empty)
	assert.NotNil(t, got.Hits)
}

func TestSearch_TerminoVacio(t *testing.T) {
	s, uc := setup(t)

	got, err := uc.Search(user(t, s, 1), access.All(), "   ")
	require.NoError(t, err)
	assert.True(t, got.Empty)
	assert.Empty(t, got.Hits)
}
