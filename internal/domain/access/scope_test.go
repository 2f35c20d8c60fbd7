package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/domain/entity"
)

func intPtr(v int) *int { return &v }

func ordersAcrossSubsidiaries() []entity.Order {
	return []entity.Order{
		{ID: 1, SubsidiaryID: 1, OrderNumber: "ORD-2024-001", CustomerName: "Mwalimu John Kasonga", Product: "Fertilizer A (50kg)"},
		{ID: 2, SubsidiaryID: 2, OrderNumber: "ORD-2024-002", CustomerName: "Mama Grace Mwangi", Product: "Engine Oil (5L)"},
		{ID: 3, SubsidiaryID: 3, OrderNumber: "ORD-2024-003", CustomerName: "Bwana Ahmed Hassan", Product: "Maize Flour (25kg)"},
		{ID: 4, SubsidiaryID: 4, OrderNumber: "ORD-2024-004", CustomerName: "Dada Sarah Mbogo", Product: "Local Beer (Crate)"},
	}
}

func subsidiariesOf(orders []entity.Order) []int {
	out := make([]int, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.SubsidiaryID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseScope
// ──────────────────────────────────────────────────────────────────────────────

func TestParseScope(t *testing.T) {
	for _, raw := range []string{"", "all", "ALL", "  all "} {
		s, err := access.ParseScope(raw)
		require.NoError(t, err, raw)
		assert.True(t, s.IsAll(), raw)
		assert.Equal(t, "all", s.String())
	}

	s, err := access.ParseScope("3")
	require.NoError(t, err)
	id, ok := s.SubsidiaryID()
	assert.True(t, ok)
	assert.Equal(t, 3, id)
	assert.Equal(t, "3", s.String())

	for _, raw := range []string{"0", "-2", "abc", "1.5"} {
		_, err := access.ParseScope(raw)
		assert.Error(t, err, raw)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve: reglas de precedencia
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_NoOwnerSoloVeSuSubsidiaria(t *testing.T) {
	requested := []access.Scope{access.All(), access.Of(1), access.Of(2), access.Of(4)}
	for _, role := range []entity.Role{entity.RoleManager, entity.RoleStaff} {
		for home := 1; home <= 4; home++ {
			for _, req := range requested {
				v := access.Resolve(role, intPtr(home), req)
				for sub := 1; sub <= 4; sub++ {
					assert.Equal(t, sub == home, v.Allows(sub),
						"role=%s home=%d requested=%s sub=%d", role, home, req, sub)
				}
			}
		}
	}
}

func TestResolve_OwnerAllVeTodo(t *testing.T) {
	v := access.Resolve(entity.RoleOwner, nil, access.All())
	assert.True(t, v.IsAll())
	for sub := -1; sub <= 10; sub++ {
		assert.True(t, v.Allows(sub))
	}
}

func TestResolve_OwnerConAlcanceConcreto(t *testing.T) {
	for s := 1; s <= 4; s++ {
		v := access.Resolve(entity.RoleOwner, nil, access.Of(s))
		got, ok := v.SubsidiaryID()
		require.True(t, ok)
		assert.Equal(t, s, got)
		for sub := 1; sub <= 4; sub++ {
			assert.Equal(t, sub == s, v.Allows(sub))
		}
	}
}

func TestResolve_NoOwnerSinSubsidiariaNoVeNada(t *testing.T) {
	for _, home := range []*int{nil, intPtr(0), intPtr(-1)} {
		v := access.Resolve(entity.RoleStaff, home, access.All())
		assert.True(t, v.IsEmpty())
		for sub := 0; sub <= 4; sub++ {
			assert.False(t, v.Allows(sub))
		}
		assert.Empty(t, access.Filter(ordersAcrossSubsidiaries(), v, ""))
		assert.NotNil(t, access.Filter(ordersAcrossSubsidiaries(), v, ""))
	}
}

func TestResolve_RolDesconocidoSeTrataComoRestringido(t *testing.T) {
	v := access.Resolve(entity.Role("Auditor"), intPtr(2), access.All())
	assert.True(t, v.Allows(2))
	assert.False(t, v.Allows(1))
}

func TestResolve_Idempotente(t *testing.T) {
	a := access.Resolve(entity.RoleOwner, nil, access.Of(3))
	b := access.Resolve(entity.RoleOwner, nil, access.Of(3))
	assert.Equal(t, a, b)
	orders := ordersAcrossSubsidiaries()
	assert.Equal(t, access.Filter(orders, a, "flour"), access.Filter(orders, b, "flour"))
}

func TestForUser_SinUsuario(t *testing.T) {
	assert.True(t, access.ForUser(nil, access.All()).IsEmpty())
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de lista
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_ManagerVeSoloSubsidiaria1(t *testing.T) {
	manager := &entity.User{ID: 2, Role: entity.RoleManager, SubsidiaryID: intPtr(1)}
	got := access.Filter(ordersAcrossSubsidiaries(), access.ForUser(manager, access.Of(3)), "")
	assert.Equal(t, []int{1}, subsidiariesOf(got))
}

func TestFilter_OwnerSinAlcanceVeLasCuatro(t *testing.T) {
	owner := &entity.User{ID: 1, Role: entity.RoleOwner}
	got := access.Filter(ordersAcrossSubsidiaries(), access.ForUser(owner, access.All()), "")
	assert.Equal(t, []int{1, 2, 3, 4}, subsidiariesOf(got))
}

func TestFilter_OwnerAlcance3EnTodasLasColecciones(t *testing.T) {
	owner := &entity.User{ID: 1, Role: entity.RoleOwner}
	view := access.ForUser(owner, access.Of(3))

	customers := []entity.Customer{{ID: 1, SubsidiaryID: 1}, {ID: 3, SubsidiaryID: 3}, {ID: 4, SubsidiaryID: 4}}
	invoices := []entity.Invoice{{ID: 1, SubsidiaryID: 1}, {ID: 2, SubsidiaryID: 2}, {ID: 3, SubsidiaryID: 3}}
	notes := []entity.DeliveryNote{{ID: 2, SubsidiaryID: 2}, {ID: 3, SubsidiaryID: 3}}

	gotC := access.Filter(customers, view, "")
	gotO := access.Filter(ordersAcrossSubsidiaries(), view, "")
	gotI := access.Filter(invoices, view, "")
	gotD := access.Filter(notes, view, "")

	require.Len(t, gotC, 1)
	require.Len(t, gotO, 1)
	require.Len(t, gotI, 1)
	require.Len(t, gotD, 1)
	assert.Equal(t, 3, gotC[0].SubsidiaryID)
	assert.Equal(t, 3, gotO[0].SubsidiaryID)
	assert.Equal(t, 3, gotI[0].SubsidiaryID)
	assert.Equal(t, 3, gotD[0].SubsidiaryID)
}

func TestFilter_BusquedaSinDistinguirMayusculas(t *testing.T) {
	owner := &entity.User{ID: 1, Role: entity.RoleOwner}
	view := access.ForUser(owner, access.All())

	for _, term := range []string{"Hassan", "hassan", "HASSAN", "  hAsSaN "} {
		got := access.Filter(ordersAcrossSubsidiaries(), view, term)
		require.Len(t, got, 1, term)
		assert.Equal(t, "ORD-2024-003", got[0].OrderNumber)
	}

	assert.Empty(t, access.Filter(ordersAcrossSubsidiaries(), view, "nadie"))
}

func TestFilter_OrdenDeFiltrosNoCambiaResultado(t *testing.T) {
	manager := &entity.User{ID: 5, Role: entity.RoleStaff, SubsidiaryID: intPtr(3)}
	orders := ordersAcrossSubsidiaries()
	view := access.ForUser(manager, access.All())

	accessFirst := access.Filter(access.Filter(orders, view, ""), access.Resolve(entity.RoleOwner, nil, access.All()), "flour")
	searchFirst := access.Filter(access.Filter(orders, access.Resolve(entity.RoleOwner, nil, access.All()), "flour"), view, "")
	combined := access.Filter(orders, view, "flour")

	assert.Equal(t, combined, accessFirst)
	assert.Equal(t, combined, searchFirst)
}

func TestFilter_FiltroPorEstado(t *testing.T) {
	orders := ordersAcrossSubsidiaries()
	orders[0].Status = entity.OrderConfirmed
	orders[1].Status = entity.OrderProcessing
	orders[2].Status = entity.OrderDelivered
	orders[3].Status = entity.OrderDraft
	view := access.Resolve(entity.RoleOwner, nil, access.All())
	status := func(o entity.Order) string { return o.Status }

	got := access.Filter(orders, view, "", access.StatusIs(entity.OrderDelivered, status))
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)

	assert.Len(t, access.Filter(orders, view, "", access.StatusIs("all", status)), 4)
	assert.Len(t, access.Filter(orders, view, "", access.StatusIs("", status)), 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAccess
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccess(t *testing.T) {
	owner := &entity.User{Role: entity.RoleOwner}
	staff := &entity.User{Role: entity.RoleStaff, SubsidiaryID: intPtr(2)}
	orphan := &entity.User{Role: entity.RoleManager}

	assert.True(t, access.CanAccess(owner, 4))
	assert.True(t, access.CanAccess(staff, 2))
	assert.False(t, access.CanAccess(staff, 1))
	assert.False(t, access.CanAccess(orphan, 1))
	assert.False(t, access.CanAccess(nil, 1))
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, access.MatchesSearch("", "x"))
	assert.True(t, access.MatchesSearch("712", "+255712345678"))
	assert.True(t, access.MatchesSearch("inv-2024", "INV-2024-001"))
	assert.False(t, access.MatchesSearch("x"))
	assert.False(t, access.MatchesSearch("zzz", "", "abc"))
}
