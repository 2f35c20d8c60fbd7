package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zakayo-api/internal/application/auth"
	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/memory"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testPassword = "password123"

func newAuth(t *testing.T) (*auth.AuthUseCase, *session.MemoryStore) {
	t.Helper()
	store, err := memory.Seed(testPassword)
	require.NoError(t, err)
	kv := session.NewMemoryStore()
	uc := auth.NewAuthUseCase(store.Users, store.Subsidiaries, kv, auth.Config{
		JWTSecret:  "test-secret",
		Issuer:     "zakayo-test",
		ExpMinutes: 60,
		SessionKey: "zakayo-user",
		SessionTTL: time.Hour,
	})
	return uc, kv
}

func login(t *testing.T, uc *auth.AuthUseCase, email string) *dto.LoginResponse {
	t.Helper()
	resp, ok, err := uc.Login(context.Background(), dto.LoginRequest{Email: email, Password: testPassword})
	require.NoError(t, err)
	require.True(t, ok)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Logout / Restore
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectasPersistenSesion(t *testing.T) {
	uc, kv := newAuth(t)
	resp := login(t, uc, "john@agrovet.com")

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "John Manager", resp.User.Name)
	assert.Equal(t, "Manager", resp.User.Role)
	require.NotNil(t, resp.User.SubsidiaryID)
	assert.Equal(t, 1, *resp.User.SubsidiaryID)
	assert.Equal(t, "1", resp.Scope, "un Manager queda fijado a su subsidiaria")

	raw, err := kv.Get(context.Background(), "zakayo-user:"+resp.SessionID)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"email":"john@agrovet.com"`)
	assert.NotContains(t, string(raw), "$2a$", "el hash de contraseña no se persiste")
}

func TestLogin_CredencialesIncorrectasDevuelveFalseSinError(t *testing.T) {
	uc, _ := newAuth(t)
	cases := []dto.LoginRequest{
		{Email: "owner@zakayo.com", Password: "wrong"},
		{Email: "nadie@zakayo.com", Password: testPassword},
	}
	for _, in := range cases {
		resp, ok, err := uc.Login(context.Background(), in)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, resp)
	}
}

func TestLogout_BorraSesion(t *testing.T) {
	uc, _ := newAuth(t)
	resp := login(t, uc, "owner@zakayo.com")

	sess, err := uc.Restore(context.Background(), resp.SessionID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, 1, sess.User.ID)

	require.NoError(t, uc.Logout(context.Background(), resp.SessionID))
	sess, err = uc.Restore(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Nil(t, sess)

	_, err = uc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "el token de una sesión cerrada no es válido")
}

func TestAuthenticate(t *testing.T) {
	uc, _ := newAuth(t)
	resp := login(t, uc, "mary.sales@example.com")

	sess, err := uc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 3, sess.User.ID)
	assert.True(t, sess.View().Allows(2))
	assert.False(t, sess.View().Allows(1))

	_, err = uc.Authenticate(context.Background(), "token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetScope
// ──────────────────────────────────────────────────────────────────────────────

func TestSetScope_OwnerPivotaYSePersiste(t *testing.T) {
	uc, _ := newAuth(t)
	resp := login(t, uc, "owner@zakayo.com")
	assert.Equal(t, "all", resp.Scope)

	sess, err := uc.SetScope(context.Background(), resp.SessionID, "3")
	require.NoError(t, err)
	assert.Equal(t, "Zakayo Sembe", uc.ScopeLabel(sess))

	restored, err := uc.Restore(context.Background(), resp.SessionID)
	require.NoError(t, err)
	id, ok := restored.Scope.SubsidiaryID()
	require.True(t, ok)
	assert.Equal(t, 3, id)

	sess, err = uc.SetScope(context.Background(), resp.SessionID, "all")
	require.NoError(t, err)
	assert.True(t, sess.View().IsAll())
	assert.Equal(t, "All Subsidiaries", uc.ScopeLabel(sess))
}

func TestSetScope_NoOwnerProhibido(t *testing.T) {
	uc, _ := newAuth(t)
	resp := login(t, uc, "charlie.brown@example.com")
	_, err := uc.SetScope(context.Background(), resp.SessionID, "all")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSetScope_SubsidiariaInexistenteOInvalida(t *testing.T) {
	uc, _ := newAuth(t)
	resp := login(t, uc, "owner@zakayo.com")

	_, err := uc.SetScope(context.Background(), resp.SessionID, "9")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SetScope(context.Background(), resp.SessionID, "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetScope(context.Background(), "sin-sesion", "all")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSession_ViewSinSesion(t *testing.T) {
	var s *auth.Session
	assert.True(t, s.View().IsEmpty())
	assert.Equal(t, access.All(), (&auth.Session{}).Scope)
}
