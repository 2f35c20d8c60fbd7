package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/zakayo-api/internal/application/dto"
	"github.com/jhoicas/zakayo-api/internal/domain"
	"github.com/jhoicas/zakayo-api/internal/domain/access"
	"github.com/jhoicas/zakayo-api/internal/domain/repository"
	"github.com/jhoicas/zakayo-api/pkg/jwt"
)

// Config configuración de tokens y sesiones.
type Config struct {
	JWTSecret  string
	Issuer     string
	ExpMinutes int
	SessionKey string // clave fija; cada sesión usa "<SessionKey>:<id>"
	SessionTTL time.Duration
}

// AuthUseCase casos de uso de autenticación y sesión: login, logout, restauración y alcance.
type AuthUseCase struct {
	userRepo repository.UserRepository
	subRepo  repository.SubsidiaryRepository
	store    SessionStore
	cfg      Config
	newID    func() string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	subRepo repository.SubsidiaryRepository,
	store SessionStore,
	cfg Config,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, subRepo: subRepo, store: store, cfg: cfg, newID: uuid.NewString}
}

// Login verifica email/password. Credenciales incorrectas devuelven ok=false sin error;
// err solo indica una falla de infraestructura (almacén de sesiones, firma del token).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, bool, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, false, fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if user == nil {
		return nil, false, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, false, nil
	}

	sess := &Session{ID: uc.newID(), User: *user, Scope: access.All()}
	sess.User.PasswordHash = ""
	if err := uc.save(ctx, sess); err != nil {
		return nil, false, err
	}

	claims := jwt.Claims{SessionID: sess.ID, UserID: user.ID, Role: string(user.Role)}
	if user.SubsidiaryID != nil {
		claims.SubsidiaryID = *user.SubsidiaryID
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, uc.cfg.Issuer, uc.cfg.ExpMinutes, claims)
	if err != nil {
		_ = uc.store.Delete(ctx, uc.key(sess.ID))
		return nil, false, fmt.Errorf("auth: generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token:     token,
		SessionID: sess.ID,
		User:      dto.UserFromEntity(&sess.User),
		Scope:     sess.View().Scope().String(),
	}, true, nil
}

// Logout destruye la sesión.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.store.Delete(ctx, uc.key(sessionID)); err != nil {
		return fmt.Errorf("auth: borrar sesión: %w", err)
	}
	return nil
}

// Restore lee la sesión persistida; devuelve (nil, nil) si no existe.
func (uc *AuthUseCase) Restore(ctx context.Context, sessionID string) (*Session, error) {
	raw, err := uc.store.Get(ctx, uc.key(sessionID))
	if err != nil {
		return nil, fmt.Errorf("auth: leer sesión: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	return decodeSession(sessionID, raw)
}

// Authenticate valida el token y restaura la sesión a la que apunta.
// Devuelve ErrUnauthorized si el token es inválido o la sesión ya no existe.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := jwt.Parse(uc.cfg.JWTSecret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	sess, err := uc.Restore(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.User.ID != claims.UserID {
		return nil, domain.ErrUnauthorized
	}
	return sess, nil
}

// SetScope cambia el alcance de la sesión. Solo el Owner puede pivotar; raw es "all" o un id.
func (uc *AuthUseCase) SetScope(ctx context.Context, sessionID, raw string) (*Session, error) {
	sess, err := uc.Restore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	if !sess.User.IsOwner() {
		return nil, domain.ErrForbidden
	}
	scope, err := access.ParseScope(raw)
	if err != nil {
		return nil, domain.NewValidationError("subsidiary", `must be "all" or a subsidiary id`)
	}
	if id, ok := scope.SubsidiaryID(); ok {
		sub, err := uc.subRepo.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("auth: buscar subsidiaria: %w", err)
		}
		if sub == nil {
			return nil, domain.ErrNotFound
		}
	}
	sess.Scope = scope
	if err := uc.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ScopeLabel devuelve el nombre de la subsidiaria de la vista o "All Subsidiaries".
func (uc *AuthUseCase) ScopeLabel(sess *Session) string {
	return ScopeLabel(uc.subRepo, sess.View())
}

// ScopeLabel etiqueta legible de una vista.
func ScopeLabel(subs repository.SubsidiaryRepository, v access.View) string {
	if v.IsEmpty() {
		return "No Subsidiary"
	}
	id, ok := v.SubsidiaryID()
	if !ok {
		return "All Subsidiaries"
	}
	sub, err := subs.GetByID(id)
	if err != nil || sub == nil {
		return fmt.Sprintf("Subsidiary %d", id)
	}
	return sub.Name
}

func (uc *AuthUseCase) save(ctx context.Context, sess *Session) error {
	raw, err := encodeSession(sess)
	if err != nil {
		return fmt.Errorf("auth: codificar sesión: %w", err)
	}
	if err := uc.store.Put(ctx, uc.key(sess.ID), raw, uc.cfg.SessionTTL); err != nil {
		return fmt.Errorf("auth: guardar sesión: %w", err)
	}
	return nil
}

func (uc *AuthUseCase) key(sessionID string) string {
	if sessionID == "" {
		return uc.cfg.SessionKey
	}
	return uc.cfg.SessionKey + ":" + sessionID
}

