package auth

import (
	"context"
	"time"
)

// SessionStore almacén clave-valor de sesiones (upsert/delete simple).
// Get devuelve (nil, nil) cuando la clave no existe.
type SessionStore interface {
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
