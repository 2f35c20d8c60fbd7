// Package session implementa el almacén clave-valor donde se persiste la sesión del usuario.
// Es un upsert/delete simple: no hay política de desalojo más allá del TTL.
package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore almacén en proceso. Sirve para desarrollo y tests; la sesión se pierde al reiniciar.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

type memoryItem struct {
	value     []byte
	expiresAt time.Time // cero: no expira
}

// NewMemoryStore construye un almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]memoryItem), now: time.Now}
}

// Put guarda (o reemplaza) el valor de key. ttl <= 0 significa sin expiración.
func (s *MemoryStore) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	item := memoryItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.items[key] = item
	s.mu.Unlock()
	return nil
}

// Get devuelve (nil, nil) si la clave no existe o expiró.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	item, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if s.expired(item) {
		s.mu.Lock()
		// Un Put concurrente pudo renovar la clave entre ambos locks.
		if current, ok := s.items[key]; ok && s.expired(current) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return nil, nil
	}
	return append([]byte(nil), item.value...), nil
}

func (s *MemoryStore) expired(item memoryItem) bool {
	return !item.expiresAt.IsZero() && !s.now().Before(item.expiresAt)
}

// Delete elimina la clave; no falla si no existe.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}
