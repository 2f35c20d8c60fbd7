// Package memory implementa los puertos de repositorio sobre colecciones en memoria.
// Los datos se siembran al arrancar (ver Seed) y se pierden al reiniciar el proceso.
package memory

import (
	"sort"
	"sync"
)

// table es una colección indexada por ID segura para uso concurrente.
// Guarda copias: lo que entra y lo que sale nunca comparte memoria con el llamador.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int]T
	nextID int
	idOf   func(*T) int
	setID  func(*T, int)
	clone  func(T) T
}

func newTable[T any](idOf func(*T) int, setID func(*T, int), clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[int]T), nextID: 1, idOf: idOf, setID: setID, clone: clone}
}

// insert asigna el siguiente ID si el valor no trae uno.
func (t *table[T]) insert(v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.insertLocked(v)
}

// insertNumbered inserta v tras llamar assign con el consecutivo (tamaño + 1),
// todo bajo el mismo lock: dos altas concurrentes nunca reciben el mismo número.
func (t *table[T]) insertNumbered(v *T, assign func(v *T, seq int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	assign(v, len(t.rows)+1)
	t.insertLocked(v)
}

func (t *table[T]) insertLocked(v *T) {
	id := t.idOf(v)
	if id <= 0 {
		id = t.nextID
		t.setID(v, id)
	}
	if id >= t.nextID {
		t.nextID = id + 1
	}
	t.rows[id] = t.clone(*v)
}

// get devuelve (nil, nil) si no existe, igual que los adaptadores SQL.
func (t *table[T]) get(id int) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	out := t.clone(v)
	return &out, nil
}

// replace actualiza una fila existente; informa false si no existe.
func (t *table[T]) replace(v *T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.idOf(v)
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = t.clone(*v)
	return true
}

// list devuelve todas las filas ordenadas por ID.
func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]int, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.clone(t.rows[id]))
	}
	return out
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
