package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Registry owns the live carts, one per terminal session. Carts exist only in
// memory; an abandoned session's cart disappears with the process.
type Registry struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*Cart
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{carts: make(map[uuid.UUID]*Cart)}
}

// Get returns the session's cart, creating it on first use.
func (r *Registry) Get(sessionID uuid.UUID) *Cart {
	r.mu.RLock()
	c, ok := r.carts[sessionID]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.carts[sessionID]; ok {
		return c
	}
	c = New()
	r.carts[sessionID] = c
	return c
}

// Peek returns the session's cart without creating one.
func (r *Registry) Peek(sessionID uuid.UUID) (*Cart, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[sessionID]
	return c, ok
}

// Drop discards the session's cart.
func (r *Registry) Drop(sessionID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

// Len reports the number of live carts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}
