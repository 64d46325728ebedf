package auth

import (
	"context"
	"sync"
	"time"
)

// AttemptStore cuenta fallos de login por clave (usuario) con expiración.
type AttemptStore interface {
	// Failures devuelve los fallos vigentes para key.
	Failures(ctx context.Context, key string) (int, error)
	// RecordFailure suma un fallo; el contador expira ttl después del primer fallo.
	RecordFailure(ctx context.Context, key string, ttl time.Duration) (int, error)
	Reset(ctx context.Context, key string) error
}

// MaxAttemptKeys claves que guarda MemoryAttemptStore; al llenarse se descarta la que vence primero.
const MaxAttemptKeys = 10000

type attemptEntry struct {
	count     int
	expiresAt time.Time
}

// MemoryAttemptStore implementación en proceso, usada cuando no hay Redis configurado.
type MemoryAttemptStore struct {
	mu      sync.Mutex
	entries map[string]attemptEntry
	now     func() time.Time
}

// NewMemoryAttemptStore crea el store en memoria.
func NewMemoryAttemptStore() *MemoryAttemptStore {
	return &MemoryAttemptStore{entries: make(map[string]attemptEntry), now: time.Now}
}

func (s *MemoryAttemptStore) Failures(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok {
		return 0, nil
	}
	return e.count, nil
}

func (s *MemoryAttemptStore) RecordFailure(_ context.Context, key string, ttl time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok {
		s.sweep()
		e = attemptEntry{expiresAt: s.now().Add(ttl)}
	}
	e.count++
	s.entries[key] = e
	return e.count, nil
}

func (s *MemoryAttemptStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Len cantidad de claves guardadas, vigentes o no.
func (s *MemoryAttemptStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// sweep borra las entradas expiradas y, si aún no hay lugar para una clave nueva,
// la que vence primero. Requiere s.mu.
func (s *MemoryAttemptStore) sweep() {
	now := s.now()
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	for len(s.entries) >= MaxAttemptKeys {
		var oldest string
		var first time.Time
		for k, e := range s.entries {
			if oldest == "" || e.expiresAt.Before(first) {
				oldest, first = k, e.expiresAt
			}
		}
		delete(s.entries, oldest)
	}
}

// live devuelve la entrada si no expiró; las expiradas se borran. Requiere s.mu.
func (s *MemoryAttemptStore) live(key string) (attemptEntry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return attemptEntry{}, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return attemptEntry{}, false
	}
	return e, true
}
