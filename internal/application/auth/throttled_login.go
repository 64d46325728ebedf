package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/rustock/internal/application/dto"
	"github.com/jhoicas/rustock/internal/domain"
)

// ThrottledLogin aplica la política de intentos por usuario al login HTTP: tras maxAttempts
// fallos el usuario queda bloqueado durante lockout.
type ThrottledLogin struct {
	managers    *ManagerUseCase
	store       AttemptStore
	maxAttempts int
	lockout     time.Duration
}

// NewThrottledLogin construye el login con bloqueo. maxAttempts <= 0 usa DefaultMaxAttempts.
func NewThrottledLogin(managers *ManagerUseCase, store AttemptStore, maxAttempts int, lockout time.Duration) *ThrottledLogin {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &ThrottledLogin{managers: managers, store: store, maxAttempts: maxAttempts, lockout: lockout}
}

// Login devuelve domain.ErrTooManyAttempts si el usuario está bloqueado, domain.ErrUnauthorized
// si las credenciales no coinciden. Un login correcto limpia el contador.
func (t *ThrottledLogin) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	key := "login:" + in.Username
	failures, err := t.store.Failures(ctx, key)
	if err != nil {
		return nil, err
	}
	if failures >= t.maxAttempts {
		return nil, domain.ErrTooManyAttempts
	}

	out, err := t.managers.Login(ctx, in)
	if errors.Is(err, domain.ErrUnauthorized) {
		n, recErr := t.store.RecordFailure(ctx, key, t.lockout)
		if recErr != nil {
			return nil, recErr
		}
		t.managers.log.Warn().Str("username", in.Username).Int("failures", n).Msg("login fallido")
		if n >= t.maxAttempts {
			return nil, domain.ErrTooManyAttempts
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if err := t.store.Reset(ctx, key); err != nil {
		return nil, err
	}
	return out, nil
}
