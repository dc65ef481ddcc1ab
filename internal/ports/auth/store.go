package auth

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session asocia un bearer token del servicio remoto con el usuario logueado.
// El rol se confía tal cual vino en el login; no se re-valida contra el
// servidor en cada request (simplificación documentada, no frontera de seguridad).
type Session struct {
	Token     string
	User      Claims
	CreatedAt time.Time
}

// Store persiste sesiones indexadas por token.
type Store interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}
