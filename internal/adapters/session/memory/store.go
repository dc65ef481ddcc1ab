package memory

import (
	"context"
	"strings"
	"sync"

	"pochita-clinic/internal/ports/auth"
)

type store struct {
	mu      sync.RWMutex
	byToken map[string]auth.Session
}

// NewStore crea un session store in-memory (dev y tests).
// Sin expiración: el token vive hasta logout o reinicio del proceso.
func NewStore() auth.Store {
	return &store{byToken: make(map[string]auth.Session)}
}

func (s *store) Put(ctx context.Context, sess auth.Session) error {
	if strings.TrimSpace(sess.Token) == "" {
		return auth.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[sess.Token] = sess
	return nil
}

func (s *store) Get(ctx context.Context, token string) (auth.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byToken[token]
	if !ok {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return sess, nil
}

func (s *store) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, token)
	return nil
}
