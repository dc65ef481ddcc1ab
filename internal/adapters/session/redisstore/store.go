package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"pochita-clinic/internal/ports/auth"
)

const keyPrefix = "session:"

type store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore persiste sesiones en Redis con TTL, para que un reinicio del
// servicio no desloguee a todo el mundo.
func NewStore(client *redis.Client, ttl time.Duration) auth.Store {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &store{client: client, ttl: ttl}
}

type sessionRecord struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *store) Put(ctx context.Context, sess auth.Session) error {
	rec := sessionRecord{
		Token:     sess.Token,
		UserID:    sess.User.UserID,
		Name:      sess.User.Name,
		Email:     sess.User.Email,
		Phone:     sess.User.Phone,
		Role:      string(sess.User.Role),
		CreatedAt: sess.CreatedAt,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sess.Token, data, s.ttl).Err()
}

func (s *store) Get(ctx context.Context, token string) (auth.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	if err != nil {
		return auth.Session{}, err
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return auth.Session{}, err
	}

	role, _ := auth.ParseRole(rec.Role)
	return auth.Session{
		Token: rec.Token,
		User: auth.Claims{
			UserID: rec.UserID,
			Name:   rec.Name,
			Email:  rec.Email,
			Phone:  rec.Phone,
			Role:   role,
		},
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (s *store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
