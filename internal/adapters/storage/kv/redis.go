package kv

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore usa un hash por key ({data, version}) y WATCH/MULTI para
// el check de versión: si otro proceso escribe entre lectura y commit,
// la transacción aborta y se reporta conflicto.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (Record, error) {
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return Record{}, err
	}
	if len(fields) == 0 {
		return Record{}, ErrNotFound
	}

	version, err := strconv.ParseInt(fields["version"], 10, 64)
	if err != nil {
		return Record{}, err
	}
	return Record{Data: []byte(fields["data"]), Version: version}, nil
}

func (s *redisStore) Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	next := expectedVersion + 1

	txn := func(tx *redis.Tx) error {
		fields, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return err
		}

		if len(fields) == 0 {
			if expectedVersion != 0 {
				return ErrVersionConflict
			}
		} else {
			current, err := strconv.ParseInt(fields["version"], 10, 64)
			if err != nil {
				return err
			}
			if current != expectedVersion {
				return ErrVersionConflict
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "data", string(data), "version", next)
			return nil
		})
		return err
	}

	err := s.client.Watch(ctx, txn, key)
	if errors.Is(err, redis.TxFailedErr) {
		return 0, ErrVersionConflict
	}
	if err != nil {
		return 0, err
	}
	return next, nil
}
