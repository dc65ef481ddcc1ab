package kv

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// OpenPostgres abre un pool a Postgres usando pgx (database/sql).
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema crea la tabla del blob si no existe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_records (
			key        text PRIMARY KEY,
			version    bigint NOT NULL,
			data       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`)
	return err
}

type postgresStore struct {
	db *sql.DB
}

// NewPostgresStore guarda cada key como una fila con columna de versión;
// el UPDATE condicionado a la versión es el check optimista.
func NewPostgresStore(db *sql.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Get(ctx context.Context, key string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT data, version FROM kv_records WHERE key = $1
	`, key)

	var rec Record
	if err := row.Scan(&rec.Data, &rec.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

func (s *postgresStore) Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	next := expectedVersion + 1

	if expectedVersion == 0 {
		res, err := s.db.ExecContext(ctx, `
			INSERT INTO kv_records (key, version, data, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (key) DO NOTHING
		`, key, next, data)
		if err != nil {
			return 0, err
		}
		// Si la fila ya existía, el insert no hizo nada.
		if n, _ := res.RowsAffected(); n == 0 {
			return 0, ErrVersionConflict
		}
		return next, nil
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE kv_records
		SET version = $3, data = $4, updated_at = now()
		WHERE key = $1 AND version = $2
	`, key, expectedVersion, next, data)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return 0, ErrVersionConflict
	}
	return next, nil
}
