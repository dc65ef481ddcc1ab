// Package kv define el backend clave-valor versionado donde vive el
// agregado local. Un solo registro por key; la escritura exige la versión
// leída (optimistic concurrency, sin retry automático).
package kv

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("kv: key not found")

	// ErrVersionConflict indica que otro escritor ganó entre la lectura
	// y la escritura. El caller decide qué hacer (acá: fallar la operación).
	ErrVersionConflict = errors.New("kv: version conflict")
)

type Record struct {
	Data    []byte
	Version int64
}

type Store interface {
	Get(ctx context.Context, key string) (Record, error)

	// Put escribe data si la versión actual coincide con expectedVersion.
	// expectedVersion == 0 significa "crear" (la key no debe existir).
	// Devuelve la versión nueva.
	Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error)
}
