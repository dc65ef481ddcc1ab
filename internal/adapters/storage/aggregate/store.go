package aggregate

import (
	"context"
	"encoding/json"
	"time"

	"pochita-clinic/internal/adapters/storage/kv"
)

// Key bajo la que vive el agregado completo.
// Se mantiene el nombre histórico del front (localStorage).
const Key = "pochita_db_v1"

// Store carga y guarda el agregado local completo sobre un backend kv.
// La primera lectura siembra el dataset fijo de demo.
type Store struct {
	kv  kv.Store
	loc *time.Location
	now func() time.Time
}

func NewStore(backend kv.Store, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		kv:  backend,
		loc: loc,
		now: time.Now,
	}
}

func (s *Store) load(ctx context.Context) (document, int64, error) {
	rec, err := s.kv.Get(ctx, Key)
	if err == kv.ErrNotFound {
		return s.seedAndSave(ctx)
	}
	if err != nil {
		return document{}, 0, err
	}

	var doc document
	if err := json.Unmarshal(rec.Data, &doc); err != nil {
		return document{}, 0, err
	}
	return doc, rec.Version, nil
}

func (s *Store) seedAndSave(ctx context.Context) (document, int64, error) {
	doc := seedDocument(s.now().In(s.loc))

	data, err := json.Marshal(doc)
	if err != nil {
		return document{}, 0, err
	}

	version, err := s.kv.Put(ctx, Key, data, 0)
	if err == kv.ErrVersionConflict {
		// Otro proceso sembró primero; releer.
		rec, gerr := s.kv.Get(ctx, Key)
		if gerr != nil {
			return document{}, 0, gerr
		}
		var existing document
		if uerr := json.Unmarshal(rec.Data, &existing); uerr != nil {
			return document{}, 0, uerr
		}
		return existing, rec.Version, nil
	}
	if err != nil {
		return document{}, 0, err
	}
	return doc, version, nil
}

// mutate es el read-modify-write del blob completo: no hay updates
// parciales ni transacciones por entidad, solo el version stamp.
func (s *Store) mutate(ctx context.Context, fn func(*document) error) error {
	doc, version, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := fn(&doc); err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = s.kv.Put(ctx, Key, data, version)
	return err
}
