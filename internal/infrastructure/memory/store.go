// Package memory implementa los repositorios y el TxRunner en memoria.
// Se usa en tests y con STORE_DRIVER=memory; el estado se pierde al reiniciar.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stock-ledger/internal/application/ports"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ ports.TxRunner = (*Store)(nil)

// state son las tres "tablas". Se clona completo al iniciar una transacción.
type state struct {
	products  map[string]entity.Product
	locations map[string]entity.Location
	movements map[int64]entity.Movement
	nextID    int64
}

func newState() *state {
	return &state{
		products:  make(map[string]entity.Product),
		locations: make(map[string]entity.Location),
		movements: make(map[int64]entity.Movement),
		nextID:    1,
	}
}

func (s *state) clone() *state {
	c := &state{
		products:  make(map[string]entity.Product, len(s.products)),
		locations: make(map[string]entity.Location, len(s.locations)),
		movements: make(map[int64]entity.Movement, len(s.movements)),
		nextID:    s.nextID,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.locations {
		c.locations[k] = v
	}
	for k, v := range s.movements {
		c.movements[k] = v
	}
	return c
}

// Store es el handle del almacenamiento en memoria. Las transacciones se serializan
// con un lock de escritura y trabajan sobre una copia que reemplaza al estado al
// confirmar; si fn falla la copia se descarta.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// access da acceso al estado: dentro de una tx usa la copia sin lock; fuera de ella
// toma el lock del Store.
type access struct {
	store *Store
	tx    *state
}

func (a access) read(fn func(st *state) error) error {
	if a.tx != nil {
		return fn(a.tx)
	}
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	return fn(a.store.st)
}

func (a access) write(fn func(st *state) error) error {
	if a.tx != nil {
		return fn(a.tx)
	}
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	// Escritura fuera de tx: igual atómica, se aplica sobre copia.
	c := a.store.st.clone()
	if err := fn(c); err != nil {
		return err
	}
	a.store.st = c
	return nil
}

// Products devuelve el repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{a: access{store: s}} }

// Locations devuelve el repositorio de ubicaciones fuera de transacción.
func (s *Store) Locations() *LocationRepo { return &LocationRepo{a: access{store: s}} }

// Movements devuelve el repositorio del ledger fuera de transacción.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{a: access{store: s}} }

// Run ejecuta fn sobre una copia del estado y la confirma solo si fn no devuelve error.
func (s *Store) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	locations repository.LocationRepository,
	movements repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.st.clone()
	a := access{store: s, tx: tx}
	if err := fn(&ProductRepo{a: a}, &LocationRepo{a: a}, &MovementRepo{a: a}); err != nil {
		return err
	}
	s.st = tx
	return nil
}
