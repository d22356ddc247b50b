// Package memory implementa los repositorios en memoria. Sirve para desarrollo local
// (STORAGE_DRIVER=memory) y para las pruebas del libro de movimientos.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

type state struct {
	categories map[string]entity.Category
	products   map[string]entity.Product
	users      map[string]entity.User
	movements  []entity.Movement // orden de confirmación; solo se agrega al final

	// movementIDs indexa los movimientos confirmados. Lo comparten todas las copias y
	// solo se escribe con el mutex tomado al confirmar.
	movementIDs map[string]struct{}
	// base es la cantidad de movimientos confirmados cuando se tomó la copia.
	base int
}

func newState() *state {
	return &state{
		categories:  make(map[string]entity.Category),
		products:    make(map[string]entity.Product),
		users:       make(map[string]entity.User),
		movementIDs: make(map[string]struct{}),
	}
}

// clone copia catálogo y usuarios. Los movimientos no se copian: la transacción comparte el
// arreglo y agrega después de base, posiciones que el estado publicado no ve.
func (st *state) clone() *state {
	out := &state{
		categories:  make(map[string]entity.Category, len(st.categories)),
		products:    make(map[string]entity.Product, len(st.products)),
		users:       make(map[string]entity.User, len(st.users)),
		movements:   st.movements,
		movementIDs: st.movementIDs,
		base:        len(st.movements),
	}
	for k, v := range st.categories {
		out.categories[k] = v
	}
	for k, v := range st.products {
		out.products[k] = v
	}
	for k, v := range st.users {
		out.users[k] = v
	}
	return out
}

// pending movimientos agregados por la transacción que aún no se confirmaron.
func (st *state) pending() []entity.Movement {
	return st.movements[st.base:]
}

// commit registra los movimientos pendientes en el índice compartido.
func (st *state) commit() {
	for _, m := range st.pending() {
		st.movementIDs[m.ID] = struct{}{}
	}
	st.base = len(st.movements)
}

// Store guarda todo el estado detrás de un único mutex. Run lo mantiene tomado durante toda
// la transacción, trabaja sobre una copia y la publica solo si fn termina sin error.
// La copia cuesta O(categorías + productos + usuarios); el historial de movimientos no se
// copia, así que una escritura no crece con la cantidad de movimientos registrados.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// view enlaza los repositorios al estado publicado (tx == nil) o a la copia de una transacción.
type view struct {
	store *Store
	tx    *state
}

func (v view) read(fn func(st *state) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.st)
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{view{store: s}} }

// Categories repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{view{store: s}} }

// Movements repositorio de movimientos fuera de transacción (lecturas).
func (s *Store) Movements() *MovementRepo { return &MovementRepo{view{store: s}} }

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{view{store: s}} }

var _ inventory.TxRunner = (*Store)(nil)

// Run ejecuta fn de forma atómica y aislada respecto de cualquier otra operación del almacén.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	userRepo repository.UserRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w: %v", domain.ErrStorageUnavailable, err)
	}
	tx := s.st.clone()
	v := view{store: s, tx: tx}
	if err := fn(&ProductRepo{v}, &MovementRepo{v}, &UserRepo{v}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit: %w: %v", domain.ErrStorageUnavailable, err)
	}
	tx.commit()
	s.st = tx
	return nil
}
