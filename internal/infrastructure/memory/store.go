// Package memory implementa los puertos de persistencia en memoria con la misma
// semántica transaccional que el adaptador PostgreSQL. Se usa en tests y demos.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// table guarda filas por ID conservando el orden de inserción.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{rows: make(map[string]T, len(t.rows)), order: append([]string(nil), t.order...)}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) del(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, k := range t.order {
		if k == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func page[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return nil
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

type state struct {
	products     *table[entity.Product]
	positions    *table[entity.StockPosition]
	stockOuts    *table[entity.StockOutRecord]
	users        *table[entity.User]
	balances     *table[entity.Balance]
	transactions *table[entity.Transaction]
	movements    []entity.StockMovement
}

func newState() *state {
	return &state{
		products:     newTable[entity.Product](),
		positions:    newTable[entity.StockPosition](),
		stockOuts:    newTable[entity.StockOutRecord](),
		users:        newTable[entity.User](),
		balances:     newTable[entity.Balance](),
		transactions: newTable[entity.Transaction](),
	}
}

func (s *state) clone() *state {
	return &state{
		products:     s.products.clone(),
		positions:    s.positions.clone(),
		stockOuts:    s.stockOuts.clone(),
		users:        s.users.clone(),
		balances:     s.balances.clone(),
		transactions: s.transactions.clone(),
		movements:    append([]entity.StockMovement(nil), s.movements...),
	}
}

// Store es una base de datos en memoria. Run serializa las transacciones con un
// mutex global y trabaja sobre una copia que solo se publica si fn no falla.
type Store struct {
	mu       sync.Mutex
	state    *state
	failures map[string]error
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{state: newState(), failures: make(map[string]error)}
}

// FailNext hace que la próxima llamada a op (por ejemplo "movements.create")
// devuelva err. Permite probar el rollback.
func (s *Store) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// Run ejecuta fn con repositorios atados a una transacción. Si fn devuelve error
// los cambios se descartan.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	positionRepo repository.StockPositionRepository,
	movementRepo repository.StockMovementRepository,
	stockOutRepo repository.StockOutRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.state.clone()
	v := view{store: s, tx: tx}
	if err := fn(productRepo{v}, positionRepo{v}, movementRepo{v}, stockOutRepo{v}); err != nil {
		return err
	}
	s.state = tx
	return nil
}

// Products devuelve el repositorio de productos fuera de transacción.
func (s *Store) Products() repository.ProductRepository { return productRepo{view{store: s}} }

// Positions devuelve el repositorio de posiciones fuera de transacción.
func (s *Store) Positions() repository.StockPositionRepository { return positionRepo{view{store: s}} }

// Movements devuelve el repositorio del historial fuera de transacción.
func (s *Store) Movements() repository.StockMovementRepository { return movementRepo{view{store: s}} }

// StockOuts devuelve el repositorio de salidas fuera de transacción.
func (s *Store) StockOuts() repository.StockOutRepository { return stockOutRepo{view{store: s}} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return userRepo{view{store: s}} }

// Balances devuelve el repositorio de cortes de caja.
func (s *Store) Balances() repository.BalanceRepository { return balanceRepo{view{store: s}} }

// Transactions devuelve el repositorio de transacciones de dinero.
func (s *Store) Transactions() repository.TransactionRepository {
	return transactionRepo{view{store: s}}
}

// view resuelve el estado sobre el que opera un repositorio: la copia de la
// transacción (el mutex ya está tomado) o el estado publicado.
type view struct {
	store *Store
	tx    *state
}

func (v view) do(ctx context.Context, op string, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v.tx == nil {
		v.store.mu.Lock()
		defer v.store.mu.Unlock()
	}
	if err, ok := v.store.failures[op]; ok {
		delete(v.store.failures, op)
		return fmt.Errorf("%s: %w", op, err)
	}
	if v.tx != nil {
		return fn(v.tx)
	}
	return fn(v.store.state)
}

func sortMovements(list []*entity.StockMovement) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
}
