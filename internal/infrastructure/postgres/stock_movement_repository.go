package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, quantity, price_per_unit, total_price, cost_per_unit, kind, created_by, created_at`

// StockMovementRepo implementación del historial de stock (solo INSERT).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func scanMovement(row interface{ Scan(...any) error }) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var createdBy *string
	if err := row.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.PricePerUnit, &m.TotalPrice,
		&m.CostPerUnit, &m.Kind, &createdBy, &m.CreatedAt); err != nil {
		return nil, err
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}

// Create registra un movimiento (append-only).
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	var createdBy *string
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_history (`+movementColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.ProductID, m.Quantity, m.PricePerUnit, m.TotalPrice, m.CostPerUnit, m.Kind, createdBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByDateRange devuelve los movimientos con from <= created_at <= to en orden cronológico.
func (r *StockMovementRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+movementColumns+` FROM stock_history
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at, id`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// FirstByProduct devuelve el movimiento más antiguo del producto.
func (r *StockMovementRepo) FirstByProduct(ctx context.Context, productID string) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `
		SELECT `+movementColumns+` FROM stock_history
		WHERE product_id = $1 ORDER BY created_at, id LIMIT 1`, productID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("first stock movement: %w", err)
	}
	return m, nil
}
