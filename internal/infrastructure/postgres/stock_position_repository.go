package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.StockPositionRepository = (*StockPositionRepo)(nil)

const positionColumns = `id, product_id, quantity, price_per_unit, total_price, date, updated_at`

// StockPositionRepo implementación de StockPositionRepository sobre PostgreSQL (usable con pool o tx).
type StockPositionRepo struct {
	q Querier
}

// NewStockPositionRepository construye el adaptador de posiciones. Pasar pool o tx (Querier).
func NewStockPositionRepository(q Querier) *StockPositionRepo {
	return &StockPositionRepo{q: q}
}

func scanPosition(row interface{ Scan(...any) error }) (*entity.StockPosition, error) {
	var p entity.StockPosition
	if err := row.Scan(&p.ID, &p.ProductID, &p.Quantity, &p.PricePerUnit, &p.TotalPrice, &p.Date, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *StockPositionRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.StockPosition, error) {
	p, err := scanPosition(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// GetByID obtiene una posición por ID.
func (r *StockPositionRepo) GetByID(ctx context.Context, id string) (*entity.StockPosition, error) {
	return r.getOne(ctx, "get stock", `SELECT `+positionColumns+` FROM stock WHERE id = $1`, id)
}

// GetByProduct obtiene la posición de un producto sin bloquear.
func (r *StockPositionRepo) GetByProduct(ctx context.Context, productID string) (*entity.StockPosition, error) {
	return r.getOne(ctx, "get stock by product", `SELECT `+positionColumns+` FROM stock WHERE product_id = $1`, productID)
}

// GetByProductForUpdate obtiene la posición y bloquea la fila (SELECT FOR UPDATE).
func (r *StockPositionRepo) GetByProductForUpdate(ctx context.Context, productID string) (*entity.StockPosition, error) {
	return r.getOne(ctx, "get stock for update", `SELECT `+positionColumns+` FROM stock WHERE product_id = $1 FOR UPDATE`, productID)
}

// Create inserta una posición. product_id es único.
func (r *StockPositionRepo) Create(ctx context.Context, pos *entity.StockPosition) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock (`+positionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		pos.ID, pos.ProductID, pos.Quantity, pos.PricePerUnit, pos.TotalPrice, pos.Date, pos.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe stock para el producto %s", domain.ErrDuplicate, pos.ProductID)
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// Update reescribe cantidad, costo base, total y fecha.
func (r *StockPositionRepo) Update(ctx context.Context, pos *entity.StockPosition) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE stock SET quantity = $2, price_per_unit = $3, total_price = $4, date = $5, updated_at = $6
		WHERE id = $1`,
		pos.ID, pos.Quantity, pos.PricePerUnit, pos.TotalPrice, pos.Date, pos.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una posición.
func (r *StockPositionRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista posiciones por fecha de actualización descendente.
func (r *StockPositionRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockPosition, error) {
	rows, err := r.q.Query(ctx, `SELECT `+positionColumns+` FROM stock ORDER BY updated_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockPosition
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
