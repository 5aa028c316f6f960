package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

const stockOutColumns = `id, product_id, quantity, price_per_unit, total_price, purchase_price_per_unit, date, created_by, created_at, updated_at`

// StockOutRepo implementación de StockOutRepository sobre PostgreSQL (usable con pool o tx).
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador de salidas. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

func scanStockOut(row interface{ Scan(...any) error }) (*entity.StockOutRecord, error) {
	var s entity.StockOutRecord
	var createdBy *string
	if err := row.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.PricePerUnit, &s.TotalPrice,
		&s.PurchasePricePerUnit, &s.Date, &createdBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if createdBy != nil {
		s.CreatedBy = *createdBy
	}
	return &s, nil
}

// Create inserta un registro de salida.
func (r *StockOutRepo) Create(ctx context.Context, rec *entity.StockOutRecord) error {
	var createdBy *string
	if rec.CreatedBy != "" {
		createdBy = &rec.CreatedBy
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_out (`+stockOutColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.ProductID, rec.Quantity, rec.PricePerUnit, rec.TotalPrice,
		rec.PurchasePricePerUnit, rec.Date, createdBy, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock out: %w", err)
	}
	return nil
}

// GetByID obtiene una salida por ID.
func (r *StockOutRepo) GetByID(ctx context.Context, id string) (*entity.StockOutRecord, error) {
	s, err := scanStockOut(r.q.QueryRow(ctx, `SELECT `+stockOutColumns+` FROM stock_out WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock out: %w", err)
	}
	return s, nil
}

// GetByIDForUpdate obtiene la salida con SELECT ... FOR UPDATE (usar dentro de una transacción).
func (r *StockOutRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.StockOutRecord, error) {
	s, err := scanStockOut(r.q.QueryRow(ctx, `SELECT `+stockOutColumns+` FROM stock_out WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock out for update: %w", err)
	}
	return s, nil
}

// List lista salidas por fecha descendente.
func (r *StockOutRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockOutRecord, error) {
	rows, err := r.q.Query(ctx, `SELECT `+stockOutColumns+` FROM stock_out ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock out: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockOutRecord
	for rows.Next() {
		s, err := scanStockOut(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock out: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update reescribe cantidad, precios y fecha de una salida.
func (r *StockOutRepo) Update(ctx context.Context, rec *entity.StockOutRecord) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE stock_out SET quantity = $2, price_per_unit = $3, total_price = $4, date = $5, updated_at = $6
		WHERE id = $1`,
		rec.ID, rec.Quantity, rec.PricePerUnit, rec.TotalPrice, rec.Date, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock out: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una salida.
func (r *StockOutRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_out WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock out: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
