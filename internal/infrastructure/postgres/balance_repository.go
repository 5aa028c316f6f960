package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

const balanceColumns = `id, balance_type, date, cash_balance, momo_balance, created_by, created_at`

// BalanceRepo implementación de BalanceRepository sobre PostgreSQL.
type BalanceRepo struct {
	pool *pgxpool.Pool
}

// NewBalanceRepository construye el adaptador de cortes de caja.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

func scanBalance(row interface{ Scan(...any) error }) (*entity.Balance, error) {
	var b entity.Balance
	var createdBy *string
	if err := row.Scan(&b.ID, &b.BalanceType, &b.Date, &b.CashBalance, &b.MomoBalance, &createdBy, &b.CreatedAt); err != nil {
		return nil, err
	}
	if createdBy != nil {
		b.CreatedBy = *createdBy
	}
	return &b, nil
}

// Create inserta un corte de caja.
func (r *BalanceRepo) Create(ctx context.Context, b *entity.Balance) error {
	var createdBy *string
	if b.CreatedBy != "" {
		createdBy = &b.CreatedBy
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO balance (`+balanceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.BalanceType, b.Date, b.CashBalance, b.MomoBalance, createdBy, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert balance: %w", err)
	}
	return nil
}

// GetByID obtiene un corte por ID.
func (r *BalanceRepo) GetByID(ctx context.Context, id string) (*entity.Balance, error) {
	b, err := scanBalance(r.pool.QueryRow(ctx, `SELECT `+balanceColumns+` FROM balance WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return b, nil
}

// List lista cortes por fecha descendente.
func (r *BalanceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Balance, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+balanceColumns+` FROM balance ORDER BY date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list balance: %w", err)
	}
	defer rows.Close()
	var list []*entity.Balance
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
