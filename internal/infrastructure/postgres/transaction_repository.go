package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, type, amount, payment_method, description, date, created_by, created_at, updated_at`

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository construye el adaptador de transacciones de dinero.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

func scanTransaction(row interface{ Scan(...any) error }) (*entity.Transaction, error) {
	var t entity.Transaction
	var createdBy *string
	if err := row.Scan(&t.ID, &t.Type, &t.Amount, &t.PaymentMethod, &t.Description, &t.Date,
		&createdBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if createdBy != nil {
		t.CreatedBy = *createdBy
	}
	return &t, nil
}

// Create inserta una transacción.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	var createdBy *string
	if t.CreatedBy != "" {
		createdBy = &t.CreatedBy
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.Type, t.Amount, t.PaymentMethod, t.Description, t.Date, createdBy, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t, err := scanTransaction(r.pool.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// List lista transacciones por fecha descendente.
func (r *TransactionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Transaction, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update reescribe los campos editables.
func (r *TransactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE transactions SET type = $2, amount = $3, payment_method = $4, description = $5, date = $6, updated_at = $7
		WHERE id = $1`,
		t.ID, t.Type, t.Amount, t.PaymentMethod, t.Description, t.Date, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una transacción.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
