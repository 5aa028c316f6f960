package repository

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id string) error
}
