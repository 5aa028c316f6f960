package repository

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// BalanceRepository define el puerto de persistencia para los cortes de caja.
type BalanceRepository interface {
	Create(ctx context.Context, balance *entity.Balance) error
	GetByID(ctx context.Context, id string) (*entity.Balance, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Balance, error)
}
