package repository

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// StockOutRepository define el puerto de persistencia para StockOutRecord.
type StockOutRepository interface {
	Create(ctx context.Context, record *entity.StockOutRecord) error
	GetByID(ctx context.Context, id string) (*entity.StockOutRecord, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.StockOutRecord, error)
	List(ctx context.Context, limit, offset int) ([]*entity.StockOutRecord, error)
	Update(ctx context.Context, record *entity.StockOutRecord) error
	Delete(ctx context.Context, id string) error
}
