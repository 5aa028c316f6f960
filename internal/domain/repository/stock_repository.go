package repository

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// StockPositionRepository define el puerto para la posición de stock por producto.
// Usado dentro de transacciones para garantizar consistencia.
type StockPositionRepository interface {
	GetByID(ctx context.Context, id string) (*entity.StockPosition, error)
	GetByProduct(ctx context.Context, productID string) (*entity.StockPosition, error)
	// GetByProductForUpdate bloquea la fila (SELECT FOR UPDATE).
	GetByProductForUpdate(ctx context.Context, productID string) (*entity.StockPosition, error)
	Create(ctx context.Context, pos *entity.StockPosition) error
	Update(ctx context.Context, pos *entity.StockPosition) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.StockPosition, error)
}
