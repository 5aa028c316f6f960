package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// StockMovementRepository define el puerto del historial de stock (solo append).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByDateRange devuelve los movimientos con from <= created_at <= to, en orden cronológico.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.StockMovement, error)
	// FirstByProduct devuelve el movimiento más antiguo del producto o nil.
	FirstByProduct(ctx context.Context, productID string) (*entity.StockMovement, error)
}
