package ledger

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de stock: si fn devuelve error no queda ninguna escritura.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		positionRepo repository.StockPositionRepository,
		movementRepo repository.StockMovementRepository,
		stockOutRepo repository.StockOutRepository,
	) error) error
}

// ReportGenerator genera la representación PDF del reporte de movimientos.
type ReportGenerator interface {
	GenerateMovementsReport(ctx context.Context, report *dto.MovementsReport) ([]byte, error)
}
