package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

// resolveRange convierte startDate/endDate (YYYY-MM-DD, vacíos = hoy) en
// [inicio 00:00:00, fin 23:59:59.999999999].
func resolveRange(req dto.MovementsByDateRequest, now time.Time) (time.Time, time.Time, error) {
	today := startOfDay(now)
	start, err := dto.ParseDate(req.StartDate, today)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("startDate: %v", err)
	}
	end, err := dto.ParseDate(req.EndDate, today)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("endDate: %v", err)
	}
	start = startOfDay(start)
	end = startOfDay(end).AddDate(0, 0, 1).Add(-time.Nanosecond)
	if end.Before(start) {
		return time.Time{}, time.Time{}, invalid("startDate no puede ser posterior a endDate")
	}
	return start, end, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MovementsByDate devuelve todos los movimientos del rango enriquecidos con datos
// del producto, cantidad restante y clasificación de resultado.
// Las entradas (stock-in y stock-update) registran su propio precio como costo,
// por lo que siempre salen como break-even; solo las salidas dan profit o loss.
// Devuelve ErrNotFound si no hay movimientos en el rango.
func (uc *LedgerUseCase) MovementsByDate(ctx context.Context, req dto.MovementsByDateRequest) (*dto.MovementsReport, error) {
	from, to, err := resolveRange(req, uc.now())
	if err != nil {
		return nil, err
	}

	movements, err := uc.movementRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(movements) == 0 {
		return nil, fmt.Errorf("%w: no hay movimientos entre %s y %s",
			domain.ErrNotFound, from.Format(dto.DateLayout), to.Format(dto.DateLayout))
	}

	products := make(map[string]*entity.Product)
	remaining := make(map[string]int64)
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		product, ok := products[m.ProductID]
		if !ok {
			product, err = uc.productRepo.GetByID(ctx, m.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, m.ProductID)
			}
			products[m.ProductID] = product

			pos, err := uc.positionRepo.GetByProduct(ctx, m.ProductID)
			if err != nil {
				return nil, err
			}
			if pos != nil {
				remaining[m.ProductID] = pos.Quantity
			}
		}

		cost, err := uc.capturedCost(ctx, m)
		if err != nil {
			return nil, err
		}

		items = append(items, dto.MovementResponse{
			StockID:           m.ID,
			ProductID:         m.ProductID,
			ProductName:       product.Name,
			ProductType:       product.Type,
			ProductQuantity:   m.Quantity,
			RemainingQuantity: remaining[m.ProductID],
			PricePerUnit:      m.PricePerUnit,
			TotalPrice:        m.TotalPrice,
			Date:              m.CreatedAt,
			ProfitStatus:      inventory.ClassifyProfit(m.Quantity, m.PricePerUnit, cost),
			MovementType:      m.Kind,
		})
	}

	return &dto.MovementsReport{
		Period: dto.PeriodDTO{
			StartDate: from.Format(dto.DateLayout),
			EndDate:   to.Format(dto.DateLayout),
		},
		Items: items,
	}, nil
}

// capturedCost devuelve el costo base capturado en el movimiento. Las filas sin
// captura usan el precio del primer movimiento registrado del producto.
func (uc *LedgerUseCase) capturedCost(ctx context.Context, m *entity.StockMovement) (decimal.Decimal, error) {
	if m.CostPerUnit.Valid {
		return m.CostPerUnit.Decimal, nil
	}
	first, err := uc.movementRepo.FirstByProduct(ctx, m.ProductID)
	if err != nil {
		return decimal.Zero, err
	}
	if first == nil {
		return m.PricePerUnit, nil
	}
	return first.PricePerUnit, nil
}

// MovementsReportPDF genera el PDF del mismo reporte que MovementsByDate.
func (uc *LedgerUseCase) MovementsReportPDF(ctx context.Context, req dto.MovementsByDateRequest) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("generador de reportes no configurado")
	}
	report, err := uc.MovementsByDate(ctx, req)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateMovementsReport(ctx, report)
}
