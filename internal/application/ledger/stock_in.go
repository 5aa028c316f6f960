package ledger

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// StockIn registra una entrada de stock. Si el producto ya tiene posición suma la
// cantidad y aplica la política de costo base; si no, crea la posición.
// Una escritura de posición y un movimiento, en la misma transacción.
func (uc *LedgerUseCase) StockIn(ctx context.Context, principal entity.Principal, in dto.StockMovementRequest) (*dto.StockPositionResponse, error) {
	now := uc.now()
	mv, err := validateMovement(in, 0, now)
	if err != nil {
		return nil, err
	}

	var (
		product *entity.Product
		pos     *entity.StockPosition
		kind    string
	)
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		positionRepo repository.StockPositionRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.StockOutRepository,
	) error {
		var err error
		product, err = productRepo.GetForUpdate(ctx, mv.productID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, mv.productID)
		}

		pos, err = positionRepo.GetByProductForUpdate(ctx, mv.productID)
		if err != nil {
			return err
		}
		if pos != nil {
			if mv.qty > math.MaxInt64-pos.Quantity {
				return invalid("product_quantity excede el máximo para la posición (disponible %d)", pos.Quantity)
			}
			pos.PricePerUnit = uc.policy.NextCost(pos.Quantity, pos.PricePerUnit, mv.qty, mv.price)
			pos.Quantity += mv.qty
			pos.Revalue()
			pos.Date = mv.date
			pos.UpdatedAt = now
			if err := positionRepo.Update(ctx, pos); err != nil {
				return err
			}
			kind = entity.MovementKindStockUpdate
		} else {
			if mv.qty == 0 {
				return invalid("product_quantity debe ser > 0 para crear una posición")
			}
			pos = &entity.StockPosition{
				ID:           uuid.New().String(),
				ProductID:    mv.productID,
				Quantity:     mv.qty,
				PricePerUnit: mv.price,
				TotalPrice:   totalOrDefault(mv.total, mv.qty, mv.price),
				Date:         mv.date,
				UpdatedAt:    now,
			}
			if err := positionRepo.Create(ctx, pos); err != nil {
				return err
			}
			kind = entity.MovementKindStockIn
		}

		return movementRepo.Create(ctx, &entity.StockMovement{
			ID:           uuid.New().String(),
			ProductID:    mv.productID,
			Quantity:     mv.qty,
			PricePerUnit: mv.price,
			TotalPrice:   totalOrDefault(mv.total, mv.qty, mv.price),
			CostPerUnit:  decimal.NewNullDecimal(mv.price),
			Kind:         kind,
			CreatedBy:    principal.UserID,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.log.Debug().
		Str("product_id", mv.productID).
		Int64("qty", mv.qty).
		Str("kind", kind).
		Str("user_id", principal.UserID).
		Msg("entrada de stock registrada")

	out := toPositionResponse(pos, product)
	out.Message = "stock registrado"
	if kind == entity.MovementKindStockUpdate {
		out.Message = "stock actualizado"
	}
	return out, nil
}
