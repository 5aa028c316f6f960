package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// StockOut registra una salida (venta). Rechaza si no hay posición o si la cantidad
// supera lo disponible; nunca hay cumplimiento parcial. La posición se elimina al llegar a 0.
func (uc *LedgerUseCase) StockOut(ctx context.Context, principal entity.Principal, in dto.StockMovementRequest) (*dto.StockOutResponse, error) {
	now := uc.now()
	mv, err := validateMovement(in, 1, now)
	if err != nil {
		return nil, err
	}

	var (
		product *entity.Product
		record  *entity.StockOutRecord
	)
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		positionRepo repository.StockPositionRepository,
		movementRepo repository.StockMovementRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		var err error
		product, err = productRepo.GetForUpdate(ctx, mv.productID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, mv.productID)
		}

		pos, err := positionRepo.GetByProductForUpdate(ctx, mv.productID)
		if err != nil {
			return err
		}
		if pos == nil {
			return fmt.Errorf("%w: no hay stock registrado para el producto %s", domain.ErrNotFound, mv.productID)
		}
		if mv.qty > pos.Quantity {
			uc.log.Warn().
				Str("product_id", mv.productID).
				Int64("requested", mv.qty).
				Int64("available", pos.Quantity).
				Str("user_id", principal.UserID).
				Msg("salida rechazada por stock insuficiente")
			return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, pos.Quantity, mv.qty)
		}

		purchasePrice := pos.PricePerUnit
		pos.Quantity -= mv.qty
		if pos.Quantity == 0 {
			if err := positionRepo.Delete(ctx, pos.ID); err != nil {
				return err
			}
		} else {
			pos.Revalue()
			pos.UpdatedAt = now
			if err := positionRepo.Update(ctx, pos); err != nil {
				return err
			}
		}

		record = &entity.StockOutRecord{
			ID:                   uuid.New().String(),
			ProductID:            mv.productID,
			Quantity:             mv.qty,
			PricePerUnit:         mv.price,
			TotalPrice:           totalOrDefault(mv.total, mv.qty, mv.price),
			PurchasePricePerUnit: purchasePrice,
			Date:                 mv.date,
			CreatedBy:            principal.UserID,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := stockOutRepo.Create(ctx, record); err != nil {
			return err
		}

		return movementRepo.Create(ctx, &entity.StockMovement{
			ID:           uuid.New().String(),
			ProductID:    mv.productID,
			Quantity:     mv.qty,
			PricePerUnit: mv.price,
			TotalPrice:   record.TotalPrice,
			CostPerUnit:  decimal.NewNullDecimal(purchasePrice),
			Kind:         entity.MovementKindStockOut,
			CreatedBy:    principal.UserID,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}

	out := toStockOutResponse(record, product)
	uc.log.Debug().
		Str("product_id", mv.productID).
		Int64("qty", mv.qty).
		Str("profit_status", out.ProfitStatus).
		Str("user_id", principal.UserID).
		Msg("salida de stock registrada")

	out.Message = "salida registrada"
	return out, nil
}
