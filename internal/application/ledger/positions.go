package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// GetPosition devuelve una posición de stock por ID.
func (uc *LedgerUseCase) GetPosition(ctx context.Context, id string) (*dto.StockPositionResponse, error) {
	pos, err := uc.positionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, fmt.Errorf("%w: stock %s", domain.ErrNotFound, id)
	}
	product, err := uc.productRepo.GetByID(ctx, pos.ProductID)
	if err != nil {
		return nil, err
	}
	return toPositionResponse(pos, product), nil
}

// ListPositions lista las posiciones con nombre y tipo de producto.
func (uc *LedgerUseCase) ListPositions(ctx context.Context, page dto.PageRequest) (*dto.StockPositionListResponse, error) {
	page.DefaultPage()
	list, err := uc.positionRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	cache := make(map[string]*entity.Product)
	items := make([]dto.StockPositionResponse, 0, len(list))
	for _, pos := range list {
		product, err := uc.cachedProduct(ctx, cache, pos.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toPositionResponse(pos, product))
	}
	return &dto.StockPositionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdatePosition corrige administrativamente una posición. Cambiar cantidad o precio
// sin total explícito recalcula el total; una cantidad de 0 elimina la posición.
// No agrega movimientos al historial.
func (uc *LedgerUseCase) UpdatePosition(ctx context.Context, principal entity.Principal, id string, in dto.UpdateStockRequest) (*dto.StockPositionResponse, error) {
	now := uc.now()
	if in.ProductQuantity != nil && *in.ProductQuantity < 0 {
		return nil, invalid("product_quantity no puede ser negativo")
	}
	if err := checkUpdate(in); err != nil {
		return nil, err
	}

	var (
		pos     *entity.StockPosition
		product *entity.Product
		deleted bool
	)
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		positionRepo repository.StockPositionRepository,
		_ repository.StockMovementRepository,
		_ repository.StockOutRepository,
	) error {
		current, err := positionRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: stock %s", domain.ErrNotFound, id)
		}
		pos, err = positionRepo.GetByProductForUpdate(ctx, current.ProductID)
		if err != nil {
			return err
		}
		if pos == nil || pos.ID != id {
			return fmt.Errorf("%w: stock %s", domain.ErrNotFound, id)
		}
		product, err = productRepo.GetByID(ctx, pos.ProductID)
		if err != nil {
			return err
		}

		if in.Date != nil {
			date, err := dto.ParseDate(*in.Date, now)
			if err != nil {
				return invalid("%v", err)
			}
			pos.Date = date
		}
		if in.ProductQuantity != nil {
			pos.Quantity = *in.ProductQuantity
		}
		if in.PricePerUnit != nil {
			pos.PricePerUnit = *in.PricePerUnit
		}
		if pos.Quantity == 0 {
			deleted = true
			return positionRepo.Delete(ctx, pos.ID)
		}
		if in.TotalPrice != nil {
			pos.TotalPrice = *in.TotalPrice
		} else if in.ProductQuantity != nil || in.PricePerUnit != nil {
			pos.Revalue()
		}
		pos.UpdatedAt = now
		return positionRepo.Update(ctx, pos)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("stock_id", id).
		Str("user_id", principal.UserID).
		Bool("deleted", deleted).
		Msg("posición de stock corregida")

	out := toPositionResponse(pos, product)
	out.Message = "stock actualizado"
	if deleted {
		out.Message = "stock eliminado: cantidad en 0"
	}
	return out, nil
}

// DeletePosition elimina una posición de stock.
func (uc *LedgerUseCase) DeletePosition(ctx context.Context, principal entity.Principal, id string) error {
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		positionRepo repository.StockPositionRepository,
		_ repository.StockMovementRepository,
		_ repository.StockOutRepository,
	) error {
		pos, err := positionRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if pos == nil {
			return fmt.Errorf("%w: stock %s", domain.ErrNotFound, id)
		}
		return positionRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("stock_id", id).Str("user_id", principal.UserID).Msg("posición de stock eliminada")
	return nil
}

func (uc *LedgerUseCase) cachedProduct(ctx context.Context, cache map[string]*entity.Product, id string) (*entity.Product, error) {
	if p, ok := cache[id]; ok {
		return p, nil
	}
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cache[id] = p
	return p, nil
}
