package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// GetStockOut devuelve un registro de salida con su clasificación de resultado.
func (uc *LedgerUseCase) GetStockOut(ctx context.Context, id string) (*dto.StockOutResponse, error) {
	rec, err := uc.stockOutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: salida %s", domain.ErrNotFound, id)
	}
	product, err := uc.productRepo.GetByID(ctx, rec.ProductID)
	if err != nil {
		return nil, err
	}
	return toStockOutResponse(rec, product), nil
}

// ListStockOuts lista los registros de salida.
func (uc *LedgerUseCase) ListStockOuts(ctx context.Context, page dto.PageRequest) (*dto.StockOutListResponse, error) {
	page.DefaultPage()
	list, err := uc.stockOutRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	cache := make(map[string]*entity.Product)
	items := make([]dto.StockOutResponse, 0, len(list))
	for _, rec := range list {
		product, err := uc.cachedProduct(ctx, cache, rec.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toStockOutResponse(rec, product))
	}
	return &dto.StockOutListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateStockOut edita un registro de salida con la fila bloqueada. No toca posiciones ni movimientos.
func (uc *LedgerUseCase) UpdateStockOut(ctx context.Context, principal entity.Principal, id string, in dto.UpdateStockRequest) (*dto.StockOutResponse, error) {
	if in.ProductQuantity != nil && *in.ProductQuantity <= 0 {
		return nil, invalid("product_quantity debe ser > 0")
	}
	if err := checkUpdate(in); err != nil {
		return nil, err
	}
	now := uc.now()
	var date *time.Time
	if in.Date != nil {
		d, err := dto.ParseDate(*in.Date, now)
		if err != nil {
			return nil, invalid("%v", err)
		}
		date = &d
	}

	var rec *entity.StockOutRecord
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.StockPositionRepository,
		_ repository.StockMovementRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		var err error
		rec, err = stockOutRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("%w: salida %s", domain.ErrNotFound, id)
		}
		if date != nil {
			rec.Date = *date
		}
		if in.ProductQuantity != nil {
			rec.Quantity = *in.ProductQuantity
		}
		if in.PricePerUnit != nil {
			rec.PricePerUnit = *in.PricePerUnit
		}
		if in.TotalPrice != nil {
			rec.TotalPrice = *in.TotalPrice
		} else if in.ProductQuantity != nil || in.PricePerUnit != nil {
			rec.TotalPrice = totalOrDefault(nil, rec.Quantity, rec.PricePerUnit)
		}
		rec.UpdatedAt = now
		return stockOutRepo.Update(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("stock_out_id", id).Str("user_id", principal.UserID).Msg("salida corregida")

	product, err := uc.productRepo.GetByID(ctx, rec.ProductID)
	if err != nil {
		return nil, err
	}
	out := toStockOutResponse(rec, product)
	out.Message = "salida actualizada"
	return out, nil
}

// DeleteStockOut elimina un registro de salida. No repone stock.
func (uc *LedgerUseCase) DeleteStockOut(ctx context.Context, principal entity.Principal, id string) error {
	rec, err := uc.stockOutRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("%w: salida %s", domain.ErrNotFound, id)
	}
	if err := uc.stockOutRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("stock_out_id", id).Str("user_id", principal.UserID).Msg("salida eliminada")
	return nil
}
