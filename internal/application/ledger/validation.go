package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

// movementInput es la petición ya validada y con la fecha resuelta.
type movementInput struct {
	productID string
	qty       int64
	price     decimal.Decimal
	total     *decimal.Decimal
	date      time.Time
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// checkAmount rechaza montos negativos o con más decimales de los que se persisten.
func checkAmount(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid("%s no puede ser negativo", field)
	}
	if !d.Equal(d.Round(inventory.CostScale)) {
		return invalid("%s admite como máximo %d decimales", field, inventory.CostScale)
	}
	return nil
}

// checkUpdate valida los campos opcionales de los PATCH de mantenimiento.
func checkUpdate(in dto.UpdateStockRequest) error {
	if in.PricePerUnit != nil {
		if err := checkAmount("price_per_unit", *in.PricePerUnit); err != nil {
			return err
		}
	}
	if in.TotalPrice != nil {
		if err := checkAmount("total_price", *in.TotalPrice); err != nil {
			return err
		}
	}
	return nil
}

// validateMovement valida la petición antes de cualquier lectura de estado persistente.
// minQty es 0 para entradas y 1 para salidas.
func validateMovement(in dto.StockMovementRequest, minQty int64, now time.Time) (movementInput, error) {
	if in.ProductID == "" {
		return movementInput{}, invalid("product_id es requerido")
	}
	if in.ProductQuantity < minQty {
		return movementInput{}, invalid("product_quantity debe ser >= %d", minQty)
	}
	if err := checkAmount("price_per_unit", in.PricePerUnit); err != nil {
		return movementInput{}, err
	}
	if in.TotalPrice != nil {
		if err := checkAmount("total_price", *in.TotalPrice); err != nil {
			return movementInput{}, err
		}
	}
	date, err := dto.ParseDate(in.Date, now)
	if err != nil {
		return movementInput{}, invalid("%v", err)
	}
	return movementInput{
		productID: in.ProductID,
		qty:       in.ProductQuantity,
		price:     in.PricePerUnit,
		total:     in.TotalPrice,
		date:      date,
	}, nil
}
