package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CostScale decimales con los que se guardan precios y costos (NUMERIC(14,4)).
const CostScale = 4

// Políticas de costo base al reponer stock sobre una posición existente.
const (
	PolicyLastWrite       = "last-write"
	PolicyWeightedAverage = "weighted-average"
)

// PricingPolicy decide el nuevo costo base de una posición cuando entra más stock.
type PricingPolicy interface {
	Name() string
	NextCost(currentQty int64, currentCost decimal.Decimal, inQty int64, inCost decimal.Decimal) decimal.Decimal
}

// LastWrite sobrescribe el costo base con el precio de la última entrada.
type LastWrite struct{}

func (LastWrite) Name() string { return PolicyLastWrite }

func (LastWrite) NextCost(_ int64, _ decimal.Decimal, _ int64, inCost decimal.Decimal) decimal.Decimal {
	return inCost
}

// WeightedAverage recalcula el costo base como promedio ponderado por cantidad.
type WeightedAverage struct{}

func (WeightedAverage) Name() string { return PolicyWeightedAverage }

func (WeightedAverage) NextCost(currentQty int64, currentCost decimal.Decimal, inQty int64, inCost decimal.Decimal) decimal.Decimal {
	if inQty == 0 {
		return currentCost
	}
	return CostCalculator(
		decimal.NewFromInt(currentQty), currentCost,
		decimal.NewFromInt(inQty), inCost,
	)
}

// PolicyByName resuelve la política configurada. Vacío equivale a last-write.
func PolicyByName(name string) (PricingPolicy, error) {
	switch name {
	case "", PolicyLastWrite:
		return LastWrite{}, nil
	case PolicyWeightedAverage:
		return WeightedAverage{}, nil
	}
	return nil, fmt.Errorf("política de precios desconocida: %q", name)
}
