package inventory

import "github.com/shopspring/decimal"

// Clasificación de resultado de una salida.
const (
	ProfitStatusProfit    = "profit"
	ProfitStatusLoss      = "loss"
	ProfitStatusBreakEven = "break-even"
)

// ClassifyProfit compara qty*salePrice contra qty*purchasePrice.
func ClassifyProfit(qty int64, salePrice, purchasePrice decimal.Decimal) string {
	q := decimal.NewFromInt(qty)
	saleValue := q.Mul(salePrice)
	costValue := q.Mul(purchasePrice)
	switch saleValue.Cmp(costValue) {
	case 1:
		return ProfitStatusProfit
	case -1:
		return ProfitStatusLoss
	}
	return ProfitStatusBreakEven
}
