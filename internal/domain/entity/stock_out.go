package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOutRecord registra una venta o retiro ya aceptado.
// PurchasePricePerUnit es el costo base capturado antes del descuento de stock.
type StockOutRecord struct {
	ID                   string
	ProductID            string
	Quantity             int64
	PricePerUnit         decimal.Decimal // precio de venta
	TotalPrice           decimal.Decimal
	PurchasePricePerUnit decimal.Decimal
	Date                 time.Time
	CreatedBy            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
