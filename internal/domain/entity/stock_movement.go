package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de stock.
const (
	MovementKindStockIn     = "stock-in"     // primera entrada de un producto
	MovementKindStockUpdate = "stock-update" // entrada sobre una posición existente
	MovementKindStockOut    = "stock-out"    // salida / venta
)

// StockMovement es una entrada inmutable del historial de stock (solo append).
type StockMovement struct {
	ID           string
	ProductID    string
	Quantity     int64
	PricePerUnit decimal.Decimal // precio del movimiento (compra en entradas, venta en salidas)
	TotalPrice   decimal.Decimal
	CostPerUnit  decimal.NullDecimal // costo base capturado; nulo en filas históricas sin captura
	Kind         string              // stock-in, stock-update, stock-out
	CreatedBy    string
	CreatedAt    time.Time
}
