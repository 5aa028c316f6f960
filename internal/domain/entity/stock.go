package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPosition representa el stock disponible de un producto y su costo base.
// Como máximo una por producto; Quantity nunca es negativa y al llegar a 0 la fila se elimina.
type StockPosition struct {
	ID           string
	ProductID    string
	Quantity     int64
	PricePerUnit decimal.Decimal // costo base con el que se valora el stock disponible
	TotalPrice   decimal.Decimal // Quantity * PricePerUnit (salvo override en la creación)
	Date         time.Time
	UpdatedAt    time.Time
}

// Revalue recalcula TotalPrice a partir de la cantidad y el costo base actuales.
func (p *StockPosition) Revalue() {
	p.TotalPrice = decimal.NewFromInt(p.Quantity).Mul(p.PricePerUnit)
}
