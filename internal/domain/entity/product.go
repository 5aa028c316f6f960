package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una entrada del catálogo. Name es único.
// El motor de stock solo lo lee; se modifica desde el CRUD de catálogo.
type Product struct {
	ID        string
	Name      string
	Type      string
	Price     decimal.Decimal // precio unitario de lista
	Date      time.Time       // fecha de alta
	CreatedAt time.Time
	UpdatedAt time.Time
}
