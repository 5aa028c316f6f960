package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de balance de caja.
const (
	BalanceTypeOpening = "opening"
	BalanceTypeClosing = "closing"
)

// Balance es un corte de caja (apertura o cierre) con saldo en efectivo y en mobile money.
type Balance struct {
	ID          string
	BalanceType string
	Date        time.Time
	CashBalance decimal.Decimal
	MomoBalance decimal.Decimal
	CreatedBy   string
	CreatedAt   time.Time
}
