package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBalanceRequest entrada para registrar un corte de caja.
type CreateBalanceRequest struct {
	BalanceType string          `json:"balance_type"`
	Date        string          `json:"date,omitempty"`
	CashBalance decimal.Decimal `json:"cash_balance"`
	MomoBalance decimal.Decimal `json:"momo_balance"`
}

// BalanceResponse salida de un corte de caja.
type BalanceResponse struct {
	ID          string          `json:"id"`
	BalanceType string          `json:"balance_type"`
	Date        time.Time       `json:"date"`
	CashBalance decimal.Decimal `json:"cash_balance"`
	MomoBalance decimal.Decimal `json:"momo_balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BalanceListResponse lista paginada de cortes.
type BalanceListResponse struct {
	Items []BalanceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
