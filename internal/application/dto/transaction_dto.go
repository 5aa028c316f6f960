package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para registrar un ingreso o gasto.
type CreateTransactionRequest struct {
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description"`
	Date          string          `json:"date,omitempty"`
}

// UpdateTransactionRequest entrada parcial para PATCH.
type UpdateTransactionRequest struct {
	Type          *string          `json:"type"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"payment_method"`
	Description   *string          `json:"description"`
	Date          *string          `json:"date"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
