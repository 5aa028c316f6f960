package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	PaymentMethodCash = "cash"
	PaymentMethodMomo = "momo"
)

// Transaction es un movimiento de dinero genérico (ingreso o gasto) fuera del libro de stock.
type Transaction struct {
	ID            string
	Type          string
	Amount        decimal.Decimal
	PaymentMethod string
	Description   string
	Date          time.Time
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
