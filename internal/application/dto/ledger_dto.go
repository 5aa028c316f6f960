package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementRequest body para POST /api/stock/in y POST /api/stock/out/add.
// Date acepta "2006-01-02" o RFC3339; vacío = ahora.
type StockMovementRequest struct {
	ProductID       string           `json:"product_id"`
	ProductQuantity int64            `json:"product_quantity"`
	PricePerUnit    decimal.Decimal  `json:"price_per_unit"`
	TotalPrice      *decimal.Decimal `json:"total_price,omitempty"`
	Date            string           `json:"date,omitempty"`
}

// UpdateStockRequest body para los PATCH de mantenimiento (stock in y stock out).
type UpdateStockRequest struct {
	ProductQuantity *int64           `json:"product_quantity"`
	PricePerUnit    *decimal.Decimal `json:"price_per_unit"`
	TotalPrice      *decimal.Decimal `json:"total_price"`
	Date            *string          `json:"date"`
}

// StockPositionResponse salida de una posición de stock con datos del producto.
type StockPositionResponse struct {
	Message         string          `json:"message,omitempty"`
	StockID         string          `json:"stock_id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductType     string          `json:"product_type"`
	ProductQuantity int64           `json:"product_quantity"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Date            time.Time       `json:"date"`
}

// StockPositionListResponse lista paginada de posiciones.
type StockPositionListResponse struct {
	Items []StockPositionResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// StockOutResponse salida de un registro de venta con su clasificación de resultado.
type StockOutResponse struct {
	Message              string          `json:"message,omitempty"`
	StockID              string          `json:"stock_id"`
	ProductID            string          `json:"product_id"`
	ProductName          string          `json:"product_name"`
	ProductType          string          `json:"product_type"`
	ProductQuantity      int64           `json:"product_quantity"`
	PricePerUnit         decimal.Decimal `json:"price_per_unit"`
	TotalPrice           decimal.Decimal `json:"total_price"`
	PurchasePricePerUnit decimal.Decimal `json:"purchase_price_per_unit"`
	Date                 time.Time       `json:"date"`
	ProfitStatus         string          `json:"profit_status"`
}

// StockOutListResponse lista paginada de ventas.
type StockOutListResponse struct {
	Items []StockOutResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// MovementsByDateRequest rango de fechas (YYYY-MM-DD). Vacíos = hoy.
type MovementsByDateRequest struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// MovementResponse movimiento del historial enriquecido para el reporte por fechas.
type MovementResponse struct {
	StockID           string          `json:"stock_id"`
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	ProductType       string          `json:"product_type"`
	ProductQuantity   int64           `json:"product_quantity"`
	RemainingQuantity int64           `json:"remaining_quantity"`
	PricePerUnit      decimal.Decimal `json:"price_per_unit"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	Date              time.Time       `json:"date"`
	ProfitStatus      string          `json:"profit_status"`
	MovementType      string          `json:"tra_type"`
}

// MovementsReport resultado de la consulta por fechas, con el rango efectivo aplicado.
type MovementsReport struct {
	Period PeriodDTO          `json:"period"`
	Items  []MovementResponse `json:"items"`
}

// PeriodDTO rango de fechas de un reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
