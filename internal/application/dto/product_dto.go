package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name  string          `json:"product_name"`
	Type  string          `json:"product_type"`
	Price decimal.Decimal `json:"product_price"`
	Date  string          `json:"date,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial).
type UpdateProductRequest struct {
	Name  *string          `json:"product_name"`
	Type  *string          `json:"product_type"`
	Price *decimal.Decimal `json:"product_price"`
	Date  *string          `json:"date"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"product_name"`
	Type      string          `json:"product_type"`
	Price     decimal.Decimal `json:"product_price"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
