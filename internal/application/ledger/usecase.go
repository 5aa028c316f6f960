// Package ledger contiene el motor del libro de stock: entradas, salidas con
// cálculo de resultado, consulta de movimientos por fecha y el mantenimiento
// administrativo de posiciones y ventas.
package ledger

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// LedgerUseCase registra movimientos de stock de forma transaccional con bloqueo
// de fila (SELECT FOR UPDATE) y Commit/Rollback vía TxRunner.
// No hace autorización: recibe el Principal ya validado por la capa HTTP.
type LedgerUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	positionRepo repository.StockPositionRepository
	movementRepo repository.StockMovementRepository
	stockOutRepo repository.StockOutRepository
	policy       inventory.PricingPolicy
	reports      ReportGenerator
	log          zerolog.Logger
	now          func() time.Time
}

// NewLedgerUseCase construye el caso de uso. Los repositorios sueltos se usan solo para lecturas.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	positionRepo repository.StockPositionRepository,
	movementRepo repository.StockMovementRepository,
	stockOutRepo repository.StockOutRepository,
	policy inventory.PricingPolicy,
	log zerolog.Logger,
) *LedgerUseCase {
	if policy == nil {
		policy = inventory.LastWrite{}
	}
	return &LedgerUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		positionRepo: positionRepo,
		movementRepo: movementRepo,
		stockOutRepo: stockOutRepo,
		policy:       policy,
		log:          log,
		now:          time.Now,
	}
}

// WithReportGenerator habilita la exportación PDF de movimientos.
func (uc *LedgerUseCase) WithReportGenerator(g ReportGenerator) *LedgerUseCase {
	uc.reports = g
	return uc
}

// WithClock reemplaza el reloj (tests).
func (uc *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	uc.now = now
	return uc
}

// PricingPolicy devuelve el nombre de la política de costo base activa.
func (uc *LedgerUseCase) PricingPolicy() string {
	return uc.policy.Name()
}

func toPositionResponse(pos *entity.StockPosition, product *entity.Product) *dto.StockPositionResponse {
	out := &dto.StockPositionResponse{
		StockID:         pos.ID,
		ProductID:       pos.ProductID,
		ProductQuantity: pos.Quantity,
		PricePerUnit:    pos.PricePerUnit,
		TotalPrice:      pos.TotalPrice,
		Date:            pos.Date,
	}
	if product != nil {
		out.ProductName = product.Name
		out.ProductType = product.Type
	}
	return out
}

func toStockOutResponse(rec *entity.StockOutRecord, product *entity.Product) *dto.StockOutResponse {
	out := &dto.StockOutResponse{
		StockID:              rec.ID,
		ProductID:            rec.ProductID,
		ProductQuantity:      rec.Quantity,
		PricePerUnit:         rec.PricePerUnit,
		TotalPrice:           rec.TotalPrice,
		PurchasePricePerUnit: rec.PurchasePricePerUnit,
		Date:                 rec.Date,
		ProfitStatus:         inventory.ClassifyProfit(rec.Quantity, rec.PricePerUnit, rec.PurchasePricePerUnit),
	}
	if product != nil {
		out.ProductName = product.Name
		out.ProductType = product.Type
	}
	return out
}

// totalOrDefault devuelve el override si viene, si no qty * price.
func totalOrDefault(override *decimal.Decimal, qty int64, price decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	return decimal.NewFromInt(qty).Mul(price)
}
