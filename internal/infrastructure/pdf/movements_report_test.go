package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0,00", formatMoney(decimal.Zero))
	assert.Equal(t, "999,50", formatMoney(decimal.RequireFromString("999.5")))
	assert.Equal(t, "25.000,00", formatMoney(decimal.NewFromInt(25000)))
	assert.Equal(t, "1.000.000,13", formatMoney(decimal.RequireFromString("1000000.125")))
	assert.Equal(t, "-1.500,00", formatMoney(decimal.NewFromInt(-1500)))
}

func TestGenerateMovementsReport_DevuelvePDF(t *testing.T) {
	g := NewMovementsReportGenerator("")
	report := &dto.MovementsReport{
		Period: dto.PeriodDTO{StartDate: "2024-03-15", EndDate: "2024-03-15"},
		Items: []dto.MovementResponse{
			{
				ProductName: "Arroz", ProductType: "Granos", ProductQuantity: 10,
				PricePerUnit: decimal.NewFromInt(2), TotalPrice: decimal.NewFromInt(20),
				Date: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), MovementType: entity.MovementKindStockIn,
				ProfitStatus: inventory.ProfitStatusBreakEven, RemainingQuantity: 7,
			},
			{
				ProductName: "Arroz", ProductQuantity: 3,
				PricePerUnit: decimal.NewFromInt(4), TotalPrice: decimal.NewFromInt(12),
				Date: time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC), MovementType: entity.MovementKindStockOut,
				ProfitStatus: inventory.ProfitStatusProfit, RemainingQuantity: 7,
			},
		},
	}

	pdf, err := g.GenerateMovementsReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	_, err = g.GenerateMovementsReport(context.Background(), nil)
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Reposición", movementLabel(entity.MovementKindStockUpdate))
	assert.Equal(t, "Pérdida", profitLabel(inventory.ProfitStatusLoss))
	assert.Equal(t, colorProfit, profitColor(inventory.ProfitStatusProfit))
}
