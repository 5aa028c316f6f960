package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/memory"
)

var admin = entity.Principal{UserID: "u-admin", Username: "admin", Role: entity.RoleAdmin}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_CrearNormalizaTipo(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore().Products())
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreateProductRequest{Name: "  Arroz ", Type: "granos  BÁSICOS", Price: decimal.NewFromInt(3)})
	require.NoError(t, err)
	assert.Equal(t, "Arroz", p.Name)
	assert.Equal(t, "Granos Básicos", p.Type)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Arroz", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Sal", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_ActualizarListarEliminar(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store.Products())
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Arroz", Type: "granos", Price: decimal.NewFromInt(3)})
	require.NoError(t, err)

	price := decimal.RequireFromString("3.5")
	updated, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price))
	assert.Equal(t, "Arroz", updated.Name)

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	require.NoError(t, store.Positions().Create(ctx, &entity.StockPosition{ID: "s1", ProductID: p.ID, Quantity: 1}))
	assert.ErrorIs(t, uc.Delete(ctx, p.ID), domain.ErrConflict)

	_, err = uc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Balances y transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestBalance_CrearYValidar(t *testing.T) {
	uc := usecase.NewBalanceUseCase(memory.NewStore().Balances())
	ctx := context.Background()

	b, err := uc.Create(ctx, admin, dto.CreateBalanceRequest{
		BalanceType: entity.BalanceTypeOpening, Date: "2024-03-15",
		CashBalance: decimal.NewFromInt(100), MomoBalance: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", b.Date.Format(dto.DateLayout))

	got, err := uc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(got.CashBalance))

	_, err = uc.Create(ctx, admin, dto.CreateBalanceRequest{BalanceType: "mid"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, admin, dto.CreateBalanceRequest{BalanceType: entity.BalanceTypeClosing, CashBalance: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransaction_CRUD(t *testing.T) {
	uc := usecase.NewTransactionUseCase(memory.NewStore().Transactions())
	ctx := context.Background()

	tx, err := uc.Create(ctx, admin, dto.CreateTransactionRequest{
		Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(20),
		PaymentMethod: entity.PaymentMethodCash, Description: "transporte",
	})
	require.NoError(t, err)

	zero := decimal.Zero
	_, err = uc.Update(ctx, tx.ID, dto.UpdateTransactionRequest{Amount: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	momo := entity.PaymentMethodMomo
	updated, err := uc.Update(ctx, tx.ID, dto.UpdateTransactionRequest{PaymentMethod: &momo})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodMomo, updated.PaymentMethod)
	assert.True(t, decimal.NewFromInt(20).Equal(updated.Amount), "un PATCH rechazado no deja cambios")

	require.NoError(t, uc.Delete(ctx, tx.ID))
	assert.ErrorIs(t, uc.Delete(ctx, tx.ID), domain.ErrNotFound)

	_, err = uc.Create(ctx, admin, dto.CreateTransactionRequest{Type: "gift", Amount: decimal.NewFromInt(1), PaymentMethod: "cash"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
