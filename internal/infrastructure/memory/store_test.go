package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/memory"
)

func TestRun_DescartaCambiosSiFalla(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Run(ctx, func(p repository.ProductRepository, _ repository.StockPositionRepository, _ repository.StockMovementRepository, _ repository.StockOutRepository) error {
		require.NoError(t, p.Create(ctx, &entity.Product{ID: "p1", Name: "Arroz"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRun_PublicaCambiosSiTieneExito(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	err := store.Run(ctx, func(p repository.ProductRepository, pos repository.StockPositionRepository, _ repository.StockMovementRepository, _ repository.StockOutRepository) error {
		if err := p.Create(ctx, &entity.Product{ID: "p1", Name: "Arroz"}); err != nil {
			return err
		}
		return pos.Create(ctx, &entity.StockPosition{ID: "s1", ProductID: "p1", Quantity: 3, PricePerUnit: decimal.NewFromInt(2)})
	})
	require.NoError(t, err)

	pos, err := store.Positions().GetByProduct(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.Equal(t, int64(3), pos.Quantity)
}

func TestProducts_NombreUnicoYBorradoReferenciado(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	products := store.Products()

	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p1", Name: "Arroz"}))
	assert.ErrorIs(t, products.Create(ctx, &entity.Product{ID: "p2", Name: "Arroz"}), domain.ErrDuplicate)

	require.NoError(t, store.Positions().Create(ctx, &entity.StockPosition{ID: "s1", ProductID: "p1", Quantity: 1}))
	assert.ErrorIs(t, products.Delete(ctx, "p1"), domain.ErrConflict)

	require.NoError(t, store.Positions().Delete(ctx, "s1"))
	assert.NoError(t, products.Delete(ctx, "p1"))
	assert.ErrorIs(t, products.Delete(ctx, "p1"), domain.ErrNotFound)
}

func TestUsers_UsernameUnico(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Users().Create(ctx, &entity.User{ID: "u1", Username: "ana"}))
	assert.ErrorIs(t, store.Users().Create(ctx, &entity.User{ID: "u2", Username: "ANA"}), domain.ErrUsernameTaken)

	u, err := store.Users().GetByUsername(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
}
