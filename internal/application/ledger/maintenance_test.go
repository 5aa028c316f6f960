package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

var admin = entity.Principal{UserID: "u-admin", Username: "admin", Role: entity.RoleAdmin}

func ptr[T any](v T) *T { return &v }

// Caso 1: corregir precio recalcula el total; no se agregan movimientos.
func TestUpdatePosition_CorrigePrecio(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	in, err := f.uc.StockIn(ctx, bodeguero, req(f.product.ID, 4, "2"))
	require.NoError(t, err)

	out, err := f.uc.UpdatePosition(ctx, admin, in.StockID, dto.UpdateStockRequest{PricePerUnit: ptr(dec("2.5"))})
	require.NoError(t, err)
	assert.True(t, dec("10").Equal(out.TotalPrice))
	assert.Len(t, f.store.AllMovements(), 1)

	got, err := f.uc.GetPosition(ctx, in.StockID)
	require.NoError(t, err)
	assert.True(t, dec("2.5").Equal(got.PricePerUnit))
	assert.Equal(t, "Arroz", got.ProductName)
}

// Caso 2: cantidad 0 elimina la posición.
func TestUpdatePosition_CantidadCeroElimina(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	in, err := f.uc.StockIn(ctx, bodeguero, req(f.product.ID, 4, "2"))
	require.NoError(t, err)

	_, err = f.uc.UpdatePosition(ctx, admin, in.StockID, dto.UpdateStockRequest{ProductQuantity: ptr(int64(0))})
	require.NoError(t, err)
	assert.Nil(t, f.position(t))

	_, err = f.uc.GetPosition(ctx, in.StockID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 3: valores negativos rechazados; ID inexistente → NotFound.
func TestUpdatePosition_Errores(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	in, err := f.uc.StockIn(ctx, bodeguero, req(f.product.ID, 4, "2"))
	require.NoError(t, err)

	_, err = f.uc.UpdatePosition(ctx, admin, in.StockID, dto.UpdateStockRequest{ProductQuantity: ptr(int64(-1))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.UpdatePosition(ctx, admin, "nope", dto.UpdateStockRequest{PricePerUnit: ptr(dec("1"))})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 4: listar y eliminar posiciones.
func TestPositions_ListarYEliminar(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	other := f.addProduct(t, "Azúcar", "Granos")
	_, err := f.uc.StockIn(ctx, bodeguero, req(f.product.ID, 1, "1"))
	require.NoError(t, err)
	second, err := f.uc.StockIn(ctx, bodeguero, req(other.ID, 2, "1"))
	require.NoError(t, err)

	list, err := f.uc.ListPositions(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 20, list.Page.Limit)

	require.NoError(t, f.uc.DeletePosition(ctx, admin, second.StockID))
	assert.ErrorIs(t, f.uc.DeletePosition(ctx, admin, second.StockID), domain.ErrNotFound)

	list, err = f.uc.ListPositions(ctx, dto.PageRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Arroz", list.Items[0].ProductName)
}

// Caso 5: editar una salida recalcula total y resultado sin tocar la posición.
func TestUpdateStockOut_RecalculaSinTocarPosicion(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, err := f.uc.StockIn(ctx, bodeguero, req(f.product.ID, 10, "2"))
	require.NoError(t, err)
	sale, err := f.uc.StockOut(ctx, vendedor, req(f.product.ID, 2, "3"))
	require.NoError(t, err)

	out, err := f.uc.UpdateStockOut(ctx, admin, sale.StockID, dto.UpdateStockRequest{PricePerUnit: ptr(dec("1"))})
	require.NoError(t, err)
	assert.True(t, dec("2").Equal(out.TotalPrice))
	assert.Equal(t, inventory.ProfitStatusLoss, out.ProfitStatus)
	assert.Equal(t, int64(8), f.position(t).Quantity)

	_, err = f.uc.UpdateStockOut(ctx, admin, sale.StockID, dto.UpdateStockRequest{ProductQuantity: ptr(int64(0))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 6: listar, obtener y eliminar salidas.
func TestStockOuts_ListarObtenerEliminar(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, err := f.uc.StockIn(ctx, bodeguero, req(f.product.ID, 10, "2"))
	require.NoError(t, err)
	sale, err := f.uc.StockOut(ctx, vendedor, req(f.product.ID, 2, "3"))
	require.NoError(t, err)

	got, err := f.uc.GetStockOut(ctx, sale.StockID)
	require.NoError(t, err)
	assert.Equal(t, inventory.ProfitStatusProfit, got.ProfitStatus)

	list, err := f.uc.ListStockOuts(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	require.NoError(t, f.uc.DeleteStockOut(ctx, admin, sale.StockID))
	_, err = f.uc.GetStockOut(ctx, sale.StockID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(8), f.position(t).Quantity, "eliminar la salida no repone stock")
}
