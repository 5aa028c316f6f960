package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-stock/internal/application/auth"
	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/ledger"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Inventario-stock/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Inventario-stock/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: API completa sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

var apiDay = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type testAPI struct {
	t      *testing.T
	app    *fiber.App
	tokens map[string]string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.NewStore()
	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	}).WithHashCost(bcrypt.MinCost)
	ledgerUC := ledger.NewLedgerUseCase(
		store, store.Products(), store.Positions(), store.Movements(), store.StockOuts(),
		nil, zerolog.Nop(),
	).WithClock(func() time.Time { return apiDay }).
		WithReportGenerator(infrapdf.NewMovementsReportGenerator(""))

	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     usecase.NewProductUseCase(store.Products()),
		LedgerUC:      ledgerUC,
		BalanceUC:     usecase.NewBalanceUseCase(store.Balances()),
		TransactionUC: usecase.NewTransactionUseCase(store.Transactions()),
		JWTSecret:     testJWTSecret,
	})

	api := &testAPI{t: t, app: app, tokens: map[string]string{}}
	_, err := authUC.EnsureAdmin(context.Background(), "admin1", "secreto123")
	require.NoError(t, err)
	api.tokens["admin"] = api.login("admin1", "secreto123")
	for _, role := range []string{"bodeguero", "vendedor"} {
		user := role + "1"
		resp := api.do(http.MethodPost, "/api/auth/users", "admin", dto.RegisterRequest{Username: user, Password: "secreto123", Role: role})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		api.tokens[role] = api.login(user, "secreto123")
	}
	return api
}

func (a *testAPI) login(username, password string) string {
	a.t.Helper()
	resp := a.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(a.t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(a.t, resp, &out)
	return out.AccessToken
}

func (a *testAPI) do(method, path, role string, body any) *http.Response {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if tok := a.tokens[role]; tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func (a *testAPI) createProduct(name string) dto.ProductResponse {
	a.t.Helper()
	resp := a.do(http.MethodPost, "/api/products", "bodeguero", map[string]any{
		"product_name": name, "product_type": "granos", "product_price": "5",
	})
	require.Equal(a.t, http.StatusCreated, resp.StatusCode)
	var p dto.ProductResponse
	decode(a.t, resp, &p)
	return p
}

func movement(productID string, qty int64, price string) map[string]any {
	return map[string]any{"product_id": productID, "product_quantity": qty, "price_per_unit": price}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_LoginYMe(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(http.MethodGet, "/api/auth/me", "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.UserResponse
	decode(t, resp, &me)
	assert.Equal(t, "vendedor1", me.Username)
	assert.Equal(t, "vendedor", me.Role)

	resp = api.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "vendedor1", Password: "otra-clave"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "VENDEDOR1", Password: "secreto123"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAuth_RegistroPublicoNoOtorgaAdmin(t *testing.T) {
	api := newTestAPI(t)
	p := api.createProduct("Lentejas")

	resp := api.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "intruso", Password: "secreto123", Role: "admin"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user dto.UserResponse
	decode(t, resp, &user)
	assert.Equal(t, "vendedor", user.Role)

	api.tokens["intruso"] = api.login("intruso", "secreto123")
	resp = api.do(http.MethodDelete, "/api/products/"+p.ID, "intruso", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(http.MethodPost, "/api/auth/users", "intruso", dto.RegisterRequest{Username: "otro", Password: "secreto123", Role: "admin"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(http.MethodGet, "/api/products/"+p.ID, "admin", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProducts_RBACYDuplicado(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(http.MethodPost, "/api/products", "vendedor", map[string]any{"product_name": "Arroz", "product_type": "granos", "product_price": "5"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	p := api.createProduct("Arroz")
	assert.Equal(t, "Granos", p.Type)

	resp = api.do(http.MethodPost, "/api/products", "admin", map[string]any{"product_name": "Arroz", "product_type": "x", "product_price": "1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = api.do(http.MethodGet, "/api/products/"+p.ID, "vendedor", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = api.do(http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStock_EntradaSalidaYReporte(t *testing.T) {
	api := newTestAPI(t)
	p := api.createProduct("Arroz")

	// vendedor no puede registrar entradas
	resp := api.do(http.MethodPost, "/api/stock/in", "vendedor", movement(p.ID, 10, "2"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(http.MethodPost, "/api/stock/in", "bodeguero", movement(p.ID, 10, "2"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var pos dto.StockPositionResponse
	decode(t, resp, &pos)
	assert.Equal(t, int64(10), pos.ProductQuantity)
	assert.Equal(t, "stock registrado", pos.Message)

	resp = api.do(http.MethodPost, "/api/stock/out/add", "vendedor", movement(p.ID, 4, "3"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sale dto.StockOutResponse
	decode(t, resp, &sale)
	assert.Equal(t, "profit", sale.ProfitStatus)
	assert.Equal(t, "12", sale.TotalPrice.String())
	assert.Equal(t, "2", sale.PurchasePricePerUnit.String())

	resp = api.do(http.MethodGet, "/api/stock/in/"+pos.StockID, "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &pos)
	assert.Equal(t, int64(6), pos.ProductQuantity)

	day := apiDay.Format("2006-01-02")
	resp = api.do(http.MethodPost, fmt.Sprintf("/api/stock/out/byDate?startDate=%s&endDate=%s", day, day), "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report dto.MovementsReport
	decode(t, resp, &report)
	require.Len(t, report.Items, 2)
	assert.Equal(t, "stock-in", report.Items[0].MovementType)
	assert.Equal(t, "stock-out", report.Items[1].MovementType)
	assert.Equal(t, int64(6), report.Items[1].RemainingQuantity)

	resp = api.do(http.MethodGet, fmt.Sprintf("/api/stock/out/byDate/report.pdf?startDate=%s&endDate=%s", day, day), "admin", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestStock_SalidaSinStockSuficiente(t *testing.T) {
	api := newTestAPI(t)
	p := api.createProduct("Frijol")

	resp := api.do(http.MethodPost, "/api/stock/out/add", "vendedor", movement(p.ID, 1, "3"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(http.MethodPost, "/api/stock/in", "admin", movement(p.ID, 2, "2"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = api.do(http.MethodPost, "/api/stock/out/add", "vendedor", movement(p.ID, 3, "3"))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	var errBody dto.ErrorResponse
	decode(t, resp, &errBody)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)

	resp = api.do(http.MethodPost, "/api/stock/out/add", "vendedor", movement(p.ID, 0, "3"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStock_ByDateSinMovimientosYRangoInvalido(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(http.MethodPost, "/api/stock/out/byDate?startDate=2020-01-01&endDate=2020-01-02", "admin", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(http.MethodPost, "/api/stock/out/byDate?startDate=2020-01-05&endDate=2020-01-02", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(http.MethodPost, "/api/stock/out/byDate?startDate=ayer", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStock_MantenimientoSoloAdmin(t *testing.T) {
	api := newTestAPI(t)
	p := api.createProduct("Azucar")
	resp := api.do(http.MethodPost, "/api/stock/in", "bodeguero", movement(p.ID, 5, "1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var pos dto.StockPositionResponse
	decode(t, resp, &pos)

	resp = api.do(http.MethodPatch, "/api/stock/in/"+pos.StockID, "bodeguero", map[string]any{"price_per_unit": "2"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(http.MethodPatch, "/api/stock/in/"+pos.StockID, "admin", map[string]any{"price_per_unit": "2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &pos)
	assert.Equal(t, "10", pos.TotalPrice.String())

	resp = api.do(http.MethodDelete, "/api/stock/in/"+pos.StockID, "admin", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = api.do(http.MethodGet, "/api/stock/in/"+pos.StockID, "admin", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCaja_BalanceYTransacciones(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(http.MethodPost, "/api/balance", "bodeguero", map[string]any{
		"balance_type": "opening", "cash_balance": "100", "momo_balance": "50",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(http.MethodPost, "/api/balance", "vendedor", map[string]any{
		"balance_type": "opening", "cash_balance": "100", "momo_balance": "50",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = api.do(http.MethodPost, "/api/transactions", "vendedor", map[string]any{
		"type": "expense", "amount": "20", "payment_method": "cash", "description": "bolsas",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var tx dto.TransactionResponse
	decode(t, resp, &tx)

	resp = api.do(http.MethodDelete, "/api/transactions/"+tx.ID, "vendedor", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(http.MethodDelete, "/api/transactions/"+tx.ID, "admin", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
