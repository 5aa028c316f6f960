package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/auth"
	"github.com/jhoicas/Inventario-stock/internal/application/ledger"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	LedgerUC      *ledger.LedgerUseCase
	BalanceUC     *usecase.BalanceUseCase
	TransactionUC *usecase.TransactionUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	const (
		admin     = entity.RoleAdmin
		bodeguero = entity.RoleBodeguero
		vendedor  = entity.RoleVendedor
	)
	adminOnly := RequireRole(admin)

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Post("/users", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.CreateUser)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(admin, bodeguero), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(admin, bodeguero), productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Stock in
	stockIn := protected.Group("/stock/in")
	stockInHandler := NewStockInHandler(deps.LedgerUC)
	stockIn.Post("/", RequireRole(admin, bodeguero), stockInHandler.StockIn)
	stockIn.Get("/", stockInHandler.List)
	stockIn.Get("/:id", stockInHandler.GetByID)
	stockIn.Patch("/:id", adminOnly, stockInHandler.Update)
	stockIn.Delete("/:id", adminOnly, stockInHandler.Delete)

	// Stock out (rutas fijas antes de /:id)
	stockOut := protected.Group("/stock/out")
	stockOutHandler := NewStockOutHandler(deps.LedgerUC)
	stockOut.Post("/add", RequireRole(admin, bodeguero, vendedor), stockOutHandler.StockOut)
	stockOut.Post("/byDate", stockOutHandler.MovementsByDate)
	stockOut.Get("/byDate/report.pdf", stockOutHandler.MovementsReportPDF)
	stockOut.Get("/", stockOutHandler.List)
	stockOut.Get("/:id", stockOutHandler.GetByID)
	stockOut.Patch("/:id", adminOnly, stockOutHandler.Update)
	stockOut.Delete("/:id", adminOnly, stockOutHandler.Delete)

	// Balance
	balance := protected.Group("/balance")
	balanceHandler := NewBalanceHandler(deps.BalanceUC)
	balance.Post("/", RequireRole(admin, vendedor), balanceHandler.Create)
	balance.Get("/", balanceHandler.List)
	balance.Get("/:id", balanceHandler.GetByID)

	// Transactions
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", RequireRole(admin, vendedor), transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Patch("/:id", adminOnly, transactionHandler.Update)
	transactions.Delete("/:id", adminOnly, transactionHandler.Delete)
}
