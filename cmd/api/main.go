package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Inventario-stock/internal/application/auth"
	"github.com/jhoicas/Inventario-stock/internal/application/ledger"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	infrapdf "github.com/jhoicas/Inventario-stock/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inventario-stock/internal/interfaces/http"
	"github.com/jhoicas/Inventario-stock/pkg/config"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("pricing_policy", cfg.Ledger.PricingPolicy).
		Msg("iniciando aplicación")

	policy, err := inventory.PolicyByName(cfg.Ledger.PricingPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del libro de stock")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	positionRepo := postgres.NewStockPositionRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	stockOutRepo := postgres.NewStockOutRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Reporte PDF de movimientos por fecha
	reportGenerator := infrapdf.NewMovementsReportGenerator("")
	ledgerUC := ledger.NewLedgerUseCase(
		txRunner, productRepo, positionRepo, movementRepo, stockOutRepo,
		policy, log.With().Str("component", "ledger").Logger(),
	).WithReportGenerator(reportGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.Admin.Username != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("crear admin inicial")
		}
		if created {
			log.Info().Str("username", cfg.Admin.Username).Msg("admin inicial creado")
		}
	}
	productUC := usecase.NewProductUseCase(productRepo)
	balanceUC := usecase.NewBalanceUseCase(balanceRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Docs.SwaggerFile,
		Path:     "docs",
		Title:    "Inventario Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		LedgerUC:      ledgerUC,
		BalanceUC:     balanceUC,
		TransactionUC: transactionUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
