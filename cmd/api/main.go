package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"
	"golang.org/x/text/language"

	"github.com/jhoicas/rustock/docs"
	"github.com/jhoicas/rustock/internal/application/auth"
	"github.com/jhoicas/rustock/internal/application/inventory"
	"github.com/jhoicas/rustock/internal/application/report"
	"github.com/jhoicas/rustock/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/rustock/internal/infrastructure/pdf"
	"github.com/jhoicas/rustock/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/rustock/internal/interfaces/http"
	"github.com/jhoicas/rustock/pkg/config"
	"github.com/jhoicas/rustock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seeded, err := postgres.Bootstrap(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}
	if seeded {
		log.Warn().Str("username", postgres.DefaultManagerUsername).Msg("manager por defecto creado; cambie la contraseña")
	}

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	managerRepo := postgres.NewManagerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := inventory.NewProductUseCase(txRunner, productRepo, log)
	saleUC := inventory.NewSaleUseCase(txRunner, productRepo, saleRepo, log)
	purchaseUC := inventory.NewPurchaseUseCase(txRunner, purchaseRepo, log)
	managerUC := auth.NewManagerUseCase(managerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	// Contador de intentos de login: Redis si está configurado (compartido entre instancias), si no en memoria.
	var attempts auth.AttemptStore = auth.NewMemoryAttemptStore()
	if cfg.Redis.Enabled() {
		client, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer client.Close()
		attempts = cache.NewRedisAttemptStore(client, cfg.App.Name)
	}
	login := auth.NewThrottledLogin(managerUC, attempts, cfg.Login.MaxAttempts, cfg.Login.Lockout())

	// PDF: reporte resumen de inventario, ventas y compras
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name, language.Spanish)
	reportSvc := report.NewService(productRepo, saleRepo, purchaseRepo, pdfGenerator, cfg.Report.LowStockThreshold)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		SaleUC:     saleUC,
		PurchaseUC: purchaseUC,
		ManagerUC:  managerUC,
		Login:      login,
		Reports:    reportSvc,
		JWTSecret:  cfg.JWT.Secret,
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
