package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/jhoicas/rustock/internal/application/auth"
	"github.com/jhoicas/rustock/internal/application/inventory"
	"github.com/jhoicas/rustock/internal/application/report"
	"github.com/jhoicas/rustock/internal/domain"
	infrapdf "github.com/jhoicas/rustock/internal/infrastructure/pdf"
	"github.com/jhoicas/rustock/internal/infrastructure/postgres"
	"github.com/jhoicas/rustock/internal/interfaces/console"
	"github.com/jhoicas/rustock/pkg/config"
	"github.com/jhoicas/rustock/pkg/logger"
)

func main() {
	lang := pflag.StringP("lang", "l", "es", "idioma para el formato de importes (es, en, ...)")
	logLevel := pflag.String("log-level", "", "nivel de log; por defecto LOG_LEVEL")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.App.LogLevel = *logLevel
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintln(os.Stderr, "idioma inválido:", *lang)
		os.Exit(2)
	}

	// stdout queda reservado para los menús
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
		fmt.Printf("Se creó el manager por defecto %q; cambie la contraseña.\n", postgres.DefaultManagerUsername)
	}

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	c := console.New(os.Stdin, os.Stdout, console.Deps{
		ProductUC:  inventory.NewProductUseCase(txRunner, productRepo, log),
		SaleUC:     inventory.NewSaleUseCase(txRunner, productRepo, saleRepo, log),
		PurchaseUC: inventory.NewPurchaseUseCase(txRunner, purchaseRepo, log),
		ManagerUC: auth.NewManagerUseCase(postgres.NewManagerRepository(pool), auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}, log),
		Reports: report.NewService(productRepo, saleRepo, purchaseRepo,
			infrapdf.NewMarotoReportGenerator(cfg.App.Name, tag), cfg.Report.LowStockThreshold),
		MaxAttempts: cfg.Login.MaxAttempts,
		Language:    tag,
		Log:         log,
	})

	if err := c.Run(ctx); err != nil {
		// "acceso denegado" ya se imprimió en la consola
		if !errors.Is(err, domain.ErrTooManyAttempts) {
			log.Error().Err(err).Msg("sesión de consola")
		}
		stop()
		pool.Close()
		os.Exit(1)
	}
	fmt.Println("Hasta luego.")
}
