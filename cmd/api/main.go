package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/jhoicas/banco-alimentos/internal/application/inventory"
	"github.com/jhoicas/banco-alimentos/internal/application/usecase"
	inframetrics "github.com/jhoicas/banco-alimentos/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/banco-alimentos/internal/infrastructure/pdf"
	"github.com/jhoicas/banco-alimentos/internal/infrastructure/postgres"
	"github.com/jhoicas/banco-alimentos/internal/infrastructure/realtime"
	httpRouter "github.com/jhoicas/banco-alimentos/internal/interfaces/http"
	"github.com/jhoicas/banco-alimentos/pkg/config"
	"github.com/jhoicas/banco-alimentos/pkg/logger"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "api",
		Short: "API de stock del banco de alimentos",
		Long: `Registra entradas, salidas y ajustes de stock con su movimiento
y auditoría en una sola transacción, y expone los listados de movimientos.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nivel de log (trace, debug, info, warn, error); por defecto LOG_LEVEL")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Inicia el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), logLevel)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd.Context(), logLevel)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Imprime la versión",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("banco-alimentos api %s\n", version)
		},
	})
	return cmd
}

func setup(logLevel string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	return cfg, log, nil
}

func migrate(ctx context.Context, logLevel string) error {
	cfg, log, err := setup(logLevel)
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	n, err := postgres.Migrate(ctx, pool, log)
	if err != nil {
		return err
	}
	log.Info().Int("applied", n).Msg("migraciones completas")
	return nil
}

func serve(ctx context.Context, logLevel string) error {
	cfg, log, err := setup(logLevel)
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	masterRepo := postgres.NewMasterProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.Stock.TxMaxRetries, log)

	hub := realtime.NewHub(256, log)
	go hub.Run(ctx)
	recorderMetrics := inframetrics.NewRecorder("banco_alimentos")

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, masterRepo, log,
		inventory.WithNotifier(hub),
		inventory.WithMetrics(recorderMetrics),
	)
	movementQueryUC := inventory.NewMovementQueryUseCase(movementRepo, log)
	reportUC := inventory.NewMovementReportUseCase(movementQueryUC,
		infrapdf.NewMovementReportGenerator(cfg.Report.Title, time.Local), cfg.Report.Title)
	productUC := usecase.NewProductUseCase(productRepo)
	masterUC := usecase.NewMasterProductUseCase(masterRepo, auditRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.HTTP.SwaggerFile,
		Path:     "docs",
		Title:    "Banco de Alimentos API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		Recorder:      registerMovementUC,
		Movements:     movementQueryUC,
		Reports:       reportUC,
		Products:      productUC,
		MasterCatalog: masterUC,
		JWTSecret:     cfg.JWT.Secret,
		Metrics:       recorderMetrics.Handler(),
		StockFeed:     hub.Serve,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.HTTP.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("servidor HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("aplicación detenida")
	return nil
}
