// seed_catalog carga el catálogo de productos maestros desde un CSV.
//
// Uso: go run ./cmd/seed_catalog --file catalogo.csv [--latin1]
// Columnas: nombre;unidad;grupo;subgrupo;categoria. Los nombres ya existentes se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/banco-alimentos/internal/application/usecase"
	"github.com/jhoicas/banco-alimentos/internal/domain"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/infrastructure/postgres"
	"github.com/jhoicas/banco-alimentos/pkg/config"
	"github.com/jhoicas/banco-alimentos/pkg/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		file   string
		latin1 bool
		user   string
	)
	cmd := &cobra.Command{
		Use:          "seed_catalog",
		Short:        "Carga productos maestros desde un CSV",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), file, latin1, user)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "catalogo.csv", "Ruta del CSV")
	cmd.Flags().BoolVar(&latin1, "latin1", false, "El archivo está en ISO-8859-1")
	cmd.Flags().StringVar(&user, "user", "seed", "Usuario registrado en la auditoría")
	return cmd
}

func run(ctx context.Context, file string, latin1 bool, user string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("seed-catalog")

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	items, err := readCatalog(f, latin1)
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	uc := usecase.NewMasterProductUseCase(
		postgres.NewMasterProductRepository(pool),
		postgres.NewAuditLogRepository(pool),
		log,
	)
	actor := entity.Actor{ID: user, Name: user}

	var created, skipped int
	for _, in := range items {
		if _, err := uc.Create(ctx, actor, in); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				skipped++
				continue
			}
			return fmt.Errorf("producto %q: %w", in.Name, err)
		}
		created++
	}
	log.Info().Int("created", created).Int("skipped", skipped).Str("file", file).Msg("catálogo cargado")
	return nil
}
