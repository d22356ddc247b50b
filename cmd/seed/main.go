// seed carga los datos por defecto del restaurante: usuarios admin (728654) y empleado (123456)
// y las cinco categorías. Con -ejemplos también crea productos de ejemplo y registra su stock
// inicial como entradas del libro de movimientos. Es idempotente.
//
// Uso: go run ./cmd/seed [-ejemplos] [-migrar]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/application/seed"
	"github.com/jhoicas/inventario-restaurante/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-restaurante/pkg/config"
	"github.com/jhoicas/inventario-restaurante/pkg/logger"
)

func main() {
	examples := flag.Bool("ejemplos", false, "crear productos de ejemplo con stock inicial")
	migrate := flag.Bool("migrar", false, "aplicar migraciones antes de sembrar")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Storage.Driver != config.StoragePostgres {
		fmt.Fprintln(os.Stderr, "seed solo aplica a STORAGE_DRIVER=postgres; en memoria los datos se cargan al arrancar")
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *migrate {
		if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ledger := inventory.NewApplyMovementUseCase(postgres.NewTxRunner(pool), log.Component("ledger"))
	seeder := seed.NewSeeder(
		postgres.NewUserRepository(pool),
		postgres.NewCategoryRepository(pool),
		postgres.NewProductRepository(pool),
		ledger,
		log.Component("seed"),
	)

	res, err := seeder.Defaults(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("datos por defecto")
	}
	fmt.Printf("Usuarios creados: %d, categorías creadas: %d\n", res.Users, res.Categories)

	if *examples {
		res, err := seeder.Examples(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("productos de ejemplo")
		}
		fmt.Printf("Productos de ejemplo creados: %d\n", res.Products)
	}
}
