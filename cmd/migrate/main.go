// migrate aplica las migraciones SQL embebidas sobre la base configurada.
//
// Uso: go run ./cmd/migrate [-list]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jhoicas/inventario-restaurante/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-restaurante/pkg/config"
	"github.com/jhoicas/inventario-restaurante/pkg/logger"
)

func main() {
	list := flag.Bool("list", false, "solo listar las migraciones embebidas")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})

	if *list {
		migrations, err := postgres.Migrations()
		if err != nil {
			log.Fatal().Err(err).Msg("leer migraciones")
		}
		for _, m := range migrations {
			fmt.Printf("%s\t%s\t%s\n", m.Version, m.Filename, m.Checksum[:12])
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
		log.Error().Err(err).Msg("migraciones")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Msg("esquema al día")
}
