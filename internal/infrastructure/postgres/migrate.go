package postgres

import (
	"context"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationLockID clave del advisory lock: evita dos migradores simultáneos.
const migrationLockID = 7462839

// Migration archivo NNN_descripcion.sql embebido en el binario.
type Migration struct {
	Version  string
	Filename string
	Checksum string
	SQL      string
}

// Migrations devuelve las migraciones embebidas ordenadas por nombre.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones: %w", err)
	}
	seen := make(map[string]bool)
	out := make([]Migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		version, _, ok := strings.Cut(e.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("migración %s: se espera NNN_descripcion.sql", e.Name())
		}
		if seen[version] {
			return nil, fmt.Errorf("migración %s: versión %s duplicada", e.Name(), version)
		}
		seen[version] = true
		body, err := migrationsFS.ReadFile("migrations/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("leer %s: %w", e.Name(), err)
		}
		sum := sha256.Sum256(body)
		out = append(out, Migration{
			Version:  version,
			Filename: e.Name(),
			Checksum: hex.EncodeToString(sum[:]),
			SQL:      string(body),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Filename < out[j].Filename })
	return out, nil
}

// Migrate aplica las migraciones pendientes, cada una en su propia transacción, y registra
// versión y checksum en schema_migrations. Una migración ya aplicada con otro checksum es un error.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	migrations, err := Migrations()
	if err != nil {
		return err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return mapError("acquire connection", err)
	}
	defer conn.Release()

	var locked bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", migrationLockID).Scan(&locked); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	if !locked {
		return errors.New("otro proceso está aplicando migraciones")
	}
	defer func() { _, _ = conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", migrationLockID) }()

	if _, err := conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			filename   TEXT NOT NULL,
			checksum   TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("crear schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var existing string
		err := conn.QueryRow(ctx, "SELECT checksum FROM schema_migrations WHERE version = $1", m.Version).Scan(&existing)
		switch {
		case err == nil && existing == m.Checksum:
			log.Debug().Str("migration", m.Filename).Msg("migración ya aplicada")
			continue
		case err == nil:
			return fmt.Errorf("migración %s: checksum distinto al aplicado (%s)", m.Filename, existing)
		case !errors.Is(err, pgx.ErrNoRows):
			return fmt.Errorf("consultar schema_migrations: %w", err)
		}

		if err := applyMigration(ctx, conn.Conn(), m); err != nil {
			return err
		}
		log.Info().Str("migration", m.Filename).Msg("migración aplicada")
	}
	return nil
}

func applyMigration(ctx context.Context, conn *pgx.Conn, m Migration) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return mapError("begin migration", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, m.SQL); err != nil {
		return fmt.Errorf("ejecutar %s: %w", m.Filename, err)
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO schema_migrations (version, filename, checksum) VALUES ($1, $2, $3)",
		m.Version, m.Filename, m.Checksum); err != nil {
		return fmt.Errorf("registrar %s: %w", m.Filename, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError("commit migration", err)
	}
	return nil
}
