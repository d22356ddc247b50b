package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx: los repositorios funcionan con ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Códigos SQLSTATE usados por los repositorios.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeInvalidTextRepr      = "22P02"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isInvalidID indica un id que no es un UUID válido (22P02); se trata como "no existe".
func isInvalidID(err error) bool {
	return pgCode(err) == codeInvalidTextRepr
}

// mapError traduce errores de PostgreSQL a errores de dominio conservando el detalle.
// op describe la operación ("insert movement", "update stock"...).
// Todo error sin SQLSTATE (red, timeout, conexión cerrada) es almacenamiento no disponible.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch pgCode(err) {
	case codeUniqueViolation:
		return domain.ErrDuplicate
	case codeForeignKeyViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case codeCheckViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrInsufficientStock)
	case codeSerializationFailure, codeDeadlockDetected:
		return fmt.Errorf("%s: %w: %v", op, domain.ErrTransactionAborted, err)
	}
	if pgCode(err) == "" && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
