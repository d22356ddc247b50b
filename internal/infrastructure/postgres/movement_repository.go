package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre PostgreSQL. Solo INSERT y SELECT: un trigger
// rechaza UPDATE y DELETE sobre la tabla.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create agrega un movimiento al libro. seq lo asigna la base de datos.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, direction, quantity, reason, product_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, string(m.Direction), m.Quantity, m.Reason, m.ProductID, m.ActorID, m.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation && constraintName(err) == "movements_user_id_fkey" {
			return domain.ErrActorNotFound
		}
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrProductNotFound
		}
		return mapError("insert movement", err)
	}
	return nil
}

// ListRecent últimos movimientos con nombres de producto, categoría y usuario.
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]repository.MovementDetail, error) {
	query := `
		SELECT m.id, m.direction, m.quantity, m.reason, m.product_id, m.user_id, m.created_at,
		       p.name, p.unit, c.name, u.name
		FROM movements m
		JOIN products p ON p.id = m.product_id
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = m.user_id
		ORDER BY m.seq DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, mapError("list movements", err)
	}
	defer rows.Close()
	list := make([]repository.MovementDetail, 0)
	for rows.Next() {
		var (
			d   repository.MovementDetail
			dir string
		)
		if err := rows.Scan(
			&d.ID, &dir, &d.Quantity, &d.Reason, &d.ProductID, &d.ActorID, &d.CreatedAt,
			&d.ProductName, &d.ProductUnit, &d.CategoryName, &d.ActorName,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		d.Direction = entity.Direction(dir)
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list movements", err)
	}
	return list, nil
}

// ListByProduct historial de un producto, del más reciente al más antiguo, con rango de fechas opcional.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, direction, quantity, reason, product_id, user_id, created_at
		FROM movements
		WHERE product_id = $1
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY seq DESC
		LIMIT NULLIF($4, 0) OFFSET $5`
	rows, err := r.q.Query(ctx, query, productID, from, to, limit, offset)
	if err != nil {
		return nil, mapError("list product movements", err)
	}
	defer rows.Close()
	list := make([]*entity.Movement, 0)
	for rows.Next() {
		var (
			m   entity.Movement
			dir string
		)
		if err := rows.Scan(&m.ID, &dir, &m.Quantity, &m.Reason, &m.ProductID, &m.ActorID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Direction = entity.Direction(dir)
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list product movements", err)
	}
	return list, nil
}

// SumSignedByProduct suma firmada (entradas - salidas) de los movimientos del producto.
func (r *MovementRepo) SumSignedByProduct(ctx context.Context, productID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'salida' THEN -quantity ELSE quantity END), 0)::bigint
		FROM movements WHERE product_id = $1`
	var sum int64
	if err := r.q.QueryRow(ctx, query, productID).Scan(&sum); err != nil {
		return 0, mapError("sum movements", err)
	}
	return sum, nil
}
