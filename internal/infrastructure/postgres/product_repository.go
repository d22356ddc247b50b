package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.name, p.description, p.unit, p.min_stock, p.current_stock, p.price,
	p.category_id, c.name, p.created_at, p.updated_at`

const productFrom = `
	FROM products p
	JOIN categories c ON c.id = p.category_id`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Unit, &p.MinStock, &p.CurrentStock, &p.Price,
		&p.CategoryID, &p.CategoryName, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, unit, min_stock, current_stock, price, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Unit, product.MinStock,
		product.CurrentStock, product.Price, product.CategoryID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation || isInvalidID(err) {
			return domain.ErrCategoryNotFound
		}
		return mapError("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, "get product", `SELECT `+productColumns+productFrom+` WHERE p.id = $1`, id)
}

// GetByCategoryAndName obtiene un producto por categoría y nombre (sin distinguir mayúsculas).
func (r *ProductRepo) GetByCategoryAndName(ctx context.Context, categoryID, name string) (*entity.Product, error) {
	return r.getOne(ctx, "get product by name",
		`SELECT `+productColumns+productFrom+` WHERE p.category_id = $1 AND lower(p.name) = lower($2)`,
		categoryID, name)
}

// GetForUpdate obtiene el producto bloqueando su fila hasta el fin de la transacción.
// Solo tiene efecto si el repositorio se construyó con una tx.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, "lock product",
		`SELECT `+productColumns+productFrom+` WHERE p.id = $1 FOR UPDATE OF p`, id)
}

func (r *ProductRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, mapError(op, err)
	}
	return p, nil
}

// UpdateStock escribe el contador de stock. El CHECK current_stock >= 0 respalda la invariante.
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int64) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrProductNotFound
		}
		return mapError("update stock", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// List lista productos ordenados por nombre, con filtros opcionales.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var (
		where []string
		args  []any
	)
	if filter.CategoryID != "" {
		// Una categoría que no es UUID no puede tener productos.
		if _, err := uuid.Parse(filter.CategoryID); err != nil {
			return []*entity.Product{}, nil
		}
		args = append(args, filter.CategoryID)
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		where = append(where, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}
	query := `SELECT ` + productColumns + productFrom
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY p.name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list products", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list products", err)
	}
	return list, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
