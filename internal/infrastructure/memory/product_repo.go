package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/catalog"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// ProductRepo implementa repository.ProductRepository en memoria.
type ProductRepo struct{ v view }

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (st *state) productOut(p entity.Product) *entity.Product {
	if c, ok := st.categories[p.CategoryID]; ok {
		p.CategoryName = c.Name
	}
	return &p
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return r.v.read(func(st *state) error {
		if _, ok := st.categories[p.CategoryID]; !ok {
			return domain.ErrCategoryNotFound
		}
		if _, ok := st.products[p.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, other := range st.products {
			if other.CategoryID == p.CategoryID && catalog.SameName(other.Name, p.Name) {
				return domain.ErrDuplicate
			}
		}
		if p.CurrentStock < 0 {
			return domain.ErrInsufficientStock
		}
		stored := *p
		stored.CategoryName = ""
		st.products[p.ID] = stored
		return nil
	})
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.read(func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = st.productOut(p)
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) GetByCategoryAndName(ctx context.Context, categoryID, name string) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.read(func(st *state) error {
		for _, p := range st.products {
			if p.CategoryID == categoryID && catalog.SameName(p.Name, name) {
				out = st.productOut(p)
				return nil
			}
		}
		return nil
	})
	return out, err
}

// GetForUpdate dentro de Run el mutex del almacén ya está tomado; equivale a GetByID.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int64) error {
	return r.v.read(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrProductNotFound
		}
		if stock < 0 {
			return domain.ErrInsufficientStock
		}
		p.CurrentStock = stock
		st.products[id] = p
		return nil
	})
}

func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	err := r.v.read(func(st *state) error {
		for _, p := range st.products {
			if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
				continue
			}
			out = append(out, st.productOut(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	catalog.SortProducts(out)
	return out, nil
}
