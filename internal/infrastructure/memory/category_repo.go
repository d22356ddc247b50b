package memory

import (
	"context"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/catalog"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// CategoryRepo implementa repository.CategoryRepository en memoria.
type CategoryRepo struct{ v view }

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	return r.v.read(func(st *state) error {
		if _, ok := st.categories[c.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, other := range st.categories {
			if catalog.SameName(other.Name, c.Name) {
				return domain.ErrDuplicate
			}
		}
		st.categories[c.ID] = *c
		return nil
	})
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var out *entity.Category
	err := r.v.read(func(st *state) error {
		if c, ok := st.categories[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	var out *entity.Category
	err := r.v.read(func(st *state) error {
		for _, c := range st.categories {
			if catalog.SameName(c.Name, name) {
				c := c
				out = &c
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0)
	err := r.v.read(func(st *state) error {
		for _, c := range st.categories {
			c := c
			out = append(out, &c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	catalog.SortCategories(out)
	return out, nil
}
