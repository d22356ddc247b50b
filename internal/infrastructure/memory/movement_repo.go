package memory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// MovementRepo implementa repository.MovementRepository en memoria. Solo admite inserciones.
type MovementRepo struct{ v view }

var _ repository.MovementRepository = (*MovementRepo)(nil)

func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	return r.v.read(func(st *state) error {
		if _, ok := st.products[m.ProductID]; !ok {
			return domain.ErrProductNotFound
		}
		if _, ok := st.users[m.ActorID]; !ok {
			return domain.ErrActorNotFound
		}
		if _, ok := st.movementIDs[m.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, other := range st.pending() {
			if other.ID == m.ID {
				return domain.ErrDuplicate
			}
		}
		st.movements = append(st.movements, *m)
		if r.v.tx == nil {
			st.commit()
		}
		return nil
	})
}

func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]repository.MovementDetail, error) {
	out := make([]repository.MovementDetail, 0)
	err := r.v.read(func(st *state) error {
		for i := len(st.movements) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
			m := st.movements[i]
			d := repository.MovementDetail{Movement: m}
			if p, ok := st.products[m.ProductID]; ok {
				d.ProductName = p.Name
				d.ProductUnit = p.Unit
				if c, ok := st.categories[p.CategoryID]; ok {
					d.CategoryName = c.Name
				}
			}
			if u, ok := st.users[m.ActorID]; ok {
				d.ActorName = u.Name
			}
			out = append(out, d)
		}
		return nil
	})
	return out, err
}

func (r *MovementRepo) ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0)
	err := r.v.read(func(st *state) error {
		skipped := 0
		for i := len(st.movements) - 1; i >= 0; i-- {
			m := st.movements[i]
			if m.ProductID != productID {
				continue
			}
			if from != nil && m.CreatedAt.Before(*from) {
				continue
			}
			if to != nil && m.CreatedAt.After(*to) {
				continue
			}
			if skipped < offset {
				skipped++
				continue
			}
			if limit > 0 && len(out) >= limit {
				break
			}
			out = append(out, &m)
		}
		return nil
	})
	return out, err
}

func (r *MovementRepo) SumSignedByProduct(ctx context.Context, productID string) (int64, error) {
	var sum int64
	err := r.v.read(func(st *state) error {
		for i := range st.movements {
			if st.movements[i].ProductID == productID {
				sum += st.movements[i].SignedQuantity()
			}
		}
		return nil
	})
	return sum, err
}
