package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository en memoria.
type UserRepo struct{ v view }

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	return r.v.read(func(st *state) error {
		if _, ok := st.users[u.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, other := range st.users {
			if u.Email != "" && strings.EqualFold(other.Email, u.Email) {
				return domain.ErrEmailAlreadyExists
			}
			if u.AccessCode != "" && other.AccessCode == u.AccessCode {
				return domain.ErrDuplicate
			}
		}
		st.users[u.ID] = *u
		return nil
	})
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.ID == id })
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if email == "" {
		return nil, nil
	}
	return r.find(func(u entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepo) GetByAccessCode(ctx context.Context, code string) (*entity.User, error) {
	if code == "" {
		return nil, nil
	}
	return r.find(func(u entity.User) bool { return u.AccessCode == code })
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.v.read(func(st *state) error {
		n = len(st.users)
		return nil
	})
	return n, err
}

func (r *UserRepo) find(match func(entity.User) bool) (*entity.User, error) {
	var out *entity.User
	err := r.v.read(func(st *state) error {
		for _, u := range st.users {
			if match(u) {
				u := u
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}
