package repository

import (
	"context"

	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP). También es el
// directorio de actores que consulta el libro de movimientos.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByAccessCode(ctx context.Context, code string) (*entity.User, error)
	Count(ctx context.Context) (int, error)
}
