package inventory

import (
	"context"

	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda ningún efecto visible; si devuelve nil todo se confirma junto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		userRepo repository.UserRepository,
	) error) error
}
