package inventory

import (
	"context"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
)

var maxQuantity = decimal.NewFromInt(math.MaxInt64)

// ApplyMovementFromRequest adapta el request HTTP al caso de uso ApplyMovement(ctx, MovementInput).
// La cantidad llega como decimal y debe ser un entero positivo representable en int64.
// actorID sale del token del caller; nunca del body.
func (uc *ApplyMovementUseCase) ApplyMovementFromRequest(ctx context.Context, actorID string, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
	if !in.Quantity.IsInteger() || !in.Quantity.IsPositive() || in.Quantity.GreaterThan(maxQuantity) {
		return nil, domain.ErrInvalidQuantity
	}
	input := MovementInput{
		ProductID: strings.TrimSpace(in.ProductID),
		Direction: entity.Direction(strings.TrimSpace(in.Type)),
		Quantity:  in.Quantity.IntPart(),
		Reason:    in.Reason,
		ActorID:   actorID,
	}
	res, err := uc.ApplyMovement(ctx, input)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterMovementResponse{
		Message:  "Stock actualizado correctamente",
		Product:  dto.NewProductResponse(res.Product),
		Movement: dto.NewMovementResponse(res.Movement),
	}, nil
}
