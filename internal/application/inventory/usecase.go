package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

const instrumentationName = "github.com/jhoicas/inventario-restaurante/internal/application/inventory"

// ApplyMovementUseCase es el núcleo del libro de stock: valida un movimiento y, en una sola
// transacción, bloquea la fila del producto (SELECT FOR UPDATE), escribe el nuevo stock y
// agrega el movimiento. No reintenta: un fallo de almacenamiento se devuelve al caller.
type ApplyMovementUseCase struct {
	txRunner TxRunner
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string

	tracer   trace.Tracer
	applied  metric.Int64Counter
	rejected metric.Int64Counter
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner, log zerolog.Logger) *ApplyMovementUseCase {
	meter := otel.Meter(instrumentationName)
	applied, err := meter.Int64Counter("inventario.movements.applied",
		metric.WithDescription("Movimientos de stock confirmados"))
	if err != nil {
		applied, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("applied")
	}
	rejected, err := meter.Int64Counter("inventario.movements.rejected",
		metric.WithDescription("Movimientos de stock rechazados, por motivo"))
	if err != nil {
		rejected, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("rejected")
	}
	return &ApplyMovementUseCase{
		txRunner: txRunner,
		log:      log,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
		tracer:   otel.Tracer(instrumentationName),
		applied:  applied,
		rejected: rejected,
	}
}

// MovementInput intención de movimiento ya tipada. ActorID es obligatorio: no existe usuario por defecto.
type MovementInput struct {
	ProductID string
	Direction entity.Direction
	Quantity  int64
	Reason    string
	ActorID   string
}

// MovementResult producto con el stock nuevo y el movimiento creado.
type MovementResult struct {
	Product  *entity.Product
	Movement *entity.Movement
}

// ApplyMovement valida y aplica un movimiento. Las validaciones se evalúan en orden y gana la
// primera que falla: cantidad, tipo, producto, usuario y, para salidas, stock suficiente.
// La suficiencia se comprueba contra la fila bloqueada, de modo que dos salidas concurrentes
// nunca leen el mismo stock.
//
// No es idempotente: dos llamadas idénticas generan dos movimientos.
func (uc *ApplyMovementUseCase) ApplyMovement(ctx context.Context, in MovementInput) (*MovementResult, error) {
	ctx, span := uc.tracer.Start(ctx, "inventory.ApplyMovement", trace.WithAttributes(
		attribute.String("inventory.product_id", in.ProductID),
		attribute.String("inventory.direction", string(in.Direction)),
		attribute.Int64("inventory.quantity", in.Quantity),
	))
	defer span.End()

	result, err := uc.apply(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", rejectionReason(err))))
		ev := uc.log.Warn()
		if domain.IsRetryable(err) {
			ev = uc.log.Error()
		}
		ev.Err(err).
			Str("product_id", in.ProductID).
			Str("actor_id", in.ActorID).
			Str("tipo", string(in.Direction)).
			Int64("cantidad", in.Quantity).
			Msg("movimiento rechazado")
		return nil, err
	}

	uc.applied.Add(ctx, 1, metric.WithAttributes(attribute.String("direction", string(in.Direction))))
	uc.log.Info().
		Str("movement_id", result.Movement.ID).
		Str("product_id", result.Product.ID).
		Str("actor_id", result.Movement.ActorID).
		Str("tipo", string(result.Movement.Direction)).
		Int64("cantidad", result.Movement.Quantity).
		Int64("stock_actual", result.Product.CurrentStock).
		Msg("movimiento registrado")
	return result, nil
}

func (uc *ApplyMovementUseCase) apply(ctx context.Context, in MovementInput) (*MovementResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !in.Direction.Valid() {
		return nil, domain.ErrInvalidDirection
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, domain.ErrProductNotFound
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = inventory.DefaultReason(in.Direction)
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		userRepo repository.UserRepository,
	) error {
		// Bloquea la fila del producto hasta Commit/Rollback
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if strings.TrimSpace(in.ActorID) == "" {
			return domain.ErrActorNotFound
		}
		actor, err := userRepo.GetByID(ctx, in.ActorID)
		if err != nil {
			return err
		}
		if actor == nil {
			return domain.ErrActorNotFound
		}

		newStock, err := inventory.ApplyDelta(product.CurrentStock, in.Direction, in.Quantity)
		if err != nil {
			return err
		}

		now := uc.now()
		if err := productRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:        uc.newID(),
			Direction: in.Direction,
			Quantity:  in.Quantity,
			Reason:    reason,
			ProductID: product.ID,
			ActorID:   actor.ID,
			CreatedAt: now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}

		product.CurrentStock = newStock
		product.UpdatedAt = now
		result = &MovementResult{Product: product, Movement: mov}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, domain.ErrInvalidDirection):
		return "invalid_direction"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domain.ErrActorNotFound):
		return "actor_not_found"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case domain.IsRetryable(err):
		return "storage"
	default:
		return "internal"
	}
}
