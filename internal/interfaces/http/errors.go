package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
	"github.com/jhoicas/inventario-restaurante/internal/domain"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// Orden importante: los errores de almacenamiento pueden envolver otros.
var errorMappings = []errorMapping{
	{domain.ErrStorageUnavailable, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"},
	{domain.ErrTransactionAborted, fiber.StatusServiceUnavailable, "TRANSACTION_ABORTED"},
	{domain.ErrInvalidQuantity, fiber.StatusBadRequest, "INVALID_QUANTITY"},
	{domain.ErrInvalidDirection, fiber.StatusBadRequest, "INVALID_DIRECTION"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND"},
	{domain.ErrActorNotFound, fiber.StatusNotFound, "ACTOR_NOT_FOUND"},
	{domain.ErrCategoryNotFound, fiber.StatusNotFound, "CATEGORY_NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// writeDomainError traduce un error de dominio a status + dto.ErrorResponse.
// Lo que no es de dominio responde 500 sin exponer el detalle, que queda en el log.
func writeDomainError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			resp := dto.ErrorResponse{Code: m.code, Message: err.Error()}
			if m.status == fiber.StatusServiceUnavailable {
				resp.Message = m.target.Error()
				resp.Retryable = true
				log.Error().Err(err).Str("path", c.Path()).Msg("almacenamiento no disponible")
			}
			return c.Status(m.status).JSON(resp)
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
