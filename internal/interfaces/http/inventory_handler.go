package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del libro de movimientos y niveles de stock.
type InventoryHandler struct {
	uc       *inventory.ApplyMovementUseCase
	queries  *inventory.MovementQueryUseCase
	lowStock *inventory.LowStockUseCase
	log      zerolog.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	uc *inventory.ApplyMovementUseCase,
	queries *inventory.MovementQueryUseCase,
	lowStock *inventory.LowStockUseCase,
	log zerolog.Logger,
) *InventoryHandler {
	return &InventoryHandler{uc: uc, queries: queries, lowStock: lowStock, log: log}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Entrada o salida sobre un producto. Quien registra es el usuario del token.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "producto_id, tipo (entrada|salida), cantidad, motivo"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ApplyMovementFromRequest(c.Context(), userID, in)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Últimos movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo 200 (por defecto 50)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit debe ser numérico"})
	}
	out, err := h.queries.ListRecent(c.Context(), page)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Description  Productos con stock_actual menor o igual a stock_minimo.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.lowStock.ListLowStock(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(dto.ProductListResponse{Items: dto.NewProductResponses(list), Total: len(list)})
}

// Depleted godoc
// @Summary      Productos agotados
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/inventory/depleted [get]
func (h *InventoryHandler) Depleted(c *fiber.Ctx) error {
	list, err := h.lowStock.ListDepleted(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(dto.ProductListResponse{Items: dto.NewProductResponses(list), Total: len(list)})
}

// Summary godoc
// @Summary      Resumen de niveles de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	out, err := h.lowStock.Summary(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}
