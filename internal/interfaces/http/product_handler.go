package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/application/usecase"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP de productos y su historial.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	queries *inventory.MovementQueryUseCase
	log     zerolog.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, queries *inventory.MovementQueryUseCase, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, queries: queries, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Description  El stock inicia en 0; solo cambia registrando movimientos.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "nombre, categoria_id, unidad, stock_minimo, precio"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Param        q            query  string  false  "Buscar por nombre"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), repository.ProductFilter{
		CategoryID: c.Query("category_id"),
		Search:     c.Query("q"),
	})
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Máximo 200 (por defecto 50)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ProductMovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movements [get]
func (h *ProductHandler) Movements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit y offset deben ser numéricos"})
	}
	out, err := h.queries.ListByProduct(c.Context(), c.Params("id"), page)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Reconciliation godoc
// @Summary      Conciliar stock con el libro de movimientos
// @Description  Compara stock_actual con la suma firmada de los movimientos del producto.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ReconciliationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reconciliation [get]
func (h *ProductHandler) Reconciliation(c *fiber.Ctx) error {
	out, err := h.queries.Reconcile(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Catalog godoc
// @Summary      Catálogo agrupado por categoría
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *ProductHandler) Catalog(c *fiber.Ctx) error {
	out, err := h.uc.Catalog(c.Context())
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}
