package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-restaurante/internal/application/auth"
	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/application/report"
	"github.com/jhoicas/inventario-restaurante/internal/application/usecase"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	ApplyMovement *inventory.ApplyMovementUseCase
	MovementQuery *inventory.MovementQueryUseCase
	LowStock      *inventory.LowStockUseCase
	Report        *report.ReportUseCase
	JWTSecret     string
	Log           zerolog.Logger
	// Ping comprueba el almacenamiento para /health; nil si no aplica.
	Ping func(ctx context.Context) error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.Ping))

	api := app.Group("/api")
	admin := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/code", authHandler.LoginWithCode)
	authGroup.Post("/sign-in", authHandler.SignIn)
	authGroup.Post("/sign-up", authHandler.SignUp)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	protected.Get("/categories", categoryHandler.List)
	protected.Post("/categories", admin, categoryHandler.Create)

	productHandler := NewProductHandler(deps.ProductUC, deps.MovementQuery, deps.Log)
	protected.Get("/catalog", productHandler.Catalog)
	protected.Get("/products", productHandler.List)
	protected.Post("/products", admin, productHandler.Create)
	protected.Get("/products/:id", productHandler.GetByID)
	protected.Get("/products/:id/movements", productHandler.Movements)
	protected.Get("/products/:id/reconciliation", admin, productHandler.Reconciliation)

	inventoryHandler := NewInventoryHandler(deps.ApplyMovement, deps.MovementQuery, deps.LowStock, deps.Log)
	protected.Post("/inventory/movements", inventoryHandler.RegisterMovement)
	protected.Get("/inventory/movements", inventoryHandler.ListMovements)
	protected.Get("/inventory/low-stock", inventoryHandler.LowStock)
	protected.Get("/inventory/depleted", inventoryHandler.Depleted)
	protected.Get("/inventory/summary", inventoryHandler.Summary)

	reportHandler := NewReportHandler(deps.Report, deps.Log)
	protected.Get("/reports/low-stock", admin, reportHandler.LowStockText)
	protected.Get("/reports/low-stock.pdf", admin, reportHandler.LowStockPDF)
}

// healthHandler godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func healthHandler(ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping != nil {
			if err := ping(c.Context()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "storage": "unavailable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
