package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-restaurante/internal/application/inventory"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// OpeningReason motivo de los movimientos que cargan el stock inicial.
const OpeningReason = "Inventario inicial"

type defaultUser struct {
	code, name, role string
}

var defaultUsers = []defaultUser{
	{"728654", "Administrador", entity.RoleAdmin},
	{"123456", "Empleado", entity.RoleEmpleado},
}

var defaultCategories = []entity.Category{
	{Name: "Hamburguesas", Description: "Hamburguesas y sandwiches"},
	{Name: "Bebidas", Description: "Bebidas y refrescos"},
	{Name: "Papas y Acompañamientos", Description: "Papas fritas y acompañamientos"},
	{Name: "Postres", Description: "Postres y dulces"},
	{Name: "Insumos", Description: "Ingredientes y materiales"},
}

type sampleProduct struct {
	name, description, unit, category string
	minStock, opening                 int64
	price                             string
}

var sampleProducts = []sampleProduct{
	{"Hamburguesa Clásica", "Hamburguesa de res con lechuga, tomate y cebolla", entity.UnitUnidad, "Hamburguesas", 10, 18, "45.00"},
	{"Hamburguesa con Queso", "Hamburguesa de res con queso cheddar", entity.UnitUnidad, "Hamburguesas", 10, 8, "50.00"},
	{"Papas Fritas Grandes", "Porción grande de papas fritas", entity.UnitPorcion, "Papas y Acompañamientos", 20, 24, "25.00"},
	{"Papas Fritas Pequeñas", "Porción pequeña de papas fritas", entity.UnitPorcion, "Papas y Acompañamientos", 20, 12, "15.00"},
	{"Refresco de Naranja", "Refresco de naranja 500ml", entity.UnitUnidad, "Bebidas", 15, 20, "20.00"},
	{"Agua Purificada", "Botella de agua 600ml", entity.UnitUnidad, "Bebidas", 20, 6, "12.00"},
	{"Helado de Vainilla", "Cono de helado de vainilla", entity.UnitUnidad, "Postres", 10, 0, "18.00"},
	{"Pan de Hamburguesa", "Pan para hamburguesa (paquete de 12)", entity.UnitPaquete, "Insumos", 5, 9, "30.00"},
	{"Carne Molida", "Carne molida para hamburguesas (kg)", entity.UnitKg, "Insumos", 3, 2, "120.00"},
}

// Result cuántos registros creó cada paso (0 si ya existían).
type Result struct {
	Users      int
	Categories int
	Products   int
}

// Seeder carga los datos por defecto del restaurante. Es idempotente: lo que ya existe no se toca.
type Seeder struct {
	users      repository.UserRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	ledger     *inventory.ApplyMovementUseCase
	log        zerolog.Logger
}

// NewSeeder construye el seeder. El stock inicial de los ejemplos pasa por el libro de movimientos.
func NewSeeder(
	users repository.UserRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	ledger *inventory.ApplyMovementUseCase,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{users: users, categories: categories, products: products, ledger: ledger, log: log}
}

// Defaults crea los usuarios (admin 728654, empleado 123456) y las cinco categorías.
func (s *Seeder) Defaults(ctx context.Context) (Result, error) {
	var res Result
	for _, du := range defaultUsers {
		existing, err := s.users.GetByAccessCode(ctx, du.code)
		if err != nil {
			return res, fmt.Errorf("seed: buscar usuario %s: %w", du.name, err)
		}
		if existing != nil {
			continue
		}
		now := time.Now()
		u := &entity.User{ID: uuid.NewString(), Name: du.name, AccessCode: du.code, Role: du.role, CreatedAt: now, UpdatedAt: now}
		if err := s.users.Create(ctx, u); err != nil {
			return res, fmt.Errorf("seed: crear usuario %s: %w", du.name, err)
		}
		res.Users++
	}

	for _, dc := range defaultCategories {
		existing, err := s.categories.GetByName(ctx, dc.Name)
		if err != nil {
			return res, fmt.Errorf("seed: buscar categoría %s: %w", dc.Name, err)
		}
		if existing != nil {
			continue
		}
		c := &entity.Category{ID: uuid.NewString(), Name: dc.Name, Description: dc.Description, CreatedAt: time.Now()}
		if err := s.categories.Create(ctx, c); err != nil {
			return res, fmt.Errorf("seed: crear categoría %s: %w", dc.Name, err)
		}
		res.Categories++
	}

	s.log.Info().Int("usuarios", res.Users).Int("categorias", res.Categories).Msg("datos por defecto")
	return res, nil
}

// Examples crea los productos de ejemplo si el catálogo está vacío y registra su stock inicial
// como entradas del administrador.
func (s *Seeder) Examples(ctx context.Context) (Result, error) {
	var res Result
	existing, err := s.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return res, fmt.Errorf("seed: listar productos: %w", err)
	}
	if len(existing) > 0 {
		s.log.Info().Int("productos", len(existing)).Msg("ya existen productos; no se cargan ejemplos")
		return res, nil
	}

	admin, err := s.users.GetByAccessCode(ctx, defaultUsers[0].code)
	if err != nil {
		return res, fmt.Errorf("seed: buscar administrador: %w", err)
	}
	if admin == nil {
		return res, fmt.Errorf("seed: falta el administrador; ejecute primero los datos por defecto")
	}

	for _, sp := range sampleProducts {
		cat, err := s.categories.GetByName(ctx, sp.category)
		if err != nil {
			return res, fmt.Errorf("seed: buscar categoría %s: %w", sp.category, err)
		}
		if cat == nil {
			s.log.Warn().Str("categoria", sp.category).Str("producto", sp.name).Msg("categoría inexistente; se omite")
			continue
		}
		price := decimal.RequireFromString(sp.price)
		now := time.Now()
		p := &entity.Product{
			ID:          uuid.NewString(),
			Name:        sp.name,
			Description: sp.description,
			Unit:        sp.unit,
			MinStock:    sp.minStock,
			Price:       &price,
			CategoryID:  cat.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.products.Create(ctx, p); err != nil {
			return res, fmt.Errorf("seed: crear producto %s: %w", sp.name, err)
		}
		if sp.opening > 0 {
			_, err := s.ledger.ApplyMovement(ctx, inventory.MovementInput{
				ProductID: p.ID,
				Direction: entity.DirectionIncrease,
				Quantity:  sp.opening,
				Reason:    OpeningReason,
				ActorID:   admin.ID,
			})
			if err != nil {
				return res, fmt.Errorf("seed: stock inicial de %s: %w", sp.name, err)
			}
		}
		res.Products++
	}

	s.log.Info().Int("productos", res.Products).Msg("productos de ejemplo")
	return res, nil
}
