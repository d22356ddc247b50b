package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/catalog"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// ProductUseCase alta y consulta de productos. El stock solo cambia vía movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un nuevo producto. El stock inicia en 0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = entity.UnitUnidad
	}
	if !entity.ValidUnit(unit) {
		return nil, domain.ErrInvalidInput
	}

	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	existing, err := uc.repo.GetByCategoryAndName(ctx, category.ID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Unit:         unit,
		MinStock:     in.MinStock,
		CurrentStock: 0,
		Price:        in.Price,
		CategoryID:   category.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	product.CategoryName = category.Name
	out := dto.NewProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// List lista productos ordenados por nombre, con filtro opcional por categoría y búsqueda.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	catalog.SortProducts(list)
	return &dto.ProductListResponse{Items: dto.NewProductResponses(list), Total: len(list)}, nil
}

// Catalog categorías con sus productos. Las categorías sin productos también aparecen.
func (uc *ProductUseCase) Catalog(ctx context.Context) (*dto.CatalogResponse, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.repo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	catalog.SortCategories(categories)
	catalog.SortProducts(products)

	byCategory := make(map[string][]*entity.Product, len(categories))
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}
	out := &dto.CatalogResponse{Categories: make([]dto.CatalogCategoryResponse, 0, len(categories))}
	for _, c := range categories {
		out.Categories = append(out.Categories, dto.CatalogCategoryResponse{
			CategoryResponse: dto.NewCategoryResponse(c),
			Products:         dto.NewProductResponses(byCategory[c.ID]),
		})
	}
	return out, nil
}
