package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-restaurante/internal/domain/catalog"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
)

func TestSortProducts_OrdenEspanol(t *testing.T) {
	products := []*entity.Product{
		{Name: "Papas Fritas"},
		{Name: "Ñoquis"},
		{Name: "agua purificada"},
		{Name: "Nachos"},
		{Name: "Ácido cítrico"},
	}
	catalog.SortProducts(products)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Ácido cítrico", "agua purificada", "Nachos", "Ñoquis", "Papas Fritas"}, names)
}

func TestSortCategories(t *testing.T) {
	cats := []*entity.Category{{Name: "Postres"}, {Name: "Bebidas"}, {Name: "Hamburguesas"}}
	catalog.SortCategories(cats)
	assert.Equal(t, "Bebidas", cats[0].Name)
	assert.Equal(t, "Postres", cats[2].Name)
}

func TestSameName(t *testing.T) {
	assert.True(t, catalog.SameName("Bebidas", "BEBIDAS"))
	assert.False(t, catalog.SameName("Bebidas", "Postres"))
}
