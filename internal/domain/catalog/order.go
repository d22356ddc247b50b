// Package catalog ordena categorías y productos como los ve el personal del restaurante:
// alfabéticamente según las reglas del español (á junto a a, ñ después de n), sin distinguir mayúsculas.
package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
)

// Un Collator no es seguro para uso concurrente; se crea uno por llamada.
func newCollator() *collate.Collator {
	return collate.New(language.Spanish, collate.IgnoreCase)
}

// SortProducts ordena por nombre (estable).
func SortProducts(products []*entity.Product) {
	c := newCollator()
	sort.SliceStable(products, func(i, j int) bool {
		return c.CompareString(products[i].Name, products[j].Name) < 0
	})
}

// SortCategories ordena por nombre (estable).
func SortCategories(categories []*entity.Category) {
	c := newCollator()
	sort.SliceStable(categories, func(i, j int) bool {
		return c.CompareString(categories[i].Name, categories[j].Name) < 0
	})
}

// SameName compara dos nombres sin distinguir mayúsculas.
func SameName(a, b string) bool {
	return newCollator().CompareString(a, b) == 0
}
