package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
)

// Con una categoría que no es UUID no se consulta la base.
func TestProductRepo_List_CategoriaNoUUID(t *testing.T) {
	list, err := NewProductRepository(nil).List(context.Background(), repository.ProductFilter{CategoryID: "bebidas"})
	require.NoError(t, err)
	assert.Empty(t, list)
}
