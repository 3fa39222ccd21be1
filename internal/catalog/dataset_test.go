package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClothingShop/internal/catalog"
)

func TestLoadDefault(t *testing.T) {
	s, err := catalog.LoadDefault()
	require.NoError(t, err)

	products := s.ListAll()
	require.Len(t, products, 4)

	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)

	first := products[0]
	assert.Equal(t, int64(500000), first.Price)
	assert.Equal(t, "t_shirt", first.Image)
	require.Len(t, first.Reviews, 3)
	assert.Equal(t, catalog.Review{Author: "Nghia", Rating: 5, Comment: "Sản phẩm tuyệt vời!"}, first.Reviews[0])
	assert.Equal(t, "Nghia tran", first.Reviews[2].Author)

	assert.Len(t, products[1].Reviews, 2)
	assert.NotNil(t, products[2].Reviews)
	assert.Empty(t, products[2].Reviews)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	_, err := catalog.Load(strings.NewReader("products:\n  - id: 1\n    colour: red\n"))
	assert.Error(t, err)
}

func TestLoad_InvalidDataset(t *testing.T) {
	_, err := catalog.Load(strings.NewReader("products:\n  - id: 1\n  - id: 1\n"))
	assert.ErrorIs(t, err, catalog.ErrDuplicateID)
}

func TestLoad_EmptyDocument(t *testing.T) {
	s, err := catalog.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}
