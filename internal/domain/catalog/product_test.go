package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with defaults", func(t *testing.T) {
		p, err := NewProduct("Gold Ring", "GR-001", ProductTypeFinishedGood, decimal.NewFromInt(120))

		require.NoError(t, err)
		assert.Equal(t, "Gold Ring", p.Name)
		assert.Equal(t, "GR-001", p.SKU)
		assert.Equal(t, DefaultMinStock, p.MinStock)
		assert.Equal(t, "g", p.Unit)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := NewProduct("", "SKU", ProductTypeRawMaterial, decimal.Zero)
		require.Error(t, err)

		_, err = NewProduct("Name", "", ProductTypeRawMaterial, decimal.Zero)
		require.Error(t, err)

		_, err = NewProduct("Name", "SKU", ProductType("SERVICE"), decimal.Zero)
		require.Error(t, err)

		_, err = NewProduct("Name", "SKU", ProductTypeRawMaterial, decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func TestProduct_SetMinStock(t *testing.T) {
	p, err := NewProduct("Gold Ring", "GR-001", ProductTypeFinishedGood, decimal.NewFromInt(120))
	require.NoError(t, err)

	require.NoError(t, p.SetMinStock(5))
	assert.Equal(t, int64(5), p.MinStock)

	require.Error(t, p.SetMinStock(-1))
	assert.Equal(t, int64(5), p.MinStock)
}

func TestProduct_SetPrice(t *testing.T) {
	p, err := NewProduct("Gold Ring", "GR-001", ProductTypeFinishedGood, decimal.NewFromInt(120))
	require.NoError(t, err)

	require.NoError(t, p.SetPrice(decimal.NewFromInt(99)))
	assert.Equal(t, "99", p.Price.String())

	require.Error(t, p.SetPrice(decimal.NewFromInt(-5)))
}
