package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterpaul1/cis453l-project/pkg/domain/model"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := model.DefaultCatalog()

	t.Run("Prices", func(t *testing.T) {
		cases := []struct {
			item, size, price string
		}{
			{"Latte", "Small", "3.00"},
			{"Latte", "Medium", "4.00"},
			{"Latte", "Large", "5.00"},
			{"Espresso", "Small", "1.25"},
			{"Espresso", "Medium", "2.50"},
			{"Espresso", "Large", "3.25"},
			{"Double Shot Espresso", "Small", "2.50"},
			{"Banana Bread", "Small", "2.00"},
		}
		for _, c := range cases {
			price, ok := catalog.PriceOf(c.item, c.size)
			require.True(t, ok, "%s/%s", c.item, c.size)
			assertAmount(t, c.price, price)
		}
	})

	t.Run("Unsellable combinations", func(t *testing.T) {
		_, ok := catalog.PriceOf("Double Shot Espresso", "Large")
		assert.False(t, ok)
		_, ok = catalog.PriceOf("Mocha", "Small")
		assert.False(t, ok)
	})

	t.Run("Sizes in declared order", func(t *testing.T) {
		assert.Equal(t, []string{"Small", "Medium", "Large"}, catalog.AvailableSizes("Latte"))
		assert.Equal(t, []string{"Small"}, catalog.AvailableSizes("Banana Bread"))
		assert.Nil(t, catalog.AvailableSizes("Mocha"))
	})

	t.Run("Exists", func(t *testing.T) {
		assert.True(t, catalog.Exists("Espresso"))
		assert.False(t, catalog.Exists("espresso"))
		assert.False(t, catalog.Exists(""))
	})

	t.Run("Entries are copies", func(t *testing.T) {
		entries := catalog.Entries()
		require.Len(t, entries, 4)
		entries[0].Sizes[0].Label = "Tiny"

		assert.Equal(t, "Small", catalog.AvailableSizes("Latte")[0])
	})
}

func TestNewCatalogRejectsInvalidEntries(t *testing.T) {
	price := decimal.RequireFromString("1.00")
	cases := map[string][]model.CatalogEntry{
		"no items":       nil,
		"empty name":     {{Item: "", Sizes: []model.Size{{Label: "Small", Price: price}}}},
		"no sizes":       {{Item: "Latte"}},
		"duplicate item": {{Item: "Latte", Sizes: []model.Size{{Label: "Small", Price: price}}}, {Item: "Latte", Sizes: []model.Size{{Label: "Large", Price: price}}}},
		"duplicate size": {{Item: "Latte", Sizes: []model.Size{{Label: "Small", Price: price}, {Label: "Small", Price: price}}}},
		"empty label":    {{Item: "Latte", Sizes: []model.Size{{Label: "", Price: price}}}},
		"negative price": {{Item: "Latte", Sizes: []model.Size{{Label: "Small", Price: price.Neg()}}}},
	}

	for name, entries := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := model.NewCatalog(entries)
			assert.ErrorIs(t, err, model.ErrInvalidCatalog)
		})
	}
}

const catalogYAML = `
items:
  - name: Cortado
    sizes:
      - label: Large
        price: 4.10
      - label: Small
        price: "2.95"
  - name: Scone
    sizes:
      - label: Regular
        price: 0
`

func TestParseCatalog(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		catalog, err := model.ParseCatalog([]byte(catalogYAML))
		require.NoError(t, err)

		assert.Equal(t, []string{"Large", "Small"}, catalog.AvailableSizes("Cortado"))
		price, ok := catalog.PriceOf("Cortado", "Large")
		require.True(t, ok)
		assertAmount(t, "4.10", price)
		price, ok = catalog.PriceOf("Scone", "Regular")
		require.True(t, ok)
		assertAmount(t, "0", price)
	})

	t.Run("Fail on unknown field", func(t *testing.T) {
		_, err := model.ParseCatalog([]byte("items:\n  - name: Tea\n    colour: green\n"))
		assert.Error(t, err)
	})

	t.Run("Fail on invalid price", func(t *testing.T) {
		_, err := model.ParseCatalog([]byte("items:\n  - name: Tea\n    sizes:\n      - label: Small\n        price: cheap\n"))
		assert.Error(t, err)
	})

	t.Run("Fail on missing price", func(t *testing.T) {
		_, err := model.ParseCatalog([]byte("items:\n  - name: Tea\n    sizes:\n      - label: Small\n"))
		assert.ErrorIs(t, err, model.ErrInvalidCatalog)
	})

	t.Run("Fail on empty document", func(t *testing.T) {
		_, err := model.ParseCatalog(nil)
		assert.ErrorIs(t, err, model.ErrInvalidCatalog)
	})
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0644))

	catalog, err := model.LoadCatalog(path)
	require.NoError(t, err)
	assert.True(t, catalog.Exists("Scone"))

	_, err = model.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$9.25", model.FormatPrice(decimal.RequireFromString("9.25")))
	assert.Equal(t, "$4.00", model.FormatPrice(decimal.NewFromInt(4)))
	assert.Equal(t, "$0.00", model.FormatPrice(decimal.Zero))
}
