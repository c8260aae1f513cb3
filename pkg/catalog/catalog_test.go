package catalog

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
)

func validItems() []Item {
	return []Item{
		{Name: "Soy", Cost: 50, Value: 80},
		{Name: "Maize", Cost: 30, Value: 50},
		{Name: "Wheat", Cost: 20, Value: 35},
	}
}

func TestNewCatalog(t *testing.T) {
	t.Run("Valid items", func(t *testing.T) {
		cat, err := New(validItems())
		require.NoError(t, err)
		assert.Equal(t, 3, cat.Len())
		assert.Equal(t, "Maize", cat.Item(1).Name)
	})

	t.Run("Empty catalog is legal", func(t *testing.T) {
		cat, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, cat.Len())
	})

	t.Run("Catalog copies its input", func(t *testing.T) {
		items := validItems()
		cat, err := New(items)
		require.NoError(t, err)

		items[0].Name = "mutated"
		assert.Equal(t, "Soy", cat.Item(0).Name)
	})
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name     string
		items    []Item
		wantCode errors.ErrorCode
	}{
		{
			name:     "Empty item name",
			items:    []Item{{Name: "", Cost: 10, Value: 20}},
			wantCode: errors.InvalidItem,
		},
		{
			name:     "Zero cost",
			items:    []Item{{Name: "A", Cost: 0, Value: 20}},
			wantCode: errors.InvalidItem,
		},
		{
			name:     "Negative value",
			items:    []Item{{Name: "A", Cost: 10, Value: -1}},
			wantCode: errors.InvalidItem,
		},
		{
			name: "Duplicate names",
			items: []Item{
				{Name: "A", Cost: 10, Value: 20},
				{Name: "A", Cost: 5, Value: 8},
			},
			wantCode: errors.DuplicateItemName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			require.Error(t, err)

			var customErr *errors.Error
			require.True(t, stderrors.As(err, &customErr))
			assert.Equal(t, tt.wantCode, customErr.Code())
		})
	}
}

func TestItemMetrics(t *testing.T) {
	it := Item{Name: "Soy", Cost: 50, Value: 80}

	assert.InDelta(t, 1.6, it.Efficiency(), 1e-9)
	assert.InDelta(t, 60.0, it.ROI(), 1e-9)
}

func TestTotals(t *testing.T) {
	cat, err := New(validItems())
	require.NoError(t, err)

	t.Run("Subset", func(t *testing.T) {
		cost, value := cat.Totals([]bool{true, false, true})
		assert.InDelta(t, 70.0, cost, 1e-9)
		assert.InDelta(t, 115.0, value, 1e-9)
	})

	t.Run("Nothing selected", func(t *testing.T) {
		cost, value := cat.Totals([]bool{false, false, false})
		assert.Zero(t, cost)
		assert.Zero(t, value)
	})
}

func TestParse(t *testing.T) {
	t.Run("Valid document", func(t *testing.T) {
		doc := []byte(`
items:
  - name: Soy
    cost: 50
    value: 80
  - name: Maize
    cost: 30
    value: 50
`)
		cat, err := Parse(doc)
		require.NoError(t, err)
		assert.Equal(t, 2, cat.Len())
		assert.Equal(t, Item{Name: "Soy", Cost: 50, Value: 80}, cat.Item(0))
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := Parse([]byte("items: [unclosed"))
		require.Error(t, err)

		var customErr *errors.Error
		require.True(t, stderrors.As(err, &customErr))
		assert.Equal(t, errors.InvalidInput, customErr.Code())
	})

	t.Run("Invalid entries rejected", func(t *testing.T) {
		_, err := Parse([]byte("items:\n  - name: A\n    cost: -3\n    value: 10\n"))
		require.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFile("does/not/exist.yaml")
		require.Error(t, err)

		var customErr *errors.Error
		require.True(t, stderrors.As(err, &customErr))
		assert.Equal(t, errors.ResourceNotFound, customErr.Code())
	})
}

func TestGenerateSample(t *testing.T) {
	t.Run("Deterministic for fixed seed", func(t *testing.T) {
		a, err := GenerateSample(10, 42)
		require.NoError(t, err)
		b, err := GenerateSample(10, 42)
		require.NoError(t, err)

		assert.Equal(t, a.Items(), b.Items())
	})

	t.Run("Different seeds differ", func(t *testing.T) {
		a, err := GenerateSample(10, 1)
		require.NoError(t, err)
		b, err := GenerateSample(10, 2)
		require.NoError(t, err)

		assert.NotEqual(t, a.Items(), b.Items())
	})

	t.Run("Items are valid", func(t *testing.T) {
		cat, err := GenerateSample(20, 7)
		require.NoError(t, err)
		for _, it := range cat.Items() {
			assert.Positive(t, it.Cost)
			assert.Positive(t, it.Value)
			assert.NotEmpty(t, it.Name)
		}
	})

	t.Run("Size capped at name pool", func(t *testing.T) {
		cat, err := GenerateSample(1000, 7)
		require.NoError(t, err)
		assert.Equal(t, len(sampleNames), cat.Len())
	})

	t.Run("Non-positive size rejected", func(t *testing.T) {
		_, err := GenerateSample(0, 7)
		require.Error(t, err)
	})
}
