package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/knapsack-go/pkg/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Item{
		{Name: "Soy", Cost: 50, Value: 80},
		{Name: "Maize", Cost: 30, Value: 50},
		{Name: "Wheat", Cost: 20, Value: 35},
	})
	require.NoError(t, err)
	return cat
}

func TestEvaluate(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		name       string
		chromosome Chromosome
		budget     float64
		want       float64
	}{
		{
			name:       "Feasible full selection equals total value",
			chromosome: Chromosome{true, true, true},
			budget:     100,
			want:       165,
		},
		{
			name:       "Feasible subset",
			chromosome: Chromosome{false, true, true},
			budget:     100,
			want:       85,
		},
		{
			name:       "Cost over budget gets death penalty",
			chromosome: Chromosome{true, true, true},
			budget:     99,
			want:       0,
		},
		{
			name:       "Cost exactly at budget is feasible",
			chromosome: Chromosome{true, true, true},
			budget:     100,
			want:       165,
		},
		{
			name:       "Empty selection scores zero",
			chromosome: Chromosome{false, false, false},
			budget:     100,
			want:       0,
		},
		{
			name:       "Zero budget kills any selection",
			chromosome: Chromosome{false, false, true},
			budget:     0,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Evaluate(tt.chromosome, cat, tt.budget), 1e-9)
		})
	}
}

func TestEvaluateEmptyCatalog(t *testing.T) {
	cat, err := catalog.New(nil)
	require.NoError(t, err)

	assert.Zero(t, Evaluate(Chromosome{}, cat, 100))
}
