package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBudgetRange(t *testing.T) {
	budgets := DefaultBudgetRange(100)

	require.Len(t, budgets, 10)
	assert.InDelta(t, 50.0, budgets[0], 1e-9)
	assert.InDelta(t, 150.0, budgets[len(budgets)-1], 1e-9)
	for i := 1; i < len(budgets); i++ {
		assert.Greater(t, budgets[i], budgets[i-1])
	}
}

func TestBudgetSensitivity(t *testing.T) {
	cat := testCatalog(t)
	cfg := testConfig()
	cfg.NumGenerations = 120

	budgets := []float64{0, 20, 50, 100, 200}
	points, err := BudgetSensitivity(context.Background(), cfg, cat, budgets)
	require.NoError(t, err)
	require.Len(t, points, len(budgets))

	t.Run("Points align with requested budgets", func(t *testing.T) {
		for i, pt := range points {
			assert.InDelta(t, budgets[i], pt.Budget, 1e-9)
			assert.LessOrEqual(t, pt.TotalCost, pt.Budget)
		}
	})

	t.Run("Zero budget point is empty", func(t *testing.T) {
		assert.Zero(t, points[0].TotalValue)
		assert.Zero(t, points[0].NumItems)
		assert.Zero(t, points[0].BudgetUtilization)
	})

	t.Run("Ample budget takes everything", func(t *testing.T) {
		// At budget 200 every item fits (total cost 100).
		last := points[len(points)-1]
		assert.Equal(t, 3, last.NumItems)
		assert.InDelta(t, 165.0, last.TotalValue, 1e-9)
		assert.InDelta(t, 50.0, last.BudgetUtilization, 1e-9)
	})

	t.Run("Value never decreases with budget", func(t *testing.T) {
		// Monotone in expectation under exhaustive search; on this tiny
		// instance the GA converges to the exact optimum per budget.
		for i := 1; i < len(points); i++ {
			assert.GreaterOrEqual(t, points[i].TotalValue, points[i-1].TotalValue)
		}
	})
}

func TestBudgetSensitivityDefaultsRange(t *testing.T) {
	cat := testCatalog(t)
	cfg := testConfig()
	cfg.NumGenerations = 40

	points, err := BudgetSensitivity(context.Background(), cfg, cat, nil)
	require.NoError(t, err)
	assert.Len(t, points, 10)
}

func TestBudgetSensitivityReproducible(t *testing.T) {
	cat := testCatalog(t)
	cfg := testConfig()
	cfg.NumGenerations = 80

	budgets := []float64{40, 90, 130}
	a, err := BudgetSensitivity(context.Background(), cfg, cat, budgets)
	require.NoError(t, err)
	b, err := BudgetSensitivity(context.Background(), cfg, cat, budgets)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBudgetSensitivityInvalidConfig(t *testing.T) {
	cat := testCatalog(t)
	cfg := testConfig()
	cfg.PopulationSize = 3

	_, err := BudgetSensitivity(context.Background(), cfg, cat, []float64{50})
	require.Error(t, err)
}
