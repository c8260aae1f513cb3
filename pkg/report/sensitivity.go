package report

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/XiaoConstantine/knapsack-go/pkg/catalog"
	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
	"github.com/XiaoConstantine/knapsack-go/pkg/ga"
)

// SensitivityPoint captures the outcome of one full optimizer run at a
// candidate budget.
type SensitivityPoint struct {
	Budget            float64 `json:"budget"`
	TotalValue        float64 `json:"total_value"`
	NumItems          int     `json:"num_items"`
	TotalCost         float64 `json:"total_cost"`
	BudgetUtilization float64 `json:"budget_utilization_pct"`
}

// DefaultBudgetRange returns ten evenly spaced budgets from 50% to 150% of
// the given budget.
func DefaultBudgetRange(budget float64) []float64 {
	const points = 10
	low := budget * 0.5
	step := budget / (points - 1)
	budgets := make([]float64, points)
	for i := range budgets {
		budgets[i] = low + step*float64(i)
	}
	return budgets
}

// BudgetSensitivity re-runs the full optimizer once per candidate budget,
// keeping every other configuration field fixed, and tabulates the outcome
// per budget point. The runs share no state and execute concurrently; when
// the base config carries a fixed seed, each point gets a seed derived from
// it so the whole analysis stays reproducible.
func BudgetSensitivity(ctx context.Context, cfg ga.Config, cat *catalog.Catalog, budgets []float64) ([]SensitivityPoint, error) {
	if len(budgets) == 0 {
		budgets = DefaultBudgetRange(cfg.Budget)
	}

	points := make([]SensitivityPoint, len(budgets))

	p := pool.New().WithErrors().WithContext(ctx)
	for i, budget := range budgets {
		runCfg := cfg
		runCfg.Budget = budget
		if cfg.Seed > 0 {
			runCfg.Seed = cfg.Seed + int64(i)
		}

		p.Go(func(ctx context.Context) error {
			opt, err := ga.New(runCfg)
			if err != nil {
				return err
			}
			result, err := opt.Run(ctx, cat)
			if err != nil {
				return errors.WithFields(
					errors.Wrap(err, errors.RunFailed, "sensitivity run failed"),
					errors.Fields{"budget": runCfg.Budget})
			}

			sol := result.Solution
			points[i] = SensitivityPoint{
				Budget:            runCfg.Budget,
				TotalValue:        sol.TotalValue,
				NumItems:          len(sol.SelectedItems),
				TotalCost:         sol.TotalCost,
				BudgetUtilization: utilization(sol.TotalCost, runCfg.Budget),
			}
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
