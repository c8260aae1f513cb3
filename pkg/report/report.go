// Package report derives presentation-ready data from finished optimizer
// runs: per-item efficiency/ROI tables, run summaries, and
// budget-sensitivity curves. It produces plain data only; rendering belongs
// to the caller.
package report

import (
	"sort"

	"github.com/XiaoConstantine/knapsack-go/pkg/catalog"
	"github.com/XiaoConstantine/knapsack-go/pkg/ga"
)

// ItemReport carries derived metrics for one catalog item, whether or not
// it was selected.
type ItemReport struct {
	Name       string  `json:"name"`
	Cost       float64 `json:"cost"`
	Value      float64 `json:"value"`
	Efficiency float64 `json:"efficiency"`
	ROI        float64 `json:"roi"`
	Selected   bool    `json:"selected"`
}

// Detail builds the per-item table for every catalog item, sorted with
// selected items first and by descending ROI within each group.
func Detail(result *ga.Result, cat *catalog.Catalog) []ItemReport {
	rows := make([]ItemReport, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		it := cat.Item(i)
		rows[i] = ItemReport{
			Name:       it.Name,
			Cost:       it.Cost,
			Value:      it.Value,
			Efficiency: it.Efficiency(),
			ROI:        it.ROI(),
			Selected:   result.BestChromosome[i],
		}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Selected != rows[b].Selected {
			return rows[a].Selected
		}
		return rows[a].ROI > rows[b].ROI
	})
	return rows
}

// Summary condenses a run into headline numbers.
type Summary struct {
	RunID                 string  `json:"run_id"`
	NumSelected           int     `json:"num_selected"`
	TotalValue            float64 `json:"total_value"`
	TotalCost             float64 `json:"total_cost"`
	Budget                float64 `json:"budget"`
	BudgetUtilization     float64 `json:"budget_utilization_pct"`
	BestFitness           float64 `json:"best_fitness"`
	ConvergenceGeneration int     `json:"convergence_generation"`
}

// Summarize builds a Summary from a finished run.
func Summarize(result *ga.Result, budget float64) Summary {
	sol := result.Solution
	return Summary{
		RunID:                 result.RunID,
		NumSelected:           len(sol.SelectedItems),
		TotalValue:            sol.TotalValue,
		TotalCost:             sol.TotalCost,
		Budget:                budget,
		BudgetUtilization:     utilization(sol.TotalCost, budget),
		BestFitness:           sol.BestFitness,
		ConvergenceGeneration: sol.ConvergenceGeneration,
	}
}

func utilization(cost, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return cost / budget * 100
}
