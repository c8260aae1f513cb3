package ga

import (
	"github.com/XiaoConstantine/knapsack-go/pkg/catalog"
)

// Evaluate scores a chromosome against the catalog and budget.
//
// Fitness is the total value of the included items, with a death penalty:
// any chromosome whose total cost exceeds the budget scores zero, so
// infeasible solutions cannot reproduce preferentially but stay in the
// population as low-fitness individuals. Fitness is therefore always
// non-negative and comparable across chromosomes.
func Evaluate(c Chromosome, cat *catalog.Catalog, budget float64) float64 {
	cost, value := cat.Totals(c)
	if cost > budget {
		return 0
	}
	return value
}
