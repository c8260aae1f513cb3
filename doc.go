// Package knapsack is a Go library for budget-constrained combinatorial
// selection: given a catalog of items with costs and expected values and a
// fixed budget, it searches for the subset maximizing total value without
// exceeding the budget (the binary knapsack problem), using a genetic
// algorithm rather than exact dynamic programming.
//
// Key Components:
//
//   - Catalog: Immutable item catalog with validation, YAML loading and a
//     seeded sample generator for experimentation.
//
//   - GA Core: Bit-vector chromosomes, death-penalty fitness, elitist
//     selection, single-point and random-point crossover, per-bit mutation,
//     and a generation controller that tracks the best solution found and a
//     per-generation fitness history.
//
//   - Report: Per-item efficiency/ROI tables derived from a finished run,
//     plus budget-sensitivity analysis that re-optimizes across a range of
//     candidate budgets.
//
// All stochastic operations draw from a single seedable random source, so a
// fixed seed reproduces the full population sequence and final solution.
// Fitness evaluation within a generation is parallelized with bounded
// concurrency without affecting determinism.
//
// Example usage:
//
//	cat, err := catalog.New([]catalog.Item{
//	    {Name: "Soy", Cost: 50, Value: 80},
//	    {Name: "Maize", Cost: 30, Value: 50},
//	    {Name: "Wheat", Cost: 20, Value: 35},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opt, err := ga.New(ga.Config{
//	    Budget:         100,
//	    PopulationSize: 16,
//	    NumGenerations: 200,
//	    CrossoverRate:  0.8,
//	    MutationRate:   0.15,
//	    CrossoverMode:  ga.SinglePoint,
//	    Seed:           42,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := opt.Run(context.Background(), cat)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Solution.SelectedItems, result.Solution.TotalValue)
//
// For more examples and documentation, visit:
// https://github.com/XiaoConstantine/knapsack-go
package knapsack
