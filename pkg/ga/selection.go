package ga

import (
	"sort"
)

// SelectElite returns the k highest-fitness chromosomes from the
// population, in fitness order. Ties keep the original population order
// (stable sort), which makes elitism deterministic under a fixed random
// source. The returned slice shares chromosome storage with the input;
// callers must not mutate the elites.
func SelectElite(pop Population, fitness []float64, k int) Population {
	if k > len(pop) {
		k = len(pop)
	}

	indices := make([]int, len(pop))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return fitness[indices[a]] > fitness[indices[b]]
	})

	elites := make(Population, k)
	for i := 0; i < k; i++ {
		elites[i] = pop[indices[i]]
	}
	return elites
}
