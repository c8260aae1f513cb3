package ga

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/XiaoConstantine/knapsack-go/pkg/catalog"
	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
	"github.com/XiaoConstantine/knapsack-go/pkg/logging"
)

// GenerationRecord captures per-generation fitness statistics, one appended
// per evaluated generation.
type GenerationRecord struct {
	Generation  int     `json:"generation"`
	MeanFitness float64 `json:"mean_fitness"`
	MaxFitness  float64 `json:"max_fitness"`
}

// Solution is the best selection found across all generations of a run,
// tracked through elitism rather than taken from the final generation.
// Under a fixed seed the solution is fully deterministic.
type Solution struct {
	SelectedItems         []string `json:"selected_items"`
	TotalCost             float64  `json:"total_cost"`
	TotalValue            float64  `json:"total_value"`
	BestFitness           float64  `json:"best_fitness"`
	ConvergenceGeneration int      `json:"convergence_generation"`
}

// Result bundles a run's solution with its full generation history.
type Result struct {
	// RunID is a unique identifier for this run, carried through log
	// entries. It is the only non-deterministic part of a seeded result.
	RunID string `json:"run_id"`

	Solution Solution           `json:"solution"`
	History  []GenerationRecord `json:"history"`

	// BestChromosome is the bit vector behind Solution, aligned with the
	// catalog order. Empty-selection solutions carry an all-false vector.
	BestChromosome Chromosome `json:"-"`
}

// Optimizer runs the generational loop: evaluate, record, select elites,
// recombine, mutate. It is stateless between runs; every Run draws from a
// fresh random source derived from the configured seed.
type Optimizer struct {
	config Config
}

// New validates the configuration and creates an Optimizer.
func New(config Config) (*Optimizer, error) {
	if config.Concurrency == 0 {
		config.Concurrency = DefaultConfig().Concurrency
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Optimizer{config: config}, nil
}

// Config returns the effective configuration.
func (o *Optimizer) Config() Config {
	return o.config
}

// Run executes the full generational loop against the catalog and returns
// the best solution found plus the per-generation history.
//
// Generation 0 is the random initial population; it is always evaluated and
// recorded, so the history holds NumGenerations+1 records. The best-so-far
// solution starts as the empty selection (fitness 0), which guarantees the
// returned solution never exceeds the budget: an infeasible chromosome
// scores 0 and can never displace it.
func (o *Optimizer) Run(ctx context.Context, cat *catalog.Catalog) (*Result, error) {
	logger := logging.GetLogger()

	runID := uuid.New().String()
	ctx = logging.WithRunID(ctx, runID)

	seed := o.config.Seed
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger.Info(ctx, "Starting optimization: items=%d, budget=%.2f, population=%d, generations=%d, crossover=%s",
		cat.Len(),
		o.config.Budget,
		o.config.PopulationSize,
		o.config.NumGenerations,
		o.config.CrossoverMode)

	pop := RandomPopulation(o.config.PopulationSize, cat.Len(), rng)

	var (
		bestChromosome = make(Chromosome, cat.Len())
		bestFitness    = 0.0
		convergence    = 0
		history        = make([]GenerationRecord, 0, o.config.NumGenerations+1)
	)

	for gen := 0; ; gen++ {
		if err := errors.CheckContext(ctx, "optimization run"); err != nil {
			return nil, err
		}

		fitness := o.evaluatePopulation(pop, cat)
		mean, max, maxIdx := fitnessStats(fitness)
		history = append(history, GenerationRecord{
			Generation:  gen,
			MeanFitness: mean,
			MaxFitness:  max,
		})

		if max > bestFitness {
			bestFitness = max
			bestChromosome = pop[maxIdx].Clone()
			convergence = gen
			logger.Debug(ctx, "New best solution: generation=%d, fitness=%.2f", gen, max)
		}

		if gen == o.config.NumGenerations {
			break
		}

		elites := SelectElite(pop, fitness, o.config.PopulationSize)
		pop = o.breed(elites, rng)
	}

	cost, value := cat.Totals(bestChromosome)
	solution := Solution{
		SelectedItems:         selectedNames(bestChromosome, cat),
		TotalCost:             cost,
		TotalValue:            value,
		BestFitness:           bestFitness,
		ConvergenceGeneration: convergence,
	}

	logger.Info(ctx, "Optimization completed: best_fitness=%.2f, selected=%d, cost=%.2f, converged_at=%d",
		solution.BestFitness,
		len(solution.SelectedItems),
		solution.TotalCost,
		solution.ConvergenceGeneration)

	return &Result{
		RunID:          runID,
		Solution:       solution,
		History:        history,
		BestChromosome: bestChromosome,
	}, nil
}

// evaluatePopulation scores every chromosome with bounded concurrency.
// Scores land in an index-addressed slice, so parallel evaluation cannot
// change which chromosome is first on fitness ties.
func (o *Optimizer) evaluatePopulation(pop Population, cat *catalog.Catalog) []float64 {
	scores := make([]float64, len(pop))

	p := pool.New().WithMaxGoroutines(o.config.Concurrency)
	for i, c := range pop {
		p.Go(func() {
			scores[i] = Evaluate(c, cat, o.config.Budget)
		})
	}
	p.Wait()

	return scores
}

// breed produces the next full-size population from the elite pool: parents
// drawn uniformly with replacement, recombined, then mutated. Parent draws
// stay on the run's single random source, so breeding is sequential.
func (o *Optimizer) breed(elites Population, rng *rand.Rand) Population {
	next := make(Population, 0, o.config.PopulationSize)
	for len(next) < o.config.PopulationSize {
		p1 := elites[rng.Intn(len(elites))]
		p2 := elites[rng.Intn(len(elites))]

		c1, c2 := Crossover(p1, p2, o.config.CrossoverMode, o.config.CrossoverRate, rng)
		next = append(next, Mutate(c1, o.config.MutationRate, rng))
		if len(next) < o.config.PopulationSize {
			next = append(next, Mutate(c2, o.config.MutationRate, rng))
		}
	}
	return next
}

// fitnessStats returns the mean, maximum and the index of the first maximum.
func fitnessStats(fitness []float64) (mean, max float64, maxIdx int) {
	if len(fitness) == 0 {
		return 0, 0, 0
	}

	sum := 0.0
	max = fitness[0]
	for i, f := range fitness {
		sum += f
		if f > max {
			max = f
			maxIdx = i
		}
	}
	return sum / float64(len(fitness)), max, maxIdx
}

func selectedNames(c Chromosome, cat *catalog.Catalog) []string {
	names := make([]string, 0, c.CountSelected())
	for i, included := range c {
		if included {
			names = append(names, cat.Item(i).Name)
		}
	}
	return names
}
