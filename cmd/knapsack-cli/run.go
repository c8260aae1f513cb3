package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/XiaoConstantine/knapsack-go/cmd/knapsack-cli/internal/display"
	"github.com/XiaoConstantine/knapsack-go/pkg/catalog"
	"github.com/XiaoConstantine/knapsack-go/pkg/ga"
	"github.com/XiaoConstantine/knapsack-go/pkg/logging"
	"github.com/XiaoConstantine/knapsack-go/pkg/report"
)

var (
	catalogPath   string
	configPath    string
	sampleSize    int
	budget        float64
	generations   int
	population    int
	crossoverRate float64
	mutationRate  float64
	crossoverMode string
	seed          int64
	verbose       bool
)

func addSharedFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "YAML catalog file (defaults to a generated sample)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML optimizer config file")
	cmd.Flags().IntVar(&sampleSize, "sample", 20, "generated sample catalog size when no catalog file is given")
	cmd.Flags().Float64VarP(&budget, "budget", "b", 150, "maximum total cost")
	cmd.Flags().IntVarP(&generations, "generations", "g", 500, "number of generations")
	cmd.Flags().IntVarP(&population, "population", "p", 20, "population size (must be even)")
	cmd.Flags().Float64Var(&crossoverRate, "crossover-rate", 0.8, "crossover probability in [0,1]")
	cmd.Flags().Float64Var(&mutationRate, "mutation-rate", 0.15, "per-bit mutation probability in [0,1]")
	cmd.Flags().StringVar(&crossoverMode, "mode", "single_point", "crossover mode: single_point or random_point")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 chooses a time-based seed)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// buildConfig resolves configuration: config file if given, then flag
// overrides for any flag the user set explicitly.
func buildConfig(cmd *cobra.Command) (ga.Config, error) {
	cfg := ga.DefaultConfig()
	if configPath != "" {
		loaded, err := ga.LoadConfig(configPath)
		if err != nil {
			return ga.Config{}, err
		}
		cfg = loaded
	}

	override := func(name string, apply func()) {
		if configPath == "" || cmd.Flags().Changed(name) {
			apply()
		}
	}
	override("budget", func() { cfg.Budget = budget })
	override("generations", func() { cfg.NumGenerations = generations })
	override("population", func() { cfg.PopulationSize = population })
	override("crossover-rate", func() { cfg.CrossoverRate = crossoverRate })
	override("mutation-rate", func() { cfg.MutationRate = mutationRate })
	override("mode", func() { cfg.CrossoverMode = ga.CrossoverMode(crossoverMode) })
	override("seed", func() { cfg.Seed = seed })

	return cfg, cfg.Validate()
}

func loadCatalog() (*catalog.Catalog, error) {
	if catalogPath != "" {
		return catalog.LoadFile(catalogPath)
	}
	demoSeed := seed
	if demoSeed <= 0 {
		demoSeed = 42
	}
	return catalog.GenerateSample(sampleSize, demoSeed)
}

func setupLogging() {
	severity := logging.INFO
	if verbose {
		severity = logging.DEBUG
	}
	logging.SetLogger(logging.NewLogger(logging.Config{
		Severity: severity,
		Outputs:  []logging.Output{logging.NewConsoleOutput(true)},
	}))
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the genetic optimizer against a catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		opt, err := ga.New(cfg)
		if err != nil {
			return err
		}
		result, err := opt.Run(context.Background(), cat)
		if err != nil {
			return err
		}

		display.PrintSummary(report.Summarize(result, cfg.Budget))
		display.PrintDetail(report.Detail(result, cat))
		return nil
	},
}

func init() {
	addSharedFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}
