package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/XiaoConstantine/knapsack-go/cmd/knapsack-cli/internal/display"
	"github.com/XiaoConstantine/knapsack-go/pkg/report"
)

var budgets []float64

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Re-optimize across a range of budgets and tabulate outcomes",
	Long: `Runs one independent optimization per candidate budget, holding every
other parameter fixed, and prints total value, item count and budget
utilization per budget point. With no --budgets the range spans 50% to 150%
of the configured budget in ten steps.`,
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

		points, err := report.BudgetSensitivity(context.Background(), cfg, cat, budgets)
		if err != nil {
			return err
		}

		display.PrintSensitivity(points)
		return nil
	},
}

func init() {
	addSharedFlags(sensitivityCmd)
	sensitivityCmd.Flags().Float64SliceVar(&budgets, "budgets", nil, "explicit budget points to evaluate")
	rootCmd.AddCommand(sensitivityCmd)
}
