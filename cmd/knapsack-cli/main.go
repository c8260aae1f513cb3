package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "knapsack-cli",
	Short: "Genetic knapsack optimizer for budget-constrained selection",
	Long: `A command-line interface for the knapsack-go genetic optimizer.

Given a catalog of items with costs and expected values and a fixed budget,
it searches for the subset maximizing total value without exceeding the
budget, and reports per-item metrics and budget-sensitivity curves.`,
	Version: "0.1.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
