// Package display renders optimizer output for the terminal. All numbers
// come from the report package; nothing here recomputes results.
package display

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/XiaoConstantine/knapsack-go/pkg/report"
)

var (
	header   = color.New(color.FgCyan, color.Bold)
	selected = color.New(color.FgGreen)
	muted    = color.New(color.Faint)
)

// PrintSummary prints the headline numbers of a finished run.
func PrintSummary(s report.Summary) {
	header.Println("\nOptimization Summary")
	header.Println("--------------------")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Selected items:\t%d\n", s.NumSelected)
	fmt.Fprintf(w, "Total value:\t%.2f\n", s.TotalValue)
	fmt.Fprintf(w, "Total cost:\t%.2f / %.2f (%.1f%%)\n", s.TotalCost, s.Budget, s.BudgetUtilization)
	fmt.Fprintf(w, "Best fitness:\t%.2f\n", s.BestFitness)
	fmt.Fprintf(w, "Converged at generation:\t%d\n", s.ConvergenceGeneration)
	w.Flush()
	muted.Printf("run %s\n", s.RunID)
}

// PrintDetail prints the per-item table, selected items first.
func PrintDetail(rows []report.ItemReport) {
	header.Println("\nItem Detail")
	header.Println("-----------")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOST\tVALUE\tEFFICIENCY\tROI%\tSELECTED")
	for _, row := range rows {
		line := fmt.Sprintf("%s\t%.2f\t%.2f\t%.2f\t%.1f\t%v",
			row.Name, row.Cost, row.Value, row.Efficiency, row.ROI, row.Selected)
		if row.Selected {
			fmt.Fprintln(w, selected.Sprint(line))
		} else {
			fmt.Fprintln(w, line)
		}
	}
	w.Flush()
}

// PrintSensitivity prints one row per evaluated budget point.
func PrintSensitivity(points []report.SensitivityPoint) {
	header.Println("\nBudget Sensitivity")
	header.Println("------------------")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUDGET\tTOTAL VALUE\tITEMS\tTOTAL COST\tUTILIZATION%")
	for _, pt := range points {
		fmt.Fprintf(w, "%.2f\t%.2f\t%d\t%.2f\t%.1f\n",
			pt.Budget, pt.TotalValue, pt.NumItems, pt.TotalCost, pt.BudgetUtilization)
	}
	w.Flush()
}
