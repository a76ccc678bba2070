package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "strmdep",
		Short: "Analytical stream depletion estimation from groundwater pumping",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(monthlyCmd())
	rootCmd.AddCommand(methodsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "run [config.yaml]",
		Short: "Compute a depletion-rate series from a scenario config",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScenario(args[0], out)
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "depletion.csv", "output CSV path")
	return c
}

func monthlyCmd() *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "monthly [config.yaml]",
		Short: "Compute calendar-month depletion totals from a volume schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMonthly(args[0], out)
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "depletion-monthly.csv", "output CSV path")
	return c
}

func methodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the available depletion methods",
		Run: func(*cobra.Command, []string) {
			printMethods()
		},
	}
}
