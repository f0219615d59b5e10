// Command learn runs the instructional examples in this repository:
// fitting the linear regression model, the sorting exercises, and the
// k-armed bandit.
package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learn",
	Short: "Instructional ML and algorithms examples",
	Long: `learn runs the worked examples in this repository.

Examples:
  # Fit linear regression on synthetic data
  learn train --config experiment.yaml

  # Sort random input with insertion sort and report costs
  learn sort --algo insertion -n 1000

  # Run the epsilon-greedy bandit
  learn bandit --arms 10 --pulls 10000`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Expose glog's -v/-logtostderr flags on every subcommand.
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(banditCmd)
}
