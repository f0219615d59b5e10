package main

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/MaxGalindo150/learn/sorting"
)

var (
	sortAlgo string
	sortN    int
	sortSeed int64
)

var sortCmd = &cobra.Command{
	Use:   "sort [values...]",
	Short: "Run a sorting exercise and report its operation counts",
	Long: `Sorts the given integers (or --n random ones) with the chosen
algorithm and prints the comparison and move counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := sortInput(args)
		if err != nil {
			return err
		}

		var costs sorting.Costs
		switch sortAlgo {
		case "insertion":
			costs = sorting.InsertionSortCosts(values)
		case "merge":
			costs = sorting.MergeSortCosts(values)
		default:
			return errors.Errorf("unknown algorithm %q (want insertion or merge)", sortAlgo)
		}

		if len(values) <= 20 {
			fmt.Println(values)
		}

		bold := color.New(color.Bold)
		bold.Printf("%s sort of %d values:", sortAlgo, len(values))
		fmt.Printf(" %d comparisons, %d moves\n", costs.Comparisons, costs.Moves)
		return nil
	},
}

func init() {
	sortCmd.Flags().StringVarP(&sortAlgo, "algo", "a", "insertion", "algorithm: insertion or merge")
	sortCmd.Flags().IntVarP(&sortN, "count", "n", 100, "number of random values when none are given")
	sortCmd.Flags().Int64Var(&sortSeed, "seed", 42, "random seed")
}

func sortInput(args []string) ([]int, error) {
	if len(args) > 0 {
		values := make([]int, len(args))
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "argument %d", i)
			}

			values[i] = v
		}

		return values, nil
	}

	rng := rand.New(rand.NewSource(sortSeed))
	values := make([]int, sortN)
	for i := range values {
		values[i] = rng.Intn(10 * sortN)
	}

	return values, nil
}
