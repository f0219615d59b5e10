package main

import (
	"fmt"
	"math/rand"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MaxGalindo150/learn/rl"
	"github.com/MaxGalindo150/learn/rl/bandit"
)

var (
	banditArms    int
	banditPulls   int
	banditEpsilon float64
	banditSeed    int64
)

var banditCmd = &cobra.Command{
	Use:   "bandit",
	Short: "Run the epsilon-greedy k-armed bandit example",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := rand.New(rand.NewSource(banditSeed))
		means := make([]float64, banditArms)
		for i := range means {
			means[i] = rng.NormFloat64()
		}

		env := bandit.NewGaussian(means, 1.0, banditSeed+1)
		agent := bandit.NewEpsilonGreedy(env.NumActions(), banditEpsilon, banditSeed+2)

		episode, err := rl.RunEpisode(env, agent, banditPulls)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Printf("%d pulls, epsilon=%.2f\n", len(episode), banditEpsilon)
		fmt.Printf("  mean reward:  %.4f\n", rl.Return(episode.Rewards(), 1.0)/float64(len(episode)))
		fmt.Printf("  best arm:     %d (true mean %.4f)\n", env.Best(), means[env.Best()])
		fmt.Printf("  greedy arm:   %d (estimate %.4f)\n", agent.Greedy(), agent.Values()[agent.Greedy()])
		return nil
	},
}

func init() {
	banditCmd.Flags().IntVar(&banditArms, "arms", 10, "number of arms")
	banditCmd.Flags().IntVar(&banditPulls, "pulls", 10000, "number of pulls")
	banditCmd.Flags().Float64Var(&banditEpsilon, "epsilon", 0.1, "exploration probability")
	banditCmd.Flags().Int64Var(&banditSeed, "seed", 42, "random seed")
}
