// Package bandit implements the k-armed bandit as a worked example of
// the rl agent-environment interface: a stationary gaussian bandit
// environment and an epsilon-greedy agent with sample-average value
// estimates.
package bandit

import (
	"math/rand"

	"github.com/MaxGalindo150/learn/rl"
)

// Gaussian is a stationary k-armed bandit: pulling arm a yields a
// reward drawn from N(means[a], stddev²). There is a single state and
// episodes never terminate on their own; callers truncate with the
// maxSteps argument to rl.RunEpisode.
type Gaussian struct {
	means  []float64
	stddev float64
	rng    *rand.Rand
}

// NewGaussian creates a bandit with the given per-arm reward means and
// a shared reward standard deviation.
func NewGaussian(means []float64, stddev float64, seed int64) *Gaussian {
	return &Gaussian{
		means:  append([]float64(nil), means...),
		stddev: stddev,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Reset implements rl.Environment.
func (g *Gaussian) Reset() rl.State {
	return 0
}

// Step implements rl.Environment.
func (g *Gaussian) Step(a rl.Action) (rl.State, float64, bool) {
	reward := g.means[a] + g.stddev*g.rng.NormFloat64()
	return 0, reward, false
}

// NumActions implements rl.Environment.
func (g *Gaussian) NumActions() int {
	return len(g.means)
}

// Best returns the arm with the highest true mean.
func (g *Gaussian) Best() rl.Action {
	best := 0
	for a, m := range g.means {
		if m > g.means[best] {
			best = a
		}
	}

	return rl.Action(best)
}

// EpsilonGreedy estimates each arm's value by the sample average of
// its observed rewards and, at each step, explores a uniformly random
// arm with probability epsilon or exploits the current best estimate
// otherwise.
type EpsilonGreedy struct {
	epsilon float64
	counts  []int
	values  []float64
	rng     *rand.Rand
}

// NewEpsilonGreedy creates an agent over numActions arms.
func NewEpsilonGreedy(numActions int, epsilon float64, seed int64) *EpsilonGreedy {
	return &EpsilonGreedy{
		epsilon: epsilon,
		counts:  make([]int, numActions),
		values:  make([]float64, numActions),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Act implements rl.Agent.
func (e *EpsilonGreedy) Act(rl.State) rl.Action {
	if e.rng.Float64() < e.epsilon {
		return rl.Action(e.rng.Intn(len(e.values)))
	}

	return e.Greedy()
}

// Observe implements rl.Agent with the incremental sample-average
// update Q(a) += (r - Q(a)) / N(a).
func (e *EpsilonGreedy) Observe(t rl.Transition) {
	a := int(t.Action)
	e.counts[a]++
	e.values[a] += (t.Reward - e.values[a]) / float64(e.counts[a])
}

// Greedy returns the arm with the highest estimated value, lowest
// index winning ties.
func (e *EpsilonGreedy) Greedy() rl.Action {
	best := 0
	for a, v := range e.values {
		if v > e.values[best] {
			best = a
		}
	}

	return rl.Action(best)
}

// Values returns a copy of the current value estimates.
func (e *EpsilonGreedy) Values() []float64 {
	return append([]float64(nil), e.values...)
}
