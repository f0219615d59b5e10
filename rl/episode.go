package rl

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// RunEpisode rolls out a single episode: reset the environment, then
// alternate Act and Step until the environment reports a terminal
// state or maxSteps transitions have been taken. The agent Observes
// every transition.
func RunEpisode(env Environment, agent Agent, maxSteps int) (Episode, error) {
	if maxSteps < 1 {
		return nil, errors.Errorf("maxSteps must be >= 1, got %d", maxSteps)
	}

	state := env.Reset()
	var episode Episode
	for step := 0; step < maxSteps; step++ {
		action := agent.Act(state)
		next, reward, done := env.Step(action)

		t := Transition{
			State:  state,
			Action: action,
			Reward: reward,
			Next:   next,
			Done:   done,
		}
		agent.Observe(t)
		episode = append(episode, t)

		if done {
			break
		}

		state = next
	}

	return episode, nil
}

// Rollout runs numEpisodes episodes and returns the undiscounted
// return of each.
func Rollout(env Environment, agent Agent, numEpisodes, maxSteps int) ([]float64, error) {
	returns := make([]float64, numEpisodes)
	for i := range returns {
		episode, err := RunEpisode(env, agent, maxSteps)
		if err != nil {
			return nil, errors.Wrapf(err, "episode %d", i)
		}

		returns[i] = Return(episode.Rewards(), 1.0)
		if (i+1)%100 == 0 {
			glog.V(1).Infof("episode %d: return=%.4f len=%d", i+1, returns[i], len(episode))
		}
	}

	return returns, nil
}

// Return computes the discounted return Σ γᵗ·rₜ of a reward sequence.
// gamma = 1 gives the plain sum.
func Return(rewards []float64, gamma float64) float64 {
	var g float64
	for i := len(rewards) - 1; i >= 0; i-- {
		g = rewards[i] + gamma*g
	}

	return g
}
