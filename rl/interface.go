// Package rl defines the agent-environment interface of sequential
// decision making: an Agent selects Actions, an Environment responds
// with successor States and Rewards, and episodes are rolled out by
// alternating the two.
package rl

// State identifies an environment state. Environments with small
// discrete state spaces number them from 0 so that tabular agents can
// index by state directly.
type State int

// Action identifies one of an environment's actions, numbered from 0.
type Action int

// Transition is one step of agent-environment interaction:
// in State, the agent took Action, received Reward, and the
// environment moved to Next. Done marks Next as terminal.
type Transition struct {
	State  State
	Action Action
	Reward float64
	Next   State
	Done   bool
}

// Episode is the ordered sequence of transitions from a reset to a
// terminal state (or truncation).
type Episode []Transition

// Rewards returns the episode's reward sequence.
func (e Episode) Rewards() []float64 {
	rewards := make([]float64, len(e))
	for i, t := range e {
		rewards[i] = t.Reward
	}

	return rewards
}

// Environment is the world the agent acts in.
type Environment interface {
	// Reset starts a new episode and returns the initial state.
	Reset() State
	// Step applies the action and returns the successor state, the
	// reward, and whether the successor state is terminal.
	Step(a Action) (next State, reward float64, done bool)
	// NumActions returns the number of actions available. Actions are
	// numbered 0 to NumActions()-1 in every state.
	NumActions() int
}

// Agent is a policy plus a learning rule.
type Agent interface {
	// Act selects the action to take in the given state.
	Act(s State) Action
	// Observe feeds one transition back to the agent so it can update
	// its estimates.
	Observe(t Transition)
}
