package rl

import (
	"math"
	"testing"
)

// chain is a deterministic environment: states 0..n advance by one on
// action 0 with reward 1, terminating at state n.
type chain struct {
	n     int
	state State
}

func (c *chain) Reset() State {
	c.state = 0
	return c.state
}

func (c *chain) Step(Action) (State, float64, bool) {
	c.state++
	return c.state, 1.0, int(c.state) == c.n
}

func (c *chain) NumActions() int { return 1 }

// scripted always acts 0 and remembers what it observed.
type scripted struct {
	observed Episode
}

func (s *scripted) Act(State) Action { return 0 }

func (s *scripted) Observe(t Transition) {
	s.observed = append(s.observed, t)
}

func TestRunEpisode_TerminatesAtDone(t *testing.T) {
	env := &chain{n: 5}
	agent := &scripted{}

	episode, err := RunEpisode(env, agent, 100)
	if err != nil {
		t.Fatal(err)
	}

	if len(episode) != 5 {
		t.Fatalf("expected 5 transitions, got %d", len(episode))
	}

	last := episode[len(episode)-1]
	if !last.Done {
		t.Error("final transition not marked done")
	}
	if last.Next != 5 {
		t.Errorf("expected terminal state 5, got %v", last.Next)
	}

	if len(agent.observed) != len(episode) {
		t.Errorf("agent observed %d transitions, episode has %d",
			len(agent.observed), len(episode))
	}
}

func TestRunEpisode_TruncatesAtMaxSteps(t *testing.T) {
	env := &chain{n: 1000}
	episode, err := RunEpisode(env, &scripted{}, 10)
	if err != nil {
		t.Fatal(err)
	}

	if len(episode) != 10 {
		t.Fatalf("expected 10 transitions, got %d", len(episode))
	}
	if episode[len(episode)-1].Done {
		t.Error("truncated episode must not end with done")
	}
}

func TestRunEpisode_InvalidMaxSteps(t *testing.T) {
	if _, err := RunEpisode(&chain{n: 1}, &scripted{}, 0); err == nil {
		t.Error("expected error for maxSteps=0")
	}
}

func TestRollout(t *testing.T) {
	env := &chain{n: 3}
	returns, err := Rollout(env, &scripted{}, 4, 100)
	if err != nil {
		t.Fatal(err)
	}

	if len(returns) != 4 {
		t.Fatalf("expected 4 returns, got %d", len(returns))
	}
	for i, g := range returns {
		if g != 3.0 {
			t.Errorf("episode %d: expected return 3, got %v", i, g)
		}
	}
}

func TestReturn(t *testing.T) {
	rewards := []float64{1, 1, 1}

	if g := Return(rewards, 1.0); g != 3.0 {
		t.Errorf("undiscounted: expected 3, got %v", g)
	}

	want := 1 + 0.5 + 0.25
	if g := Return(rewards, 0.5); math.Abs(g-want) > 1e-12 {
		t.Errorf("discounted: expected %v, got %v", want, g)
	}

	if g := Return(nil, 0.9); g != 0 {
		t.Errorf("empty: expected 0, got %v", g)
	}
}

func TestEpisode_Rewards(t *testing.T) {
	e := Episode{{Reward: 1}, {Reward: -2}}
	r := e.Rewards()
	if len(r) != 2 || r[0] != 1 || r[1] != -2 {
		t.Errorf("unexpected rewards %v", r)
	}
}
