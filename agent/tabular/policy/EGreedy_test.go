package policy

import (
	"testing"

	"github.com/blocklearn/blocklearn/agent/tabular/actions"
	"github.com/blocklearn/blocklearn/agent/tabular/qtable"
	"github.com/blocklearn/blocklearn/block"
	"github.com/blocklearn/blocklearn/timestep"
)

func profileStep(piece block.Piece, profile []int) timestep.TimeStep {
	obs := timestep.ProfileObservation{Piece: piece, Profile: profile}
	return timestep.New(timestep.Mid, 0, 1, obs, 0)
}

func TestEGreedyEpsilonValidation(t *testing.T) {
	table := qtable.New()

	for _, e := range []float64{-0.1, 1.1} {
		if _, err := NewEGreedy(table, e, 42); err == nil {
			t.Errorf("epsilon %v: expected a construction error", e)
		}
	}

	p, err := NewEGreedy(table, 0.5, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.SetEpsilon(2.0); err == nil {
		t.Error("SetEpsilon(2.0): expected an error")
	}
	if p.Epsilon() != 0.5 {
		t.Errorf("rejected SetEpsilon changed epsilon to %v", p.Epsilon())
	}
}

// TestEGreedyZeroEpsilonIsGreedy ensures that epsilon = 0 deterministically
// selects the single strictly-maximal action.
func TestEGreedyZeroEpsilonIsGreedy(t *testing.T) {
	table := qtable.New()
	profile := []int{1, 2, 3}
	key := qtable.NewStateKey(block.Square, profile)
	table.Ensure(key)

	const best = 7
	if err := table.Set(key, best, 1.0); err != nil {
		t.Fatalf("set: unexpected error: %v", err)
	}

	p, err := NewEGreedy(table, 0.0, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, _ := actions.Decode(best)
	step := profileStep(block.Square, profile)
	for i := 0; i < 100; i++ {
		a, err := p.SelectAction(step)
		if err != nil {
			t.Fatalf("select action: unexpected error: %v", err)
		}

		if p.CurrentAction() != best {
			t.Fatalf("greedy selection chose index %d, expected %d",
				p.CurrentAction(), best)
		}
		if a != want {
			t.Fatalf("greedy selection decoded to %v, expected %v", a, want)
		}
	}
}

// TestEGreedyGreedyTieBreak ensures equal-valued maxima resolve to the
// lowest action index.
func TestEGreedyGreedyTieBreak(t *testing.T) {
	table := qtable.New()
	profile := []int{4, 4}
	key := qtable.NewStateKey(block.Brick, profile)
	table.Ensure(key)

	// Two equal maxima; the earlier index must win
	if err := table.Set(key, 5, 2.0); err != nil {
		t.Fatalf("set: unexpected error: %v", err)
	}
	if err := table.Set(key, 13, 2.0); err != nil {
		t.Fatalf("set: unexpected error: %v", err)
	}

	p, err := NewEGreedy(table, 0.0, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	step := profileStep(block.Brick, profile)
	for i := 0; i < 100; i++ {
		if _, err := p.SelectAction(step); err != nil {
			t.Fatalf("select action: unexpected error: %v", err)
		}
		if p.CurrentAction() != 5 {
			t.Fatalf("tie broke to index %d, expected 5", p.CurrentAction())
		}
	}
}

// TestEGreedyFullExplorationIsUniform ensures that epsilon = 1 draws from
// the full uniform distribution over action indices, independent of table
// contents, using a chi-square-style tolerance.
func TestEGreedyFullExplorationIsUniform(t *testing.T) {
	table := qtable.New()
	profile := []int{0, 1, 0}
	key := qtable.NewStateKey(block.Mono, profile)
	table.Ensure(key)

	// A large value that must not attract the sampler
	if err := table.Set(key, 3, 1000.0); err != nil {
		t.Fatalf("set: unexpected error: %v", err)
	}

	p, err := NewEGreedy(table, 1.0, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const trials = 24000
	counts := make([]int, actions.NumActions)
	step := profileStep(block.Mono, profile)

	for i := 0; i < trials; i++ {
		if _, err := p.SelectAction(step); err != nil {
			t.Fatalf("select action: unexpected error: %v", err)
		}
		counts[p.CurrentAction()]++
	}

	expected := float64(trials) / float64(actions.NumActions)
	chiSquare := 0.0
	for index, count := range counts {
		if count == 0 {
			t.Errorf("action %d never drawn in %d trials", index, trials)
		}
		diff := float64(count) - expected
		chiSquare += diff * diff / expected
	}

	// 99.9th percentile of chi-square with 23 degrees of freedom is ~49.7
	if chiSquare > 49.7 {
		t.Errorf("chi-square statistic %.2f exceeds the uniformity "+
			"tolerance", chiSquare)
	}
}

// TestEGreedyUnknownStateFailsFast ensures selection for a state that
// never passed through Ensure is an error rather than a silent default.
func TestEGreedyUnknownStateFailsFast(t *testing.T) {
	p, err := NewEGreedy(qtable.New(), 0.0, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	step := profileStep(block.Square, []int{1, 2, 3})
	if _, err := p.SelectAction(step); err == nil {
		t.Error("expected an error for an unknown state")
	}
}

func TestEGreedyRequiresProfileObservation(t *testing.T) {
	p, err := NewEGreedy(qtable.New(), 0.0, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	obs := timestep.BoardObservation{Piece: block.Square, Next: block.Mono}
	step := timestep.New(timestep.Mid, 0, 1, obs, 0)
	if _, err := p.SelectAction(step); err == nil {
		t.Error("expected an error for the board observation")
	}
}
