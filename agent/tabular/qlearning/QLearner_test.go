package qlearning

import (
	"math"
	"testing"

	"github.com/blocklearn/blocklearn/agent/tabular/actions"
	"github.com/blocklearn/blocklearn/agent/tabular/qtable"
	"github.com/blocklearn/blocklearn/block"
)

// TestColdStartDoesNotMutate ensures the first learning call of an episode
// performs no table update.
func TestColdStartDoesNotMutate(t *testing.T) {
	table := qtable.New()
	key := qtable.NewStateKey(block.Square, []int{1, 2, 3})
	table.Ensure(key)

	learner := NewQLearner(table)
	learner.ObserveFirst()
	learner.Observe(key, 3)
	learner.ReportReward(1.0)

	if err := learner.Step(0.5); err != nil {
		t.Fatalf("step: unexpected error: %v", err)
	}

	for a := 0; a < actions.NumActions; a++ {
		value, err := table.Get(key, a)
		if err != nil {
			t.Fatalf("get(%d): unexpected error: %v", a, err)
		}
		if value != 0 {
			t.Errorf("cold-start step mutated action %d to %v", a, value)
		}
	}
}

// TestWarmBackup verifies the TD backup on a concrete example:
// prevVal=0, currVal=2, prevReward=1, alpha=0.5 gives
// 0 + 0.5*(1 + 0.9*2 - 0) = 1.4 at the previous state-action slot.
func TestWarmBackup(t *testing.T) {
	table := qtable.New()
	prev := qtable.NewStateKey(block.Square, []int{1, 2, 3})
	curr := qtable.NewStateKey(block.Mono, []int{0, 2, 3})
	table.Ensure(prev)
	table.Ensure(curr)

	if err := table.Set(curr, 5, 2.0); err != nil {
		t.Fatalf("set: unexpected error: %v", err)
	}

	learner := NewQLearner(table)
	learner.ObserveFirst()

	// Cold-start call records (prev, 3, 1.0)
	learner.Observe(prev, 3)
	learner.ReportReward(1.0)
	if err := learner.Step(0.5); err != nil {
		t.Fatalf("cold-start step: unexpected error: %v", err)
	}

	// Warm call backs up into prev's slot
	learner.Observe(curr, 5)
	learner.ReportReward(7.0)
	if err := learner.Step(0.5); err != nil {
		t.Fatalf("warm step: unexpected error: %v", err)
	}

	value, err := table.Get(prev, 3)
	if err != nil {
		t.Fatalf("get: unexpected error: %v", err)
	}
	if math.Abs(value-1.4) > 1e-12 {
		t.Errorf("warm backup wrote %v, expected 1.4", value)
	}

	// Only the previous state-action slot was mutated
	for a := 0; a < actions.NumActions; a++ {
		if a == 3 {
			continue
		}
		v, err := table.Get(prev, a)
		if err != nil {
			t.Fatalf("get(%d): unexpected error: %v", a, err)
		}
		if v != 0 {
			t.Errorf("warm backup also mutated action %d to %v", a, v)
		}
	}

	currVal, err := table.Get(curr, 5)
	if err != nil {
		t.Fatalf("get: unexpected error: %v", err)
	}
	if currVal != 2.0 {
		t.Errorf("warm backup mutated the current slot to %v", currVal)
	}
}

// TestBackupAdvancesTransition ensures the previous triple advances on
// every call, so consecutive warm calls chain transitions.
func TestBackupAdvancesTransition(t *testing.T) {
	table := qtable.New()
	first := qtable.NewStateKey(block.Square, []int{1})
	second := qtable.NewStateKey(block.Brick, []int{2})
	third := qtable.NewStateKey(block.Mono, []int{3})
	table.Ensure(first)
	table.Ensure(second)
	table.Ensure(third)

	learner := NewQLearner(table)
	learner.ObserveFirst()

	learner.Observe(first, 0)
	learner.ReportReward(1.0)
	if err := learner.Step(1.0); err != nil {
		t.Fatalf("step: unexpected error: %v", err)
	}

	learner.Observe(second, 1)
	learner.ReportReward(2.0)
	if err := learner.Step(1.0); err != nil {
		t.Fatalf("step: unexpected error: %v", err)
	}

	learner.Observe(third, 2)
	learner.ReportReward(0.0)
	if err := learner.Step(1.0); err != nil {
		t.Fatalf("step: unexpected error: %v", err)
	}

	// first[0] = 0 + 1*(1.0 + 0.9*0 - 0) = 1.0
	v, _ := table.Get(first, 0)
	if v != 1.0 {
		t.Errorf("first backup wrote %v, expected 1.0", v)
	}

	// second[1] = 0 + 1*(2.0 + 0.9*0 - 0) = 2.0
	v, _ = table.Get(second, 1)
	if v != 2.0 {
		t.Errorf("second backup wrote %v, expected 2.0", v)
	}
}

func TestStepAlphaValidation(t *testing.T) {
	table := qtable.New()
	learner := NewQLearner(table)
	learner.ObserveFirst()

	for _, alpha := range []float64{-0.1, 1.5} {
		if err := learner.Step(alpha); err == nil {
			t.Errorf("alpha %v: expected an error", alpha)
		}
	}
}

// TestObserveFirstResetsMemory ensures a new episode starts cold even
// after warm steps in the previous episode.
func TestObserveFirstResetsMemory(t *testing.T) {
	table := qtable.New()
	key := qtable.NewStateKey(block.Square, []int{1})
	table.Ensure(key)

	learner := NewQLearner(table)
	learner.ObserveFirst()
	learner.Observe(key, 0)
	learner.ReportReward(5.0)
	if err := learner.Step(1.0); err != nil {
		t.Fatalf("step: unexpected error: %v", err)
	}

	// New episode: the first step must not back up the stale transition
	learner.ObserveFirst()
	learner.Observe(key, 1)
	learner.ReportReward(0.0)
	if err := learner.Step(1.0); err != nil {
		t.Fatalf("step: unexpected error: %v", err)
	}

	v, _ := table.Get(key, 0)
	if v != 0 {
		t.Errorf("stale transition backed up across episodes: %v", v)
	}
}
