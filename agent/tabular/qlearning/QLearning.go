// Package qlearning implements the tabular Q-Learning agent that plays the
// falling-block game.
//
// The agent abstracts each observation into a state key (active piece +
// column free-space profile), keeps a lazily-populated table of action
// values per state key, selects actions ε-greedily over that table, and
// revises one table entry per learning step with a one-step TD backup.
package qlearning

import (
	"fmt"
	"os"

	"github.com/blocklearn/blocklearn/agent"
	"github.com/blocklearn/blocklearn/agent/tabular/actions"
	"github.com/blocklearn/blocklearn/agent/tabular/policy"
	"github.com/blocklearn/blocklearn/agent/tabular/qtable"
	"github.com/blocklearn/blocklearn/timestep"
)

// QLearning implements the tabular Q-Learning algorithm. It composes the
// value table, the ε-greedy behaviour policy, and the TD learner; the
// policy and learner share the table, so every update the learner makes is
// reflected in the actions the policy chooses.
type QLearning struct {
	table     *qtable.ValueTable
	behaviour *policy.EGreedy
	learner   *QLearner
}

var _ agent.Agent = (*QLearning)(nil)

// New creates a new QLearning agent from the argument Config
func New(c Config, seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("qlearning: %v", err)
	}

	table := qtable.New()
	behaviour, err := policy.NewEGreedy(table, c.Epsilon, seed)
	if err != nil {
		return nil, fmt.Errorf("qlearning: %v", err)
	}

	return &QLearning{
		table:     table,
		behaviour: behaviour,
		learner:   NewQLearner(table),
	}, nil
}

// SelectAction abstracts the observation into a state key, ensures the key
// has a fully-populated table entry, and selects an action from the
// behaviour policy. The ensure-then-select ordering is what guarantees
// "observe before act" for the policy and the learner.
func (a *QLearning) SelectAction(t timestep.TimeStep) (actions.Action, error) {
	obs, ok := t.Observation.(timestep.ProfileObservation)
	if !ok {
		return actions.Action{}, fmt.Errorf("select action: learning agent "+
			"requires the profile observation, got %T", t.Observation)
	}

	key := qtable.NewStateKey(obs.Piece, obs.Profile)
	a.table.Ensure(key)

	act, err := a.behaviour.SelectAction(t)
	if err != nil {
		return actions.Action{}, err
	}
	a.learner.Observe(key, a.behaviour.CurrentAction())

	return act, nil
}

// ObserveFirst records the first timestep in an episode
func (a *QLearning) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n", t.Number)
	}

	a.learner.ObserveFirst()
	return nil
}

// Observe records the reward that the last selected action led to. The
// next state's table entry is created by the following SelectAction call.
func (a *QLearning) Observe(_ actions.Action, next timestep.TimeStep) error {
	a.learner.ReportReward(next.Reward)
	return nil
}

// Step updates the value table of the agent's Learner and Policy with the
// caller-supplied learning rate
func (a *QLearning) Step(alpha float64) error {
	return a.learner.Step(alpha)
}

// EndEpisode performs cleanup at the end of an episode
func (a *QLearning) EndEpisode() {}

// Table returns the agent's value table. The table is shared with the
// agent's policy and learner, not a copy.
func (a *QLearning) Table() *qtable.ValueTable {
	return a.table
}

// Epsilon returns the behaviour policy's exploration rate
func (a *QLearning) Epsilon() float64 {
	return a.behaviour.Epsilon()
}

// SetEpsilon sets the behaviour policy's exploration rate
func (a *QLearning) SetEpsilon(e float64) error {
	return a.behaviour.SetEpsilon(e)
}
