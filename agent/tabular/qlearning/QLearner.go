package qlearning

import (
	"fmt"

	"github.com/blocklearn/blocklearn/agent/tabular/qtable"
)

// Discount is the fixed discount factor of the TD backup
const Discount = 0.9

// QLearner implements the update functionality for the tabular Q-Learning
// algorithm. It retains exactly one step of history: the previous state
// key, action index, and reward, which the next update bootstraps from.
// The memory is overwritten on every update.
type QLearner struct {
	table *qtable.ValueTable

	prevKey    qtable.StateKey
	prevAction int
	prevReward float64
	hasPrev    bool

	currKey    qtable.StateKey
	currAction int
	reward     float64
}

// NewQLearner creates a new QLearner that updates the argument table
func NewQLearner(table *qtable.ValueTable) *QLearner {
	return &QLearner{table: table, prevAction: -1, currAction: -1}
}

// ObserveFirst resets the transition memory at the start of an episode, so
// that the first update of the episode has nothing to bootstrap from.
func (q *QLearner) ObserveFirst() {
	q.hasPrev = false
	q.prevAction = -1
	q.currAction = -1
	q.reward = 0
	q.prevReward = 0
}

// Observe records the state key and selected action index of the current
// step
func (q *QLearner) Observe(key qtable.StateKey, action int) {
	q.currKey = key
	q.currAction = action
}

// ReportReward latches the scalar reward earned by the last executed
// action for the next update
func (q *QLearner) ReportReward(r float64) {
	q.reward = r
}

// Step applies the one-step TD backup with the caller-supplied learning
// rate:
//
//	newVal = prevVal + alpha*(prevReward + Discount*currVal - prevVal)
//
// written back to the previous state-action slot. On the first call after
// ObserveFirst there is no previous transition to bootstrap from, so the
// call performs no table mutation and only records the current transition
// as previous. Every warm call mutates exactly one table entry.
func (q *QLearner) Step(alpha float64) error {
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("step: learning rate must be in [0, 1], got %v",
			alpha)
	}

	if q.hasPrev {
		prevVal, err := q.table.Get(q.prevKey, q.prevAction)
		if err != nil {
			return fmt.Errorf("step: %v", err)
		}
		currVal, err := q.table.Get(q.currKey, q.currAction)
		if err != nil {
			return fmt.Errorf("step: %v", err)
		}

		newVal := prevVal + alpha*(q.prevReward+Discount*currVal-prevVal)
		if err := q.table.Set(q.prevKey, q.prevAction, newVal); err != nil {
			return fmt.Errorf("step: %v", err)
		}
	}

	// Unconditionally advance the previous transition
	q.prevKey = q.currKey
	q.prevAction = q.currAction
	q.prevReward = q.reward
	q.hasPrev = true

	return nil
}
