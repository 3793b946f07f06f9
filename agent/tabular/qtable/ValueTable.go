package qtable

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/blocklearn/blocklearn/agent/tabular/actions"
)

// ValueTable maps StateKeys to per-action value estimates. The outer level
// is keyed by the structural StateKey; the inner level is a fixed-size
// array indexed by action index, so per-action reads never hash.
//
// Lookups for a key that never passed through Ensure are errors: callers
// must observe before they act, and silently defaulting would corrupt the
// estimate of a state that was never initialized.
type ValueTable struct {
	values map[StateKey]*[actions.NumActions]float64
}

// New returns a new, empty ValueTable
func New() *ValueTable {
	return &ValueTable{
		values: make(map[StateKey]*[actions.NumActions]float64),
	}
}

// Ensure inserts a zero-valued entry for every action of a new key. It is
// idempotent: repeat calls for a known key never reset values written by
// Set. No partially-populated entry is ever observable.
func (v *ValueTable) Ensure(key StateKey) {
	if _, ok := v.values[key]; !ok {
		v.values[key] = new([actions.NumActions]float64)
	}
}

// Contains returns whether the key has passed through Ensure
func (v *ValueTable) Contains(key StateKey) bool {
	_, ok := v.values[key]
	return ok
}

// Len returns the number of states in the table
func (v *ValueTable) Len() int {
	return len(v.values)
}

// Get returns the value estimate of taking the action with index a in the
// state key
func (v *ValueTable) Get(key StateKey, a int) (float64, error) {
	vals, ok := v.values[key]
	if !ok {
		return 0, fmt.Errorf("get: unknown state %v", key)
	}
	if a < 0 || a >= actions.NumActions {
		return 0, fmt.Errorf("get: action index %d out of range [0, %d)",
			a, actions.NumActions)
	}

	return vals[a], nil
}

// Set writes the value estimate of taking the action with index a in the
// state key
func (v *ValueTable) Set(key StateKey, a int, value float64) error {
	vals, ok := v.values[key]
	if !ok {
		return fmt.Errorf("set: unknown state %v", key)
	}
	if a < 0 || a >= actions.NumActions {
		return fmt.Errorf("set: action index %d out of range [0, %d)",
			a, actions.NumActions)
	}

	vals[a] = value
	return nil
}

// ActionValues returns the current value estimates of every action for the
// state key as a vector for the greedy scan. The vector is a copy; writing
// to it does not change the table.
func (v *ValueTable) ActionValues(key StateKey) (*mat.VecDense, error) {
	vals, ok := v.values[key]
	if !ok {
		return nil, fmt.Errorf("action values: unknown state %v", key)
	}

	data := make([]float64, actions.NumActions)
	copy(data, vals[:])
	return mat.NewVecDense(actions.NumActions, data), nil
}
