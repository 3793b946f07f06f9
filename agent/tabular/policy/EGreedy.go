package policy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/blocklearn/blocklearn/agent/tabular/actions"
	"github.com/blocklearn/blocklearn/agent/tabular/qtable"
	"github.com/blocklearn/blocklearn/timestep"
	"github.com/blocklearn/blocklearn/utils/matutils"
)

// DefaultEpsilon is the exploration rate used when none is configured
const DefaultEpsilon = 0.05

// EGreedy implements an ε-greedy policy over a tabular action-value store,
// where ε is the probability with which a uniformly random action is
// selected. Otherwise the action with the greatest value estimate for the
// current state is selected; ties go to the lowest action index.
//
// The policy reads from the same ValueTable its agent's learner writes to.
// EGreedy requires the profile observation, and the observed state must
// have passed through ValueTable.Ensure before selection ("observe before
// act"); selection for an unknown state fails fast rather than silently
// defaulting.
type EGreedy struct {
	table   *qtable.ValueTable
	epsilon float64
	seed    rand.Source
	current int
}

// NewEGreedy constructs a new EGreedy policy over the given value table,
// where e=epsilon is the probability with which a random action is
// selected
func NewEGreedy(table *qtable.ValueTable, e float64, seed uint64) (*EGreedy, error) {
	if table == nil {
		return nil, fmt.Errorf("egreedy: no value table")
	}
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("egreedy: epsilon must be in [0, 1], got %v", e)
	}

	return &EGreedy{
		table:   table,
		epsilon: e,
		seed:    rand.NewSource(seed),
		current: -1,
	}, nil
}

// Epsilon returns the policy's exploration rate
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon sets the policy's exploration rate
func (p *EGreedy) SetEpsilon(e float64) error {
	if e < 0 || e > 1 {
		return fmt.Errorf("set epsilon: epsilon must be in [0, 1], got %v", e)
	}
	p.epsilon = e
	return nil
}

// SelectAction selects an action from the ε-greedy distribution over the
// current state's action values
func (p *EGreedy) SelectAction(t timestep.TimeStep) (actions.Action, error) {
	obs, ok := t.Observation.(timestep.ProfileObservation)
	if !ok {
		return actions.Action{}, fmt.Errorf("select action: egreedy policy "+
			"requires the profile observation, got %T", t.Observation)
	}
	key := qtable.NewStateKey(obs.Piece, obs.Profile)

	actionValues, err := p.table.ActionValues(key)
	if err != nil {
		return actions.Action{}, fmt.Errorf("select action: %v", err)
	}

	// Find the greedy action
	greedyAction := matutils.MaxVec(actionValues)

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(actions.NumActions)
	actionProbabilities := make([]float64, actions.NumActions)
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilities[greedyAction] += 1.0 - p.epsilon

	// Construct a categorical distribution over actions using the action
	// probabilities and sample an action index from it
	dist := distuv.NewCategorical(actionProbabilities, p.seed)
	index := int(dist.Rand())
	p.current = index

	return actions.Decode(index)
}

// CurrentAction returns the action index chosen by the most recent
// SelectAction call, or -1 before the first call. The learner consumes
// this index on its next update.
func (p *EGreedy) CurrentAction() int {
	return p.current
}
