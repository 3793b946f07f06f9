// Package agent defines an agent interface
package agent

import (
	"github.com/blocklearn/blocklearn/agent/tabular/actions"
	"github.com/blocklearn/blocklearn/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which updates action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// Policy.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action values
// are updated.
type Learner interface {
	// Step performs a single update to the learner with the
	// caller-supplied learning rate
	Step(alpha float64) error

	// Observe records that an action lead to some timestep
	Observe(action actions.Action, nextObs timestep.TimeStep) error

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep) error

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. A Policy that reads
// learned values should share those values with its agent's Learner so
// that updates the Learner makes are reflected in the actions the Policy
// chooses.
type Policy interface {
	SelectAction(t timestep.TimeStep) (actions.Action, error)
}
