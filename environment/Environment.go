// Package environment outlines the interfaces needed to implement concrete
// falling-block environments
package environment

import (
	"github.com/blocklearn/blocklearn/agent/tabular/actions"
	"github.com/blocklearn/blocklearn/timestep"
)

// ObsMode selects which of the two observation contracts an environment
// serves. The mode is fixed at environment construction: the learning agent
// needs the compact column profile, while the baseline policies inspect the
// full board, and the two shapes are distinct contracts rather than one
// superset.
type ObsMode int

const (
	// ProfileObs serves timestep.ProfileObservation (learning mode).
	ProfileObs ObsMode = iota

	// BoardObs serves timestep.BoardObservation (baseline modes).
	BoardObs
)

func (m ObsMode) String() string {
	switch m {
	case ProfileObs:
		return "ProfileObs"
	case BoardObs:
		return "BoardObs"
	default:
		return "Unknown"
	}
}

// Environment implements a simulated falling-block game. The environment
// owns the board geometry and piece physics: it validates and clamps the
// requested move against the actual board width and piece shape before
// executing it. Rewards ride on the returned TimeStep.
type Environment interface {
	// Reset resets the environment between episodes. The environment
	// starts ready to use.
	Reset() timestep.TimeStep

	// Step executes an action, returning the resulting timestep and
	// whether that timestep is the last in the episode.
	Step(a actions.Action) (timestep.TimeStep, bool)

	// ObsMode returns the observation contract this environment serves.
	ObsMode() ObsMode
}
