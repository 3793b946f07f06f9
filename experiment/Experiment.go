// Package experiment implements functionality for running an experiment
package experiment

import (
	"github.com/blocklearn/blocklearn/experiment/trackers"
)

// Experiment outlines structs that can run experiments. Experiments track
// environment TimeSteps, caching data from each TimeStep in RAM to be
// later saved to disk with the Save() function. The Run() method runs all
// episodes until the maximum timestep limit is reached, and RunEpisode()
// runs a single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments send
// each TimeStep to Trackers using the Tracker's Track() method. New
// Trackers can be registered with an Experiment through the constructor or
// through an Experiment's Register() function.
type Experiment interface {
	Run() error

	// RunEpisode returns whether or not the step limit was reached
	// during the episode
	RunEpisode() (bool, error)

	// Register adds a new Tracker to the (possibly already running)
	// experiment. Useful to track data only after a specified event.
	Register(t trackers.Tracker)

	// Save all tracked data to disk
	Save()
}
