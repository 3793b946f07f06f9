package experiment

import (
	env "github.com/blocklearn/blocklearn/environment"
	"github.com/blocklearn/blocklearn/experiment/trackers"

	"github.com/blocklearn/blocklearn/agent"
	ts "github.com/blocklearn/blocklearn/timestep"
	"github.com/blocklearn/blocklearn/utils/progressbar"
)

// Online is an Experiment that trains an agent online only. No offline
// evaluation is performed. Each timestep is a strict sequential
// observe-act-learn cycle; the learning rate for each step comes from the
// experiment's Schedule.
type Online struct {
	env.Environment
	agent.Agent
	schedule     Schedule
	maxSteps     uint
	currentSteps uint
	trackers     []trackers.Tracker
}

var _ Experiment = (*Online)(nil)

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how many
// timesteps the experiment is run for, the schedule supplies the per-step
// learning rate, and the t parameter is a slice of trackers.Tracker which
// determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, schedule Schedule,
	steps uint, t ...trackers.Tracker) *Online {
	return &Online{e, a, schedule, steps, 0, t}
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Steps returns the number of timesteps run so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// RunEpisode runs a single episode of the experiment
func (o *Online) RunEpisode() (bool, error) {
	step := o.Environment.Reset()
	if err := o.Agent.ObserveFirst(step); err != nil {
		return false, err
	}
	o.track(step)

	// Run the next timestep
	for !step.Last() && o.currentSteps < o.maxSteps {
		alpha := o.schedule.Alpha(int(o.currentSteps))
		o.currentSteps++

		// Select action, step in environment
		action, err := o.Agent.SelectAction(step)
		if err != nil {
			return false, err
		}
		step, _ = o.Environment.Step(action)

		// Cache the environment step in each Tracker
		o.track(step)

		// Observe the timestep and step the agent
		if err := o.Agent.Observe(action, step); err != nil {
			return false, err
		}
		if err := o.Agent.Step(alpha); err != nil {
			return false, err
		}
	}
	o.Agent.EndEpisode()

	// Return whether or not the max timestep limit has been reached
	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps, displaying a progress
// bar on the terminal
func (o *Online) Run() error {
	pbar := progressbar.New(50, int(o.maxSteps))

	ended := false
	for !ended {
		last := o.currentSteps

		var err error
		ended, err = o.RunEpisode()
		if err != nil {
			return err
		}

		for i := last; i < o.currentSteps; i++ {
			pbar.Increment()
		}
		pbar.Display()
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, tracker := range o.trackers {
		tracker.Save()
	}
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
