package trackers

import (
	"encoding/gob"
	"log"
	"os"

	ts "github.com/blocklearn/blocklearn/timestep"
)

// Return tracks and saves the episodic return in an experiment. When an
// environment returns a TimeStep, this Tracker will extract the reward and
// accumulate the return for each episode in the experiment.
//
// Note: An episode must finish for this Tracker to save its data. If the
// last episode in an experiment does not finish, that episode's return
// will not be saved.
type Return struct {
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker which will save its
// data at the specified location filename
func NewReturn(filename string) Tracker {
	var tracker Return
	tracker.filename = filename
	return &tracker
}

// Track tracks the rewards seen on a timestep. By calling this method on
// every timestep, the Tracker stores all rewards seen in the episode and
// saves the cumulative reward for that episode as the episodic return.
// When a new episode starts, the method automatically starts accumulating
// the rewards of the new episode separately.
func (r *Return) Track(step ts.TimeStep) {
	r.currentReturn += step.Reward

	if step.Last() {
		// Episode has ended: save the return and begin tracking the
		// return of a new episode
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0.0
	}
}

// Save saves the data tracked by the Return Tracker to disk.
func (r *Return) Save() {
	// Open the file to save to
	file, err := os.Create(r.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	// Encode and save the file
	en := gob.NewEncoder(file)
	if err = en.Encode(r.episodeReturns); err != nil {
		log.Fatalf("could not encode return data: %v", err)
	}
}
