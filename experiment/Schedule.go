package experiment

import (
	"fmt"

	"github.com/blocklearn/blocklearn/utils/floatutils"
)

// Schedule produces the learning rate supplied to the agent on each
// training step
type Schedule interface {
	Alpha(step int) float64
}

// LinearDecay decays the learning rate linearly from 1 toward 0 as
// training progresses: on each step the learning rate is the fraction of
// training steps remaining.
type LinearDecay struct {
	total int
}

// NewLinearDecay creates a LinearDecay schedule over the argument total
// number of training steps
func NewLinearDecay(total int) (*LinearDecay, error) {
	if total <= 0 {
		return nil, fmt.Errorf("linear decay: total steps must be "+
			"positive, got %d", total)
	}
	return &LinearDecay{total: total}, nil
}

// Alpha returns the fraction of training steps remaining after step steps,
// clipped to [0, 1]
func (l *LinearDecay) Alpha(step int) float64 {
	remaining := float64(l.total-step) / float64(l.total)
	return floatutils.Clip(remaining, 0, 1)
}

// Constant is a Schedule that always returns the same learning rate
type Constant struct {
	alpha float64
}

// NewConstant creates a Constant schedule with the argument learning rate
func NewConstant(alpha float64) (*Constant, error) {
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("constant: learning rate must be in "+
			"[0, 1], got %v", alpha)
	}
	return &Constant{alpha: alpha}, nil
}

// Alpha returns the schedule's learning rate
func (c *Constant) Alpha(int) float64 {
	return c.alpha
}
