package qlearning

import (
	"fmt"

	"github.com/blocklearn/blocklearn/agent/tabular/policy"
)

// Config represents a configuration for the QLearning agent
type Config struct {
	Epsilon float64 // epsilon for the behaviour policy
}

// NewConfig returns a Config with the default exploration rate
func NewConfig() Config {
	return Config{Epsilon: policy.DefaultEpsilon}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon)
	}
	return nil
}
