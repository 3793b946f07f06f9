package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/blocklearn/blocklearn/agent"
	"github.com/blocklearn/blocklearn/agent/tabular/policy"
	"github.com/blocklearn/blocklearn/agent/tabular/qlearning"
	"github.com/blocklearn/blocklearn/environment"
	"github.com/blocklearn/blocklearn/environment/blockdrop"
)

func PlayCommand() *cobra.Command {
	var episodes int
	var policyName string
	var seed uint64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run a baseline policy and report its mean return",
		RunE: func(cmd *cobra.Command, args []string) error {
			var pol agent.Policy
			switch policyName {
			case "random":
				pol = policy.NewRandom(seed + 1)
			case "fixed":
				pol = policy.NewFixed(seed + 1)
			default:
				return fmt.Errorf("play: no such policy %q", policyName)
			}

			env := blockdrop.New(environment.BoardObs, qlearning.Discount,
				seed)

			returns := make([]float64, episodes)
			for i := 0; i < episodes; i++ {
				step := env.Reset()
				for !step.Last() {
					action, err := pol.SelectAction(step)
					if err != nil {
						return err
					}
					step, _ = env.Step(action)
					returns[i] += step.Reward
				}
			}

			fmt.Printf("policy: %s  episodes: %d  mean return: %.3f\n",
				policyName, episodes, stat.Mean(returns, nil))
			return nil
		},
	}

	cmd.Flags().IntVar(&episodes, "episodes", 100, "number of episodes to play")
	cmd.Flags().StringVar(&policyName, "policy", "fixed",
		"baseline policy to play (random|fixed)")
	cmd.Flags().Uint64Var(&seed, "seed", 192382, "random seed")

	return cmd
}
