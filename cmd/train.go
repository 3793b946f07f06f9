package cmd

import (
	"fmt"

	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/blocklearn/blocklearn/agent/tabular/qlearning"
	"github.com/blocklearn/blocklearn/environment"
	"github.com/blocklearn/blocklearn/environment/blockdrop"
	"github.com/blocklearn/blocklearn/experiment"
	"github.com/blocklearn/blocklearn/experiment/trackers"
	"github.com/blocklearn/blocklearn/utils/floatutils"
)

func TrainCommand() *cobra.Command {
	var steps int
	var epsilon float64
	var seed uint64
	var dataFile string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the tabular Q-learning agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := blockdrop.New(environment.ProfileObs, qlearning.Discount,
				seed)

			a, err := qlearning.New(qlearning.Config{Epsilon: epsilon}, seed)
			if err != nil {
				return err
			}

			schedule, err := experiment.NewLinearDecay(steps)
			if err != nil {
				return err
			}

			exp := experiment.NewOnline(env, a, schedule, uint(steps),
				trackers.NewReturn(dataFile))

			writer := uilive.New()
			writer.Start()

			episodes := 0
			ended := false
			for !ended {
				ended, err = exp.RunEpisode()
				if err != nil {
					writer.Stop()
					return err
				}
				episodes++

				fmt.Fprintf(writer, "episodes: %d\tsteps: %d/%d\t"+
					"states visited: %d\n", episodes, exp.Steps(), steps,
					a.Table().Len())
			}
			writer.Stop()

			exp.Save()

			returns := trackers.LoadData(dataFile)
			if len(returns) == 0 {
				fmt.Println("no episode finished; nothing to report")
				return nil
			}

			best, _ := floatutils.MaxSlice(returns)
			fmt.Printf("episodes: %d  mean return: %.3f  best return: %.3f\n",
				len(returns), stat.Mean(returns, nil), best)
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 100_000, "number of training steps")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 0.05, "exploration rate")
	cmd.Flags().Uint64Var(&seed, "seed", 192382, "random seed")
	cmd.Flags().StringVar(&dataFile, "data", "./returns.bin",
		"file to save episodic returns to")

	return cmd
}
