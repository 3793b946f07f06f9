// Package cmd implements the blocklearn command line interface.
package cmd

import "github.com/spf13/cobra"

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocklearn",
		Short: "Train and evaluate falling-block agents",
	}

	cmd.AddCommand(
		TrainCommand(),
		PlayCommand(),
	)

	return cmd
}
