// Command acotsp runs a parallelized Ant Colony Optimization solver for the
// symmetric Traveling Salesperson Problem against one or more TSPLIB
// instances, driven by a JSON run-description file.
package main

import (
	"os"

	"github.com/katalvlaran/acotsp/config"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var includeTour bool

	log := newLogger()

	cmd := &cobra.Command{
		Use:   "acotsp <run-description.json>",
		Short: "Run ACO TSP solves described by a run-description JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descs, err := config.LoadRunDescriptions(args[0])
			if err != nil {
				return err
			}
			if !runAll(descs, includeTour, log) {
				return errRunFailed
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.Flags().BoolVarP(&includeTour, "tour", "t", false, "include full tour text in the per-iteration log")
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("acotsp failed")

		return 1
	}

	return 0
}
