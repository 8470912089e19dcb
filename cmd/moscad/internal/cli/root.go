// Package cli wires the cobra command tree for the moscad binary.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "moscad",
		Short: "Synthesize a minimal CMOS transistor network for a target truth table",
		Long: `moscad searches for the smallest interconnection of P-type and N-type
MOS transistors whose node voltages realize a specified output signal,
subject to don't-care bits, using an iterative-deepening search over
power rails, input wires, and the nets already built.`,
		SilenceUsage: true,
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newScenarioCmd())

	return root
}
