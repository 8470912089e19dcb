package cli

import (
	"fmt"
	"log"
	"sort"

	"github.com/spf13/cobra"

	"github.com/silicasynth/moscad/circuit"
	"github.com/silicasynth/moscad/query"
	"github.com/silicasynth/moscad/scenarios"
	"github.com/silicasynth/moscad/solver"
)

// presets maps a scenario name, as given on the command line, to its
// builder function. Kept as a map literal rather than reflection over the
// scenarios package so an unknown name fails fast with a clear error.
var presets = map[string]func() query.Query[uint8]{
	"single-n-pass":   scenarios.SingleNPass,
	"single-p-pass":   scenarios.SinglePPass,
	"not":             scenarios.Not,
	"buffer":          scenarios.Buffer,
	"buffer-with-inv": scenarios.BufferWithInvertedInputGiven,
	"nand2":           scenarios.NAND2,
	"nor2":            scenarios.NOR2,
	"and2":            scenarios.AND2,
	"xor2":            scenarios.XOR2,
	"tristate-buffer": scenarios.TriStateBuffer,
	"half-adder":      scenarios.HalfAdder,
	"nand3":           scenarios.NAND3,
}

type scenarioOptions struct {
	maxDevices  int
	showCircuit bool
}

func newScenarioCmd() *cobra.Command {
	opts := &scenarioOptions{}

	cmd := &cobra.Command{
		Use:   "scenario [name]",
		Short: "Solve one of the bundled preset truth tables, or list them with no argument",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listScenarios(cmd)
			}
			return runScenario(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.maxDevices, "max-devices", 8, "device budget for the iterative-deepening search")
	cmd.Flags().BoolVar(&opts.showCircuit, "show-circuit", false, "reconstruct and print the witnessing device list")

	return cmd
}

func listScenarios(cmd *cobra.Command) error {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := log.New(cmd.OutOrStdout(), "", 0)
	for _, name := range names {
		out.Print(name)
	}

	return nil
}

func runScenario(cmd *cobra.Command, name string, opts *scenarioOptions) error {
	build, ok := presets[name]
	if !ok {
		return fmt.Errorf("moscad scenario: unknown scenario %q", name)
	}

	q := build()

	res, err := solver.Solve(&q, solver.WithMaxDevices(opts.maxDevices))
	if err != nil {
		return err
	}

	out := log.New(cmd.OutOrStdout(), "", 0)
	if !res.Found {
		out.Printf("%s: no solution found within %d devices", name, opts.maxDevices)
		return nil
	}

	out.Printf("%s: found a solution with %d device(s)", name, res.Depth)

	if opts.showCircuit {
		devices, err := circuit.Reconstruct(&q, res.Depth)
		if err != nil {
			return err
		}
		out.Print(circuit.Summarize(devices))
	}

	return nil
}
