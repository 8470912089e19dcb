package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/silicasynth/moscad/circuit"
	"github.com/silicasynth/moscad/query"
	"github.com/silicasynth/moscad/signal"
	"github.com/silicasynth/moscad/solver"
)

// solveOptions holds the flags for the solve subcommand.
type solveOptions struct {
	power       []string
	inputs      []string
	output      string
	maxDevices  int
	showCircuit bool
}

func newSolveCmd() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a minimal transistor network realizing a glyph-string truth table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.power, "power", nil, "a power rail signal, in glyph form (repeatable)")
	cmd.Flags().StringArrayVar(&opts.inputs, "input", nil, "an input signal, in glyph form (repeatable)")
	cmd.Flags().StringVar(&opts.output, "output", "", "the target output signal, in glyph form (required)")
	cmd.Flags().IntVar(&opts.maxDevices, "max-devices", 8, "device budget for the iterative-deepening search")
	cmd.Flags().BoolVar(&opts.showCircuit, "show-circuit", false, "reconstruct and print the witnessing device list")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *solveOptions) error {
	if opts.output == "" {
		return fmt.Errorf("moscad solve: --output is required")
	}

	q, err := buildQuery(opts)
	if err != nil {
		return err
	}

	res, err := solver.Solve(q, solver.WithMaxDevices(opts.maxDevices))
	if err != nil {
		return err
	}

	out := log.New(cmd.OutOrStdout(), "", 0)
	if !res.Found {
		out.Printf("no solution found within %d devices", opts.maxDevices)
		return nil
	}

	out.Printf("found a solution with %d device(s)", res.Depth)

	if opts.showCircuit {
		devices, err := circuit.Reconstruct(q, res.Depth)
		if err != nil {
			return err
		}
		out.Print(circuit.Summarize(devices))
	}

	return nil
}

func buildQuery(opts *solveOptions) (*query.Query[uint8], error) {
	power, err := parseSignals(opts.power)
	if err != nil {
		return nil, fmt.Errorf("moscad solve: parsing --power: %w", err)
	}
	inputs, err := parseSignals(opts.inputs)
	if err != nil {
		return nil, fmt.Errorf("moscad solve: parsing --input: %w", err)
	}
	target, err := signal.Parse[uint8](opts.output)
	if err != nil {
		return nil, fmt.Errorf("moscad solve: parsing --output: %w", err)
	}

	cs := signal.NewCareSignal(target, target.IgnoredMask().Not())
	q := query.New(power, inputs, []signal.CareSignal[uint8]{cs})
	if err := q.Check(); err != nil {
		return nil, fmt.Errorf("moscad solve: %w", err)
	}

	return &q, nil
}

func parseSignals(glyphs []string) ([]signal.Signal[uint8], error) {
	sigs := make([]signal.Signal[uint8], len(glyphs))
	for i, g := range glyphs {
		s, err := signal.Parse[uint8](g)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", g, err)
		}
		sigs[i] = s
	}

	return sigs, nil
}
