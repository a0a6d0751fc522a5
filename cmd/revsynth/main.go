package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/revsynth/revsynth/pkg/circuit"
	"github.com/revsynth/revsynth/pkg/lib/signals"
	"github.com/revsynth/revsynth/pkg/synth"
	"github.com/revsynth/revsynth/pkg/truthtable"
	"github.com/revsynth/revsynth/pkg/version"
)

// Exit statuses. Unsatisfiable and oracle timeouts are distinct so
// callers sweeping gate budgets can tell "impossible at this budget"
// from "gave up".
const (
	exitError      = 1
	exitUnsat      = 2
	exitIncomplete = 3
)

type options struct {
	timeout time.Duration
	debug   bool
	version bool
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:   "revsynth <table.csv> <gates> <output>",
		Short: "Synthesizes a reversible circuit realizing a truth table",
		Long: `revsynth encodes "a circuit of controlled-NOT gates realizing the
given truth table exists" as a boolean satisfiability problem, solves
it, and writes the decoded circuit diagram with per-gate-type counts
to the output file. The gate budget is fixed per run and must be at
least the table's bit width.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if o.version {
				return nil
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.version {
				fmt.Print(version.String())
				return nil
			}
			return o.run(args[0], args[1], args[2])
		},
	}
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "give up solving after this long (0 means no limit)")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&o.version, "version", false, "displays revsynth version")
	return cmd
}

func (o *options) run(tablePath, budgetArg, outPath string) error {
	logger := logrus.New()
	if o.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	budget, err := strconv.Atoi(budgetArg)
	if err != nil || budget < 1 {
		return errors.Errorf("gate budget %q must be a positive integer", budgetArg)
	}

	logger.Infof("reading truth table from %s", tablePath)
	table, err := truthtable.ReadFile(tablePath)
	if err != nil {
		return err
	}
	logger.Infof("%d-bit table, %d rows, budget %d gates", table.Width, table.NumRows(), budget)

	s, err := synth.New(synth.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx := signals.Context()
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	c, err := s.Synthesize(ctx, table, budget)
	if err != nil {
		return err
	}
	logger.Infof("circuit found in %s", time.Since(start))

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer out.Close()
	if err := circuit.WriteReport(out, c); err != nil {
		return errors.Wrap(err, "writing report")
	}
	logger.Infof("circuit written to %s", outPath)
	return nil
}

func exitStatus(err error) int {
	var unsat synth.NotSatisfiable
	switch {
	case errors.As(err, &unsat):
		return exitUnsat
	case errors.Is(err, synth.Incomplete):
		return exitIncomplete
	}
	return exitError
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitStatus(err))
	}
}
