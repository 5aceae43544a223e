// Command gophercount reads a CNF formula in DIMACS format and reports an
// approximate count of its satisfying assignments. It is a thin wrapper
// around package counter; none of the counting logic lives here, mirroring
// how gophersat's own main.go (github.com/crillab/gophersat) is a thin
// flag-parsing shell around package solver.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/crillab/gophercount/cnf"
	"github.com/crillab/gophercount/counter"
	"github.com/crillab/gophercount/internal/prng"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		trials    int
		density   float64
		seed      int64
		verbosity int
	)

	cmd := &cobra.Command{
		Use:   "gophercount [flags] file.cnf",
		Short: "Estimate the number of satisfying assignments of a CNF formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open %s: %w", args[0], err)
			}
			defer func() { _ = f.Close() }()

			formula, err := cnf.ParseDIMACS(f)
			if err != nil {
				return fmt.Errorf("could not parse %s: %w", args[0], err)
			}

			prng.Seed(seed)
			stdr.SetVerbosity(verbosity)
			logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

			result := counter.Approximate(formula, trials, 0, density, counter.Config{Logger: logger})
			fmt.Printf("c estimated model count: %d\n", result.Estimated)
			fmt.Printf("c average scaled count:  %f\n", result.Average)
			fmt.Printf("c successful trials:     %d/%d\n", countSuccessful(result.Trials), len(result.Trials))
			return nil
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 10, "number of hashed trials to run")
	cmd.Flags().Float64Var(&density, "density", 0.5, "per-variable inclusion probability for each XOR constraint")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for the process-wide PRNG backing XOR generation")
	cmd.Flags().IntVar(&verbosity, "v", 0, "log verbosity (0 disables diagnostic logging)")

	return cmd
}

func countSuccessful(trials []counter.TrialResult) int {
	n := 0
	for _, t := range trials {
		if t.OK {
			n++
		}
	}
	return n
}
