package verify

import (
	"fmt"
	"strings"

	"github.com/solverity/solverity/internal/runner"
	"github.com/solverity/solverity/internal/solver"
	"github.com/solverity/solverity/pkg/shared/files"
)

// validateVerifyArgs validates the arguments provided to the verify command.
func validateVerifyArgs(options *RunOptionsVerify, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one contract source path must be specified")
	}

	if err := files.ValidatePath(args[0]); err != nil {
		return fmt.Errorf("invalid contract source path: %w", err)
	}

	if !solver.Known(options.Solver) {
		return fmt.Errorf("unknown solver %q, supported: %s", options.Solver, strings.Join(solver.Backends(), ", "))
	}

	if !runner.ValidArithmetic(options.Arithmetic) {
		return fmt.Errorf("unknown arithmetic encoding %q, supported: %s", options.Arithmetic, strings.Join(runner.ArithmeticModes(), ", "))
	}

	if options.Timeout < 0 {
		return fmt.Errorf("the 'timeout' flag must be a positive integer")
	}

	return nil
}
