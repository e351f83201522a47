package verify

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/solverity/solverity/internal/driver"
	"github.com/solverity/solverity/internal/logger"
	"github.com/solverity/solverity/internal/solver"
	"github.com/solverity/solverity/pkg/shared"
	"github.com/solverity/solverity/pkg/shared/config"
)

// RunOptionsVerify holds the arguments for the verify command.
type RunOptionsVerify struct {
	Solver     string
	SolverBin  string
	Arithmetic string
	Timeout    int
	OutputDir  string
	SarifPath  string
	SMTLogPath string
	ErrorsOnly bool
	Verbose    bool
}

// Global variables for configuration and command arguments
var (
	AppConfig          *config.Config
	verifyOptions      RunOptionsVerify
	exampleVerifyUsage = `  # Verifying a contract with the default z3 solver
  solverity verify contracts/SimpleBank.sol

  # Verifying with cvc4 and modular arithmetic under a 2 minute deadline
  solverity verify --solver cvc4 --arithmetic mod --timeout 120 contracts/SimpleBank.sol

  # Using an explicit solver executable and keeping the raw SMT interaction log
  solverity verify --solver z3 --solver-bin /opt/z3/bin/z3 --smt-log /tmp/smt.log contracts/SimpleBank.sol

  # Reporting errors only and exporting a SARIF report
  solverity verify --errors-only --sarif report.sarif contracts/SimpleBank.sol`
)

// VerifyCmd represents the verify command.
var VerifyCmd = &cobra.Command{
	Use:                   "verify [--solver/-s BACKEND] [--arithmetic/-a MODE] [--timeout/-t SECONDS] PATH",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleVerifyUsage,
	Short:                 "Compiles a contract to Boogie and runs the verifier on it",
	RunE:                  runVerifyCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runVerifyCommand executes the verify command.
func runVerifyCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	log := logger.NewLogger(AppConfig, "core-verify")

	if err := validateVerifyArgs(&verifyOptions, args); err != nil {
		log.Error("invalid verify arguments", "error", err)
		return err
	}

	if verifyOptions.Timeout == 0 {
		verifyOptions.Timeout = config.GetTimeoutSeconds(AppConfig)
	}

	d := driver.New(AppConfig, driver.Options{
		SourcePath: args[0],
		Solver:     verifyOptions.Solver,
		SolverBin:  verifyOptions.SolverBin,
		Arithmetic: verifyOptions.Arithmetic,
		Timeout:    time.Duration(verifyOptions.Timeout) * time.Second,
		OutputDir:  verifyOptions.OutputDir,
		SarifPath:  verifyOptions.SarifPath,
		SMTLogPath: verifyOptions.SMTLogPath,
		ErrorsOnly: verifyOptions.ErrorsOnly,
	}, log)

	if _, err := d.Run(os.Stdout); err != nil {
		if output := capturedOutput(err); output != "" && verifyOptions.Verbose {
			fmt.Fprintln(os.Stderr, strings.TrimRight(output, "\n"))
		}
		return fmt.Errorf("%s: %w", categorize(err), err)
	}

	return nil
}

func init() {
	VerifyCmd.Flags().StringVarP(&verifyOptions.Solver, "solver", "s", solver.Z3, fmt.Sprintf("solver backend, one of: %s", strings.Join(solver.Backends(), ", ")))
	VerifyCmd.Flags().StringVar(&verifyOptions.SolverBin, "solver-bin", "", "explicit path to the solver executable, bypasses the search roots")
	VerifyCmd.Flags().StringVarP(&verifyOptions.Arithmetic, "arithmetic", "a", "int", "arithmetic encoding: int, bv, mod or mod-overflow")
	VerifyCmd.Flags().IntVarP(&verifyOptions.Timeout, "timeout", "t", 0, "verification deadline in seconds (default from config)")
	VerifyCmd.Flags().StringVarP(&verifyOptions.OutputDir, "output", "o", "", "output folder for the generated artifact (default: per-run folder under results home)")
	VerifyCmd.Flags().StringVar(&verifyOptions.SarifPath, "sarif", "", "write located diagnostics as a SARIF report to this path")
	VerifyCmd.Flags().StringVar(&verifyOptions.SMTLogPath, "smt-log", "", "persist the raw solver interaction log to this path")
	VerifyCmd.Flags().BoolVarP(&verifyOptions.ErrorsOnly, "errors-only", "e", false, "report located errors only, without per-procedure progress")
	VerifyCmd.Flags().BoolVarP(&verifyOptions.Verbose, "verbose", "v", false, "print captured tool output on fatal errors")
}
