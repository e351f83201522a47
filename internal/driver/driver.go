package driver

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/solverity/solverity/internal/correlate"
	"github.com/solverity/solverity/internal/report"
	"github.com/solverity/solverity/internal/runner"
	"github.com/solverity/solverity/internal/solver"
	"github.com/solverity/solverity/pkg/shared/config"
	"github.com/solverity/solverity/pkg/shared/files"
)

// Options holds the parameters of a single verification run.
type Options struct {
	SourcePath string
	Solver     string
	SolverBin  string // optional explicit solver executable
	Arithmetic string
	Timeout    time.Duration
	OutputDir  string // optional; defaults to a per-run folder under results home
	SarifPath  string // optional SARIF export path
	SMTLogPath string // optional raw solver interaction log
	ErrorsOnly bool
}

// Driver owns one verification run: compile, verify under deadline,
// correlate, report. Runs never retry; a failed run is terminal and the
// caller may re-invoke the whole pipeline.
type Driver struct {
	cfg    *config.Config
	opts   Options
	logger hclog.Logger
}

// New creates a Driver for the given run options.
func New(cfg *config.Config, opts Options, logger hclog.Logger) *Driver {
	return &Driver{cfg: cfg, opts: opts, logger: logger}
}

// Run executes the pipeline and writes the human-readable report to w. The
// compile step fully completes before the verify step starts. Any returned
// error is fatal for the run and no verdict line is written.
func (d *Driver) Run(w io.Writer) (report.Verdict, error) {
	solverPath, err := solver.Find(d.opts.Solver, d.opts.SolverBin, config.GetSolverRoots(d.cfg), d.logger)
	if err != nil {
		return report.Verdict{}, err
	}
	d.logger.Info("solver resolved", "backend", d.opts.Solver, "path", solverPath)

	outputDir, err := d.resolveOutputDir()
	if err != nil {
		return report.Verdict{}, err
	}

	r := runner.New(config.GetCompilerBin(d.cfg), config.GetBoogieBin(d.cfg), d.logger)

	artifactPath, err := r.Compile(d.opts.SourcePath, outputDir, d.opts.Arithmetic)
	if err != nil {
		return report.Verdict{}, err
	}
	d.logger.Info("compiled", "source", d.opts.SourcePath, "artifact", artifactPath)

	solverFlags, err := runner.SolverFlags(d.opts.Solver, solverPath, d.opts.Arithmetic)
	if err != nil {
		return report.Verdict{}, err
	}

	rawOutput, err := r.Verify(runner.VerifyRequest{
		ArtifactPath: artifactPath,
		SolverFlags:  solverFlags,
		ProverLog:    d.opts.SMTLogPath,
		Deadline:     d.opts.Timeout,
	})
	if err != nil {
		return report.Verdict{}, err
	}

	artifact, err := correlate.LoadArtifact(artifactPath)
	if err != nil {
		return report.Verdict{}, err
	}

	outputLines := correlate.SplitOutput(rawOutput)

	verdict, err := report.ParseVerdict(outputLines)
	if err != nil {
		var summaryErr *report.SummaryError
		if errors.As(err, &summaryErr) {
			summaryErr.Output = rawOutput
		}
		return report.Verdict{}, err
	}

	records := correlate.New(artifact, d.logger).Correlate(outputLines, correlate.Options{
		ErrorsOnly: d.opts.ErrorsOnly,
	})

	printer := report.NewPrinter(w, d.opts.ErrorsOnly)
	printer.PrintRecords(records)
	printer.PrintVerdict(verdict)

	if d.opts.SarifPath != "" {
		if err := report.WriteSarif(d.opts.SarifPath, records); err != nil {
			return verdict, err
		}
		d.logger.Info("SARIF report written", "path", d.opts.SarifPath)
	}

	d.logger.Info("verification finished", "verified", verdict.Verified, "errors", verdict.Errors)
	return verdict, nil
}

// resolveOutputDir returns the run's output folder, creating it if needed.
// Without an explicit folder each run gets its own under the results home.
func (d *Driver) resolveOutputDir() (string, error) {
	outputDir := d.opts.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(config.GetResultsHome(d.cfg), uuid.New().String())
	}

	expanded, err := files.ExpandPath(outputDir)
	if err != nil {
		return "", fmt.Errorf("failed to expand output folder %q: %w", outputDir, err)
	}
	if err := files.CreateFolderIfNotExists(expanded); err != nil {
		return "", err
	}
	return expanded, nil
}
