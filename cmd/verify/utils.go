package verify

import (
	"errors"

	"github.com/solverity/solverity/internal/correlate"
	"github.com/solverity/solverity/internal/report"
	"github.com/solverity/solverity/internal/runner"
	"github.com/solverity/solverity/internal/solver"
)

// categorize maps a fatal pipeline error to its user-facing category label.
func categorize(err error) string {
	var (
		notFound    *solver.NotFoundError
		compileErr  *runner.CompileError
		timeoutErr  *runner.TimeoutError
		verifyErr   *runner.VerifyError
		artifactErr *correlate.ArtifactError
		summaryErr  *report.SummaryError
	)

	switch {
	case errors.As(err, &notFound):
		return "SOLVER NOT FOUND"
	case errors.As(err, &compileErr):
		return "COMPILATION FAILED"
	case errors.As(err, &timeoutErr):
		return "VERIFICATION TIMEOUT"
	case errors.As(err, &verifyErr):
		return "VERIFICATION FAILED"
	case errors.As(err, &artifactErr):
		return "ARTIFACT UNREADABLE"
	case errors.As(err, &summaryErr):
		return "UNPARSEABLE VERIFIER OUTPUT"
	default:
		return "VERIFICATION ABORTED"
	}
}

// capturedOutput extracts the raw tool output carried by a fatal error, if any.
func capturedOutput(err error) string {
	var (
		compileErr *runner.CompileError
		verifyErr  *runner.VerifyError
		summaryErr *report.SummaryError
	)

	switch {
	case errors.As(err, &compileErr):
		return compileErr.Output
	case errors.As(err, &verifyErr):
		return verifyErr.Output
	case errors.As(err, &summaryErr):
		return summaryErr.Output
	}
	return ""
}
