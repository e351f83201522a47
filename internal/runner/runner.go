package runner

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ArtifactExt is the extension of the annotated Boogie artifact written by
// the contract compiler.
const ArtifactExt = ".bpl"

// Runner sequences the external compile and verify invocations.
type Runner struct {
	compilerBin string
	boogieBin   string
	logger      hclog.Logger
}

// New creates a Runner for the given toolchain binaries.
func New(compilerBin, boogieBin string, logger hclog.Logger) *Runner {
	return &Runner{
		compilerBin: compilerBin,
		boogieBin:   boogieBin,
		logger:      logger,
	}
}

// ArtifactPath returns the artifact path the compiler writes for sourcePath.
func ArtifactPath(outputDir, sourcePath string) string {
	return filepath.Join(outputDir, filepath.Base(sourcePath)+ArtifactExt)
}

// Compile invokes the contract compiler on sourcePath, writing the annotated
// artifact into outputDir. On nonzero exit it returns a *CompileError
// carrying the combined output verbatim.
func (r *Runner) Compile(sourcePath, outputDir, arithmetic string) (string, error) {
	args := []string{sourcePath, "--output-dir", outputDir, "--arithmetic", arithmetic}
	r.logger.Debug("compiling", "bin", r.compilerBin, "args", args)

	var buf bytes.Buffer
	cmd := exec.Command(r.compilerBin, args...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		return "", &CompileError{Output: buf.String(), Err: err}
	}

	artifact := ArtifactPath(outputDir, sourcePath)
	r.logger.Debug("compilation finished", "artifact", artifact)
	return artifact, nil
}

// VerifyRequest holds the parameters of a single verifier invocation.
type VerifyRequest struct {
	ArtifactPath string
	SolverFlags  []string
	ProverLog    string // optional path for the raw solver interaction log
	Deadline     time.Duration
}

// Verify invokes the Boogie verifier on the artifact under a wall-clock
// deadline, returning its combined output. The child runs in its own process
// group. The watchdog and the process waiter race over two one-shot paths:
// either the deadline fires and the whole process tree is terminated, or the
// process exits first and the timer is stopped. The captured output is
// returned in both cases so callers can surface it.
func (r *Runner) Verify(req VerifyRequest) (string, error) {
	args := make([]string, 0, len(baseFlags)+len(req.SolverFlags)+2)
	args = append(args, baseFlags...)
	args = append(args, req.SolverFlags...)
	if req.ProverLog != "" {
		args = append(args, "/proverLog:"+req.ProverLog)
	}
	args = append(args, req.ArtifactPath)

	r.logger.Debug("verifying", "bin", r.boogieBin, "args", args, "deadline", req.Deadline)

	var buf bytes.Buffer
	cmd := exec.Command(r.boogieBin, args...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return "", &VerifyError{Err: fmt.Errorf("failed to start verifier %q: %w", r.boogieBin, err)}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	timer := time.NewTimer(req.Deadline)
	defer timer.Stop()

	select {
	case <-timer.C:
		r.logger.Warn("deadline expired, terminating verifier process tree", "pid", cmd.Process.Pid)
		KillTree(cmd.Process.Pid, r.logger)
		<-done
		return buf.String(), &TimeoutError{Deadline: req.Deadline}
	case err := <-done:
		if err != nil {
			return buf.String(), &VerifyError{Output: buf.String(), Err: err}
		}
	}

	return buf.String(), nil
}
