package runner

import (
	"fmt"
	"time"
)

// CompileError reports a nonzero exit of the contract compiler. Output holds
// the verbatim combined stdout+stderr of the compiler.
type CompileError struct {
	Output string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compilation failed: %v", e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// VerifyError reports a nonzero exit of the verifier for reasons other than
// the deadline. Output holds the verbatim combined stdout+stderr.
type VerifyError struct {
	Output string
	Err    error
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("verification failed: %v", e.Err)
}

func (e *VerifyError) Unwrap() error { return e.Err }

// TimeoutError reports that the verifier process tree was terminated by the
// deadline watchdog.
type TimeoutError struct {
	Deadline time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("verification timed out after %s, process tree terminated", e.Deadline)
}
