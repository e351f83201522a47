package report

import (
	"fmt"
	"regexp"
	"strconv"
)

// summaryRe matches the verifier's terminal sentinel line. The counts in the
// verdict are the literal counts reported there, never a recount of records.
var summaryRe = regexp.MustCompile(`Boogie program verifier finished with (\d+) verified, (\d+) errors`)

// Verdict is the overall outcome of a verification run.
type Verdict struct {
	Verified int
	Errors   int
	Pass     bool
}

// SummaryError reports that the verifier output lacks the terminal sentinel
// line. The run is inconclusive; no verdict may be derived.
type SummaryError struct {
	Output string
}

func (e *SummaryError) Error() string {
	return "verifier output has no summary line, run is inconclusive"
}

// ParseVerdict derives the verdict from the final non-empty output line.
func ParseVerdict(lines []string) (Verdict, error) {
	if len(lines) == 0 {
		return Verdict{}, &SummaryError{}
	}

	last := lines[len(lines)-1]
	m := summaryRe.FindStringSubmatch(last)
	if m == nil {
		return Verdict{}, &SummaryError{Output: last}
	}

	verified, err := strconv.Atoi(m[1])
	if err != nil {
		return Verdict{}, fmt.Errorf("invalid verified count %q: %w", m[1], err)
	}
	errors, err := strconv.Atoi(m[2])
	if err != nil {
		return Verdict{}, fmt.Errorf("invalid error count %q: %w", m[2], err)
	}

	return Verdict{Verified: verified, Errors: errors, Pass: errors == 0}, nil
}
