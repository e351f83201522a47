package report

import (
	"fmt"
	"io"

	"github.com/solverity/solverity/internal/correlate"
)

// Terminal verdict lines.
const (
	PassMessage = "No errors found."
	FailMessage = "Errors were found by the verifier."
)

// bullet prefixes located diagnostics outside errors-only mode.
const bullet = " - "

// Printer writes the human-readable report: records in discovery order
// followed by the terminal verdict line.
type Printer struct {
	w          io.Writer
	errorsOnly bool
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, errorsOnly bool) *Printer {
	return &Printer{w: w, errorsOnly: errorsOnly}
}

// PrintRecords writes every record in the order it was discovered.
func (p *Printer) PrintRecords(records []correlate.Record) {
	for _, rec := range records {
		if rec.Kind == correlate.KindInfo {
			verdict := "OK"
			if !rec.Passed {
				verdict = "ERROR"
			}
			fmt.Fprintf(p.w, "Verifying %s: %s\n", rec.Procedure, verdict)
			continue
		}

		prefix := bullet
		if p.errorsOnly {
			prefix = ""
		}
		fmt.Fprintf(p.w, "%sSource %s, line %d, col %d: %s\n", prefix, rec.File, rec.Line, rec.Col, rec.Message)
	}
}

// PrintVerdict writes the terminal verdict line.
func (p *Printer) PrintVerdict(v Verdict) {
	if v.Pass {
		fmt.Fprintln(p.w, PassMessage)
		return
	}
	fmt.Fprintln(p.w, FailMessage)
}
