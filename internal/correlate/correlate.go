package correlate

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Record is one normalized unit of the final report: a diagnostic located in
// the original source, or a per-procedure progress entry. Immutable once
// built.
type Record struct {
	Kind      string
	File      string
	Line      int
	Col       int
	Message   string
	Procedure string // set for KindInfo records only
	Passed    bool   // set for KindInfo records only
}

// Options controls which records the correlator emits.
type Options struct {
	// ErrorsOnly suppresses per-procedure progress records.
	ErrorsOnly bool
}

// Correlator translates raw verifier output into source-located records by
// cross-referencing the annotated artifact.
type Correlator struct {
	artifact *Artifact
	logger   hclog.Logger
}

// New creates a Correlator over the given artifact.
func New(artifact *Artifact, logger hclog.Logger) *Correlator {
	return &Correlator{artifact: artifact, logger: logger}
}

// SplitOutput splits raw verifier output into its non-empty lines.
func SplitOutput(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Correlate performs a single left-to-right scan with one line of lookahead
// over the verifier output, emitting one record per recognized diagnostic in
// discovery order. Unrecognized lines are ignored. Records referencing the
// same artifact line are emitted independently; there is no de-duplication.
func (c *Correlator) Correlate(output []string, opts Options) []Record {
	var records []Record

	for i, line := range output {
		next := ""
		if i+1 < len(output) {
			next = output[i+1]
		}

		if !opts.ErrorsOnly {
			if rec, ok := c.progressRecord(line, next); ok {
				records = append(records, rec)
				continue
			}
		}

		for _, p := range Catalog {
			if !strings.Contains(line, p.Trigger) {
				continue
			}
			records = append(records, c.resolve(p, line, next))
			break
		}
	}

	return records
}

// progressRecord handles the "Verifying <procedure> ..." progress line. The
// verdict is inferred from whether the following output line reports an
// error.
func (c *Correlator) progressRecord(line, next string) (Record, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "Verifying ") {
		return Record{}, false
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 2 {
		return Record{}, false
	}
	proc := fields[1]

	return Record{
		Kind:      KindInfo,
		Procedure: c.artifact.ProcedureMessage(proc),
		Passed:    !strings.Contains(strings.ToLower(next), "error"),
	}, true
}

// resolve builds the located record for a matched pattern: it finds the
// artifact cross-reference on the line the pattern designates, applies the
// pattern's offset, and extracts the source locator and message tags from
// the resulting artifact line. Missing tags degrade to placeholders.
func (c *Correlator) resolve(p Pattern, line, next string) Record {
	ref := line
	if p.Ref == RefNext {
		ref = next
	}

	rec := Record{Kind: p.Kind, File: NoLocation, Message: NoMessage}

	m := artifactRefRe.FindStringSubmatch(ref)
	if m == nil {
		c.logger.Debug("diagnostic without artifact reference", "kind", p.Kind, "line", ref)
		return rec
	}

	refLine, _ := strconv.Atoi(m[2])
	target := refLine + p.Offset

	if loc, ok := c.artifact.SourceLocAt(target); ok {
		rec.File = loc.File
		rec.Line = loc.Line
		rec.Col = loc.Col
	} else {
		c.logger.Debug("no source locator tag on artifact line", "kind", p.Kind, "artifactLine", target)
	}

	if msg, ok := c.artifact.MessageAt(target); ok {
		rec.Message = msg
	}

	return rec
}
