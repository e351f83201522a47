package correlate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/solverity/solverity/pkg/shared/files"
)

// Placeholder values used when an annotation tag is absent from the
// referenced artifact line. Missing tags degrade the record, never the run.
const (
	NoLocation = "[Location unavailable]"
	NoMessage  = "[No message found for error]"
)

// ArtifactError reports that the annotated artifact could not be read. Every
// cross-referenced diagnostic needs the artifact, so this is fatal.
type ArtifactError struct {
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("cannot read annotated artifact %q: %v", e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }

// SourceLoc is an original source position embedded in an artifact line.
type SourceLoc struct {
	File string
	Line int
	Col  int
}

// Annotation tag syntax emitted by the contract compiler into the artifact.
var (
	sourceLocRe = regexp.MustCompile(`\{:sourceloc "([^"]+)", (\d+), (\d+)\}`)
	messageRe   = regexp.MustCompile(`\{:message "([^"]*)"\}`)
)

// Artifact is the annotated Boogie file produced by the contract compiler,
// read once per run and immutable afterwards.
type Artifact struct {
	Path  string
	Lines []string
}

// LoadArtifact reads the artifact at path.
func LoadArtifact(path string) (*Artifact, error) {
	lines, err := files.ReadFileLines(path)
	if err != nil {
		return nil, &ArtifactError{Path: path, Err: err}
	}
	return &Artifact{Path: path, Lines: lines}, nil
}

// line returns the 1-based artifact line, or "" when out of range.
func (a *Artifact) line(n int) string {
	if n < 1 || n > len(a.Lines) {
		return ""
	}
	return a.Lines[n-1]
}

// SourceLocAt extracts the source locator tag from the 1-based artifact line.
func (a *Artifact) SourceLocAt(n int) (SourceLoc, bool) {
	m := sourceLocRe.FindStringSubmatch(a.line(n))
	if m == nil {
		return SourceLoc{}, false
	}
	line, _ := strconv.Atoi(m[2])
	col, _ := strconv.Atoi(m[3])
	return SourceLoc{File: m[1], Line: line, Col: col}, true
}

// MessageAt extracts the message tag from the 1-based artifact line.
func (a *Artifact) MessageAt(n int) (string, bool) {
	m := messageRe.FindStringSubmatch(a.line(n))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ProcedureMessage resolves the human-readable name of a Boogie procedure by
// locating its declaration line and extracting its message tag. The raw
// procedure name is returned when no declaration or tag is found.
func (a *Artifact) ProcedureMessage(proc string) string {
	for n := 1; n <= len(a.Lines); n++ {
		line := a.line(n)
		if !strings.Contains(line, "procedure") && !strings.Contains(line, "implementation") {
			continue
		}
		if !strings.Contains(line, proc+"(") {
			continue
		}
		if msg, ok := a.MessageAt(n); ok {
			return msg
		}
		return proc
	}
	return proc
}
