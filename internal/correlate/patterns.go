package correlate

import "regexp"

// Record kinds produced by the correlator.
const (
	KindAssertion           = "assertion"
	KindPostcondition       = "postcondition"
	KindPrecondition        = "precondition"
	KindInvariantEntry      = "invariant-entry"
	KindInvariantMaintained = "invariant-maintained"
	KindInconclusive        = "inconclusive"
	KindInfo                = "info"
)

// RefLine selects which verifier output line carries the artifact locator.
type RefLine int

const (
	RefCurrent RefLine = iota
	RefNext
)

// Pattern binds a verifier phrase trigger to the rule for locating the
// relevant annotated artifact line: which output line carries the artifact
// cross-reference, and the offset applied to the referenced line number
// before indexing into the artifact. The verifier's reported line is
// sometimes one line removed from the line carrying the annotation.
type Pattern struct {
	Kind    string
	Trigger string
	Ref     RefLine
	Offset  int
}

// Catalog lists the recognized diagnostic patterns in match priority order.
// The first trigger contained in an output line wins; at most one pattern
// fires per line.
var Catalog = []Pattern{
	{Kind: KindAssertion, Trigger: "assertion might not hold", Ref: RefCurrent, Offset: 0},
	{Kind: KindPostcondition, Trigger: "postcondition might not hold", Ref: RefNext, Offset: 0},
	{Kind: KindPrecondition, Trigger: "precondition for this call might not hold", Ref: RefNext, Offset: 0},
	{Kind: KindInvariantEntry, Trigger: "loop invariant might not hold on entry", Ref: RefCurrent, Offset: -1},
	{Kind: KindInvariantMaintained, Trigger: "loop invariant might not be maintained", Ref: RefCurrent, Offset: -1},
	{Kind: KindInconclusive, Trigger: "Verification inconclusive", Ref: RefCurrent, Offset: 1},
}

// artifactRefRe matches the "<artifact>.bpl(line,col)" locator the verifier
// embeds in its output. This is the verifier's own cross-reference into the
// artifact, distinct from the compiler's sourceloc tags inside the artifact.
var artifactRefRe = regexp.MustCompile(`([^\s(]+\.bpl)\((\d+),(\d+)\)`)
