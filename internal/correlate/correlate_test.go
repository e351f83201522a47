package correlate

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticArtifact builds an artifact of filler lines with a fully tagged
// line at tagLine (1-based).
func syntheticArtifact(total, tagLine int) *Artifact {
	lines := make([]string, total)
	for i := range lines {
		lines[i] = "// filler"
	}
	lines[tagLine-1] = `assert {:sourceloc "C.sol", 7, 9} {:message "tagged"} (x);`
	return &Artifact{Path: "C.sol.bpl", Lines: lines}
}

// outputForPattern builds a two-line verifier output matching p, with the
// artifact cross-reference pointing at refLine on the line the pattern
// designates. The other line carries a decoy reference so the test fails if
// the wrong line is consulted.
func outputForPattern(p Pattern, refLine int) []string {
	withRef := fmt.Sprintf("C.sol.bpl(%d,3): Error: %s.", refLine, p.Trigger)
	if p.Ref == RefCurrent {
		return []string{withRef, "Execution trace:"}
	}
	decoy := fmt.Sprintf("C.sol.bpl(%d,3): Error: %s.", refLine+10, p.Trigger)
	related := fmt.Sprintf("C.sol.bpl(%d,3): Related location: the condition of interest.", refLine)
	return []string{decoy, related}
}

func TestPatternOffsets(t *testing.T) {
	logger := hclog.NewNullLogger()
	const refLine = 10

	for _, p := range Catalog {
		t.Run(p.Kind, func(t *testing.T) {
			// Annotation placed exactly offset lines from the
			// cross-referenced line resolves the source locator.
			art := syntheticArtifact(30, refLine+p.Offset)
			records := New(art, logger).Correlate(outputForPattern(p, refLine), Options{ErrorsOnly: true})
			require.Len(t, records, 1)
			assert.Equal(t, p.Kind, records[0].Kind)
			assert.Equal(t, "C.sol", records[0].File)
			assert.Equal(t, 7, records[0].Line)
			assert.Equal(t, 9, records[0].Col)
			assert.Equal(t, "tagged", records[0].Message)

			// Any other placement must not match.
			misplaced := syntheticArtifact(30, refLine+p.Offset+1)
			records = New(misplaced, logger).Correlate(outputForPattern(p, refLine), Options{ErrorsOnly: true})
			require.Len(t, records, 1)
			assert.Equal(t, NoLocation, records[0].File)
			assert.Equal(t, NoMessage, records[0].Message)
		})
	}
}

func TestCorrelateIsIdempotent(t *testing.T) {
	logger := hclog.NewNullLogger()
	art, err := LoadArtifact(filepath.Join("testdata", "SimpleBank.sol.bpl"))
	require.NoError(t, err)

	output := []string{
		"Verifying deposit ...",
		"Verifying withdraw_incorrect ...",
		"SimpleBank.sol.bpl(12,3): Error BP5001: This assertion might not hold.",
		"Boogie program verifier finished with 2 verified, 1 errors",
	}

	c := New(art, logger)
	first := c.Correlate(output, Options{})
	second := c.Correlate(output, Options{})
	assert.Equal(t, first, second)
}

func TestCorrelateSimpleBankScenario(t *testing.T) {
	logger := hclog.NewNullLogger()
	art, err := LoadArtifact(filepath.Join("testdata", "SimpleBank.sol.bpl"))
	require.NoError(t, err)

	output := []string{
		"Verifying deposit ...",
		"Verifying withdraw ...",
		"Verifying withdraw_incorrect ...",
		"SimpleBank.sol.bpl(12,3): Error BP5001: This assertion might not hold.",
		"Execution trace:",
		"    SimpleBank.sol.bpl(11,1): anon0",
		"Boogie program verifier finished with 2 verified, 1 errors",
	}

	records := New(art, logger).Correlate(output, Options{})
	require.Len(t, records, 4)

	assert.Equal(t, KindInfo, records[0].Kind)
	assert.Equal(t, "deposit", records[0].Procedure)
	assert.True(t, records[0].Passed)

	assert.Equal(t, "withdraw", records[1].Procedure)
	assert.True(t, records[1].Passed)

	assert.Equal(t, "withdraw_incorrect", records[2].Procedure)
	assert.False(t, records[2].Passed, "error on the following line marks the procedure failed")

	// The located assertion failure falls inside withdraw_incorrect.
	located := records[3]
	assert.Equal(t, KindAssertion, located.Kind)
	assert.Equal(t, "SimpleBank.sol", located.File)
	assert.Equal(t, 28, located.Line)
	assert.Equal(t, 5, located.Col)
	assert.Equal(t, "Sum of balances equals total deposits", located.Message)
}

func TestCorrelateErrorsOnlySkipsProgress(t *testing.T) {
	logger := hclog.NewNullLogger()
	art, err := LoadArtifact(filepath.Join("testdata", "SimpleBank.sol.bpl"))
	require.NoError(t, err)

	output := []string{
		"Verifying deposit ...",
		"SimpleBank.sol.bpl(12,3): Error BP5001: This assertion might not hold.",
	}

	records := New(art, logger).Correlate(output, Options{ErrorsOnly: true})
	require.Len(t, records, 1)
	assert.Equal(t, KindAssertion, records[0].Kind)
}

func TestCorrelateMissingMessageTagFallback(t *testing.T) {
	logger := hclog.NewNullLogger()
	art, err := LoadArtifact(filepath.Join("testdata", "SimpleBank.sol.bpl"))
	require.NoError(t, err)

	// Artifact line 13 carries a sourceloc tag but no message tag.
	output := []string{
		"SimpleBank.sol.bpl(13,3): Error BP5001: This assertion might not hold.",
	}

	records := New(art, logger).Correlate(output, Options{ErrorsOnly: true})
	require.Len(t, records, 1)
	assert.Equal(t, "SimpleBank.sol", records[0].File)
	assert.Equal(t, 29, records[0].Line)
	assert.Equal(t, NoMessage, records[0].Message)
}

func TestCorrelateNoDeduplication(t *testing.T) {
	logger := hclog.NewNullLogger()
	art, err := LoadArtifact(filepath.Join("testdata", "SimpleBank.sol.bpl"))
	require.NoError(t, err)

	// Two triggers cross-referencing the same artifact line both emit.
	output := []string{
		"SimpleBank.sol.bpl(12,3): Error BP5001: This assertion might not hold.",
		"SimpleBank.sol.bpl(12,3): Error BP5001: This assertion might not hold.",
	}

	records := New(art, logger).Correlate(output, Options{ErrorsOnly: true})
	require.Len(t, records, 2)
	assert.Equal(t, records[0], records[1])
}

func TestSplitOutput(t *testing.T) {
	lines := SplitOutput("one\n\n  \ntwo\r\nthree\n")
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}
