package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverity/solverity/internal/correlate"
)

func sampleRecords() []correlate.Record {
	return []correlate.Record{
		{Kind: correlate.KindInfo, Procedure: "deposit", Passed: true},
		{Kind: correlate.KindInfo, Procedure: "withdraw_incorrect", Passed: false},
		{
			Kind:    correlate.KindAssertion,
			File:    "SimpleBank.sol",
			Line:    28,
			Col:     5,
			Message: "Sum of balances equals total deposits",
		},
	}
}

func TestPrintRecordsOrderingAndFormat(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.PrintRecords(sampleRecords())
	p.PrintVerdict(Verdict{Verified: 2, Errors: 1})

	want := "Verifying deposit: OK\n" +
		"Verifying withdraw_incorrect: ERROR\n" +
		" - Source SimpleBank.sol, line 28, col 5: Sum of balances equals total deposits\n" +
		"Errors were found by the verifier.\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintRecordsErrorsOnlyDropsBullet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.PrintRecords([]correlate.Record{{
		Kind:    correlate.KindAssertion,
		File:    "SimpleBank.sol",
		Line:    28,
		Col:     5,
		Message: "Sum of balances equals total deposits",
	}})

	assert.Equal(t, "Source SimpleBank.sol, line 28, col 5: Sum of balances equals total deposits\n", buf.String())
}

func TestPrintVerdictPass(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintVerdict(Verdict{Verified: 3, Pass: true})
	assert.Equal(t, "No errors found.\n", buf.String())
}

func TestWriteSarif(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.sarif")
	require.NoError(t, WriteSarif(path, sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Progress records are skipped; only the located diagnostic remains.
	assert.Contains(t, string(data), "SimpleBank.sol")
	assert.Contains(t, string(data), correlate.KindAssertion)
	assert.NotContains(t, string(data), "withdraw_incorrect")
}
