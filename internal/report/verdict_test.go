package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict(t *testing.T) {
	var tests = []struct {
		name string
		last string
		want Verdict
	}{
		{
			name: "all verified",
			last: "Boogie program verifier finished with 3 verified, 0 errors",
			want: Verdict{Verified: 3, Errors: 0, Pass: true},
		},
		{
			name: "errors found",
			last: "Boogie program verifier finished with 2 verified, 1 errors",
			want: Verdict{Verified: 2, Errors: 1, Pass: false},
		},
		{
			name: "nothing verified",
			last: "Boogie program verifier finished with 0 verified, 0 errors",
			want: Verdict{Verified: 0, Errors: 0, Pass: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVerdict([]string{"Verifying deposit ...", tt.last})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVerdictUnparseableSummary(t *testing.T) {
	var tests = []struct {
		name  string
		lines []string
	}{
		{"no sentinel", []string{"Verifying deposit ...", "something went wrong"}},
		{"empty output", nil},
		{"sentinel not on the final line", []string{
			"Boogie program verifier finished with 3 verified, 0 errors",
			"unexpected trailing output",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVerdict(tt.lines)
			require.Error(t, err)

			var summaryErr *SummaryError
			assert.True(t, errors.As(err, &summaryErr))
		})
	}
}
