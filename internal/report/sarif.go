package report

import (
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/solverity/solverity/internal/correlate"
)

const toolName = "solverity"
const toolURI = "https://github.com/solverity/solverity"

// WriteSarif exports the located diagnostic records as a SARIF report at
// path. Progress records and records without a resolved location are not
// representable in SARIF and are skipped.
func WriteSarif(path string, records []correlate.Record) error {
	sarifReport, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)

	seenRules := make(map[string]bool)
	for _, rec := range records {
		if rec.Kind == correlate.KindInfo || rec.File == correlate.NoLocation {
			continue
		}

		if !seenRules[rec.Kind] {
			run.AddRule(rec.Kind).WithDescription("Verifier diagnostic: " + rec.Kind)
			seenRules[rec.Kind] = true
		}

		region := sarif.NewSimpleRegion(rec.Line, rec.Line)
		if rec.Col > 0 {
			region.WithStartColumn(rec.Col)
		}

		run.CreateResultForRule(rec.Kind).
			WithLevel("error").
			WithMessage(sarif.NewTextMessage(rec.Message)).
			AddLocation(sarif.NewLocationWithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewSimpleArtifactLocation(rec.File)).
					WithRegion(region)))
	}

	sarifReport.AddRun(run)

	if err := sarifReport.WriteFile(path); err != nil {
		return fmt.Errorf("failed to write SARIF report %q: %w", path, err)
	}
	return nil
}
