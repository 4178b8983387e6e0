package check

import (
	"encoding/json"
	"fmt"

	"github.com/pincheck-dev/pincheck/pkg/sarif"
)

const (
	ruleUnpinnedAction = "unpinned-action"
	ruleMissingRef     = "missing-ref"
	ruleAllowedAction  = "allowed-action"
	ruleParseError     = "parse-error"
)

// outputSARIF writes the report in SARIF format to stdout.
func (c *Controller) outputSARIF(report *Report, parseFindings []*Finding) error {
	log := sarif.Log{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "pincheck",
						InformationURI: "https://github.com/pincheck-dev/pincheck",
						Rules: []sarif.Rule{
							{
								ID: ruleUnpinnedAction,
								ShortDescription: sarif.Message{
									Text: "GitHub Action is pinned to a mutable tag or branch instead of a commit SHA",
								},
							},
							{
								ID: ruleMissingRef,
								ShortDescription: sarif.Message{
									Text: "GitHub Action reference has no ref",
								},
							},
							{
								ID: ruleAllowedAction,
								ShortDescription: sarif.Message{
									Text: "GitHub Action is exempted by the allow list",
								},
							},
							{
								ID: ruleParseError,
								ShortDescription: sarif.Message{
									Text: "Failed to parse a workflow file",
								},
							},
						},
					},
				},
				Results: buildSARIFResults(report, parseFindings),
			},
		},
	}

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func buildSARIFResults(report *Report, parseFindings []*Finding) []sarif.Result {
	findings := make([]*Finding, 0, len(report.Diagnostics)+len(parseFindings))
	for _, diag := range report.Diagnostics {
		findings = append(findings, &Finding{
			File:    diag.File,
			Line:    diag.Line,
			Ref:     diag.Ref,
			Verdict: diag.Verdict,
			Message: diag.Message() + " " + diag.Ref,
		})
	}
	findings = append(findings, parseFindings...)

	results := make([]sarif.Result, 0, len(findings))
	for _, f := range findings {
		var ruleID, level string
		switch {
		case f.Ref == "":
			// A finding without a reference is a parse error.
			ruleID, level = ruleParseError, "error"
		case f.Verdict == VerdictInvalidPin:
			ruleID, level = ruleUnpinnedAction, "warning"
		case f.Verdict == VerdictMissing:
			ruleID, level = ruleMissingRef, "warning"
		case f.Verdict == VerdictAllowed:
			ruleID, level = ruleAllowedAction, "note"
		default:
			continue
		}
		results = append(results, sarif.Result{
			RuleID:  ruleID,
			Level:   level,
			Message: sarif.Message{Text: f.Message},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{
							URI: f.File,
						},
						Region: sarif.Region{
							StartLine: f.Line,
						},
					},
				},
			},
		})
	}
	return results
}
