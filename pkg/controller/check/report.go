package check

import (
	"github.com/pincheck-dev/pincheck/pkg/workflow"
	"github.com/spf13/afero"
)

// Diagnostic is one reported entry for an action reference.
// Failure verdicts (invalid pin, missing ref) and allow-list echoes are
// recorded; pinned references produce no diagnostic.
type Diagnostic struct {
	File    string
	Line    int
	Verdict Verdict
	Ref     string
}

// Message returns the human-readable wording for the diagnostic.
// The two failure kinds get different wording because they call for
// different fixes.
func (d *Diagnostic) Message() string {
	switch d.Verdict {
	case VerdictInvalidPin:
		return "action isn't pinned to a full length commit SHA:"
	case VerdictMissing:
		return "action reference has no ref:"
	case VerdictAllowed:
		return "action is exempted by the allow list:"
	case VerdictPinned:
	}
	return ""
}

// Report aggregates diagnostics across all checked files.
// Failed is true iff at least one diagnostic is a failure kind. Diagnostics
// appear in candidate file order, and within a file in extraction order, so
// identical input always yields an identical report.
type Report struct {
	Diagnostics []*Diagnostic
	Failed      bool
}

// Builder accumulates per-file verdicts into a Report.
type Builder struct {
	fs      afero.Fs
	allowed map[string]struct{}
	report  *Report
}

func NewBuilder(fs afero.Fs, allowed map[string]struct{}) *Builder {
	if allowed == nil {
		allowed = map[string]struct{}{}
	}
	return &Builder{
		fs:      fs,
		allowed: allowed,
		report:  &Report{},
	}
}

// AddFile parses one candidate file's content and appends the diagnostics of
// every action reference found in it. Text and line are extracted together
// in one traversal, so they can't fall out of step. A *workflow.ParseError
// is returned as is; whether to abort the run or skip the file is the
// caller's policy, and nothing is recorded for the file in that case.
func (b *Builder) AddFile(path string, content []byte) error {
	doc, err := workflow.Parse(content)
	if err != nil {
		return err
	}
	for _, ref := range workflow.Extract(doc) {
		b.add(path, ref)
	}
	return nil
}

// add applies the local-action filter, the allow-list filter, and then the
// classifier to one reference. An allowed reference is never additionally
// classified, so it can't be reported as a failure even if its ref would
// fail.
func (b *Builder) add(path string, ref *workflow.ActionReference) {
	if b.isLocalAction(ref.Text) {
		return
	}
	if _, ok := b.allowed[ref.Text]; ok {
		b.report.Diagnostics = append(b.report.Diagnostics, &Diagnostic{
			File:    path,
			Line:    ref.Line,
			Verdict: VerdictAllowed,
			Ref:     ref.Text,
		})
		return
	}
	verdict := Classify(ref.Text)
	if verdict == VerdictPinned {
		return
	}
	b.report.Diagnostics = append(b.report.Diagnostics, &Diagnostic{
		File:    path,
		Line:    ref.Line,
		Verdict: verdict,
		Ref:     ref.Text,
	})
	b.report.Failed = true
}

// isLocalAction returns true if the reference points at a local action
// directory such as "./.github/actions/foo". Local actions live in the
// repository itself and have no ref to pin.
func (b *Builder) isLocalAction(ref string) bool {
	ok, err := afero.DirExists(b.fs, ref)
	return err == nil && ok
}

// Report returns the aggregated report.
func (b *Builder) Report() *Report {
	return b.report
}
