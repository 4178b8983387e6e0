package workflow

// ActionReference is one `uses` entry found in a workflow file.
// Text is the raw scalar value, e.g. "actions/checkout@v4".
type ActionReference struct {
	Text string
	Line int
}

// Extract returns every action reference together with the line where it
// appears. Workflow files keep steps under jobs.<job name>.steps[].uses,
// composite action files under a top-level runs.steps[].uses. When a runs
// key is present it wins over jobs. Jobs are visited in document order and
// steps in sequence order, so the result order is stable for identical
// content.
// Workflow files are heterogeneous, so a missing or malformed jobs, runs, or
// steps node contributes zero references instead of failing.
func Extract(doc *Document) []*ActionReference {
	body, ok := doc.Body.(*Mapping)
	if !ok {
		return nil
	}
	if runs, ok := body.Get("runs").(*Mapping); ok {
		return extractSteps(nil, runs)
	}
	jobs, ok := body.Get("jobs").(*Mapping)
	if !ok {
		return nil
	}
	var refs []*ActionReference
	for _, job := range jobs.Entries {
		jobValue, ok := job.Value.(*Mapping)
		if !ok {
			continue
		}
		refs = extractSteps(refs, jobValue)
	}
	return refs
}

func extractSteps(refs []*ActionReference, m *Mapping) []*ActionReference {
	steps, ok := m.Get("steps").(*Sequence)
	if !ok {
		return refs
	}
	for _, step := range steps.Items {
		stepValue, ok := step.(*Mapping)
		if !ok {
			continue
		}
		uses, ok := stepValue.Get("uses").(*Scalar)
		if !ok || uses.Null {
			continue
		}
		refs = append(refs, &ActionReference{Text: uses.Value, Line: uses.Line})
	}
	return refs
}
