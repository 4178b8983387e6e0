package list

// ActionInfo contains information about one action reference extracted from
// a workflow file. It is used for template rendering.
type ActionInfo struct {
	Ref        string // Full reference, e.g. owner/repo@ref
	Verdict    string // pinned, invalid_pin, missing, or allowed
	FilePath   string // Full path to the workflow file
	FileName   string // Base name of the workflow file
	LineNumber int    // Line number in the file
}
