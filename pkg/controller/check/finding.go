package check

// Finding is one entry rendered to SARIF output. Message is set only for
// parse errors; reference findings derive their message from the verdict.
type Finding struct {
	File    string
	Line    int
	Ref     string
	Verdict Verdict
	Message string
}
