package check

import (
	"regexp"
	"strings"
)

// Verdict is the classification of one action reference.
type Verdict int

const (
	// VerdictPinned means the reference is pinned to a full commit SHA.
	VerdictPinned Verdict = iota
	// VerdictInvalidPin means a ref is present but it's a mutable tag or
	// branch, not a full commit SHA.
	VerdictInvalidPin
	// VerdictMissing means the reference has no "@" and so no ref at all.
	VerdictMissing
	// VerdictAllowed means the reference matched the allow list and
	// classification was skipped.
	VerdictAllowed
)

func (v Verdict) String() string {
	switch v {
	case VerdictPinned:
		return "pinned"
	case VerdictInvalidPin:
		return "invalid_pin"
	case VerdictMissing:
		return "missing"
	case VerdictAllowed:
		return "allowed"
	}
	return "unknown"
}

var fullCommitSHAPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// Classify judges whether an action reference is pinned to a full commit SHA.
// The ref is the text after the last "@". A trailing comment such as
// " # v4" and trailing whitespace aren't part of the ref. The ref must be
// exactly 40 lowercase hex characters; anything else with an "@" is an
// invalid pin, and 7-character abbreviated SHAs are rejected the same way.
// Classify is a pure function and never fails.
func Classify(ref string) Verdict {
	body := ref
	if i := strings.Index(body, "#"); i >= 0 {
		body = body[:i]
	}
	body = strings.TrimRight(body, " \t")
	i := strings.LastIndex(body, "@")
	if i < 0 {
		return VerdictMissing
	}
	if fullCommitSHAPattern.MatchString(body[i+1:]) {
		return VerdictPinned
	}
	return VerdictInvalidPin
}
