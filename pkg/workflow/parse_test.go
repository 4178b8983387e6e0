package workflow_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pincheck-dev/pincheck/pkg/workflow"
)

func TestParse(t *testing.T) {
	t.Parallel()
	doc, err := workflow.Parse([]byte(`name: test
jobs:
  build:
    runs-on: ubuntu-latest
`))
	if err != nil {
		t.Fatal(err)
	}
	body, ok := doc.Body.(*workflow.Mapping)
	if !ok {
		t.Fatalf("doc.Body = %T, want *workflow.Mapping", doc.Body)
	}
	name, ok := body.Get("name").(*workflow.Scalar)
	if !ok {
		t.Fatalf(`body.Get("name") = %T, want *workflow.Scalar`, body.Get("name"))
	}
	if name.Value != "test" {
		t.Errorf("name.Value = %q, want %q", name.Value, "test")
	}
	if name.Line != 1 {
		t.Errorf("name.Line = %d, want 1", name.Line)
	}
	jobs, ok := body.Get("jobs").(*workflow.Mapping)
	if !ok {
		t.Fatalf(`body.Get("jobs") = %T, want *workflow.Mapping`, body.Get("jobs"))
	}
	runsOn, ok := jobs.Entries[0].Value.(*workflow.Mapping).Get("runs-on").(*workflow.Scalar)
	if !ok {
		t.Fatal("runs-on isn't a scalar")
	}
	if runsOn.Line != 4 {
		t.Errorf("runsOn.Line = %d, want 4", runsOn.Line)
	}
}

func TestParse_error(t *testing.T) {
	t.Parallel()
	_, err := workflow.Parse([]byte("jobs: [\n"))
	if err == nil {
		t.Fatal("Parse() must return an error for malformed YAML")
	}
	parseErr := &workflow.ParseError{}
	if !errors.As(err, &parseErr) {
		t.Errorf("Parse() error = %T, want *workflow.ParseError", err)
	}
}

func TestParse_empty(t *testing.T) {
	t.Parallel()
	doc, err := workflow.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if refs := workflow.Extract(doc); len(refs) != 0 {
		t.Errorf("Extract() = %v, want no references", refs)
	}
}

func TestExtract(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		content string
		exp     []*workflow.ActionReference
	}{
		{
			name: "jobs and steps in document order",
			content: `jobs:
  test:
    steps:
      - uses: actions/checkout@v4
        with:
          persist-credentials: false
      - run: echo hello
      - uses: actions/setup-go@0a12ed9d6a96ab950c8f026ed9f722fe0da7ef32
  release:
    steps:
      - uses: actions/checkout@v4
`,
			exp: []*workflow.ActionReference{
				{Text: "actions/checkout@v4", Line: 4},
				{Text: "actions/setup-go@0a12ed9d6a96ab950c8f026ed9f722fe0da7ef32", Line: 8},
				{Text: "actions/checkout@v4", Line: 11},
			},
		},
		{
			name: "job without steps",
			content: `jobs:
  call:
    uses: org/repo/.github/workflows/reusable.yml@v1
  test:
    steps:
      - uses: actions/checkout@v4
`,
			exp: []*workflow.ActionReference{
				{Text: "actions/checkout@v4", Line: 6},
			},
		},
		{
			name: "steps isn't a sequence",
			content: `jobs:
  test:
    steps: broken
`,
			exp: nil,
		},
		{
			name: "null uses",
			content: `jobs:
  test:
    steps:
      - uses:
      - uses: actions/checkout@v4
`,
			exp: []*workflow.ActionReference{
				{Text: "actions/checkout@v4", Line: 5},
			},
		},
		{
			name: "composite action steps",
			content: `name: my action
runs:
  using: composite
  steps:
    - uses: actions/checkout@v4
    - run: echo hello
      shell: bash
    - uses: actions/setup-go@0a12ed9d6a96ab950c8f026ed9f722fe0da7ef32
`,
			exp: []*workflow.ActionReference{
				{Text: "actions/checkout@v4", Line: 5},
				{Text: "actions/setup-go@0a12ed9d6a96ab950c8f026ed9f722fe0da7ef32", Line: 8},
			},
		},
		{
			name: "composite action without steps",
			content: `runs:
  using: node20
  main: dist/index.js
`,
			exp: nil,
		},
		{
			name: "runs wins over jobs",
			content: `runs:
  steps:
    - uses: actions/checkout@v4
jobs:
  test:
    steps:
      - uses: actions/cache@v3
`,
			exp: []*workflow.ActionReference{
				{Text: "actions/checkout@v4", Line: 3},
			},
		},
		{
			name:    "no jobs",
			content: "name: test\n",
			exp:     nil,
		},
		{
			name:    "jobs isn't a mapping",
			content: "jobs: []\n",
			exp:     nil,
		},
		{
			name:    "document isn't a mapping",
			content: "- a\n- b\n",
			exp:     nil,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			doc, err := workflow.Parse([]byte(d.content))
			if err != nil {
				t.Fatal(err)
			}
			refs := workflow.Extract(doc)
			if diff := cmp.Diff(d.exp, refs); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestExtract_deterministic(t *testing.T) {
	t.Parallel()
	content := []byte(`jobs:
  a:
    steps:
      - uses: actions/checkout@v4
  b:
    steps:
      - uses: actions/cache@v3
      - uses: actions/setup-go@v5
`)
	doc1, err := workflow.Parse(content)
	if err != nil {
		t.Fatal(err)
	}
	doc2, err := workflow.Parse(content)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(workflow.Extract(doc1), workflow.Extract(doc2)); diff != "" {
		t.Fatal(diff)
	}
}
