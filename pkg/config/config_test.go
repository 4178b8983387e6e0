package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pincheck-dev/pincheck/pkg/config"
	"github.com/spf13/afero"
)

func TestReader_Read(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name           string
		configFilePath string
		content        string
		isErr          bool
		exp            *config.Config
	}{
		{
			name:           "empty path is a no-op",
			configFilePath: "",
			exp:            &config.Config{},
		},
		{
			name:           "valid config",
			configFilePath: ".pincheck.yaml",
			content: `version: 1
files:
  - pattern: ^\.github/workflows/.*\.ya?ml$
allow_actions:
  - actions/checkout@v4
  - my-org/internal-action@main
`,
			exp: &config.Config{
				Version: 1,
				Files: []*config.File{
					{Pattern: `^\.github/workflows/.*\.ya?ml$`},
				},
				AllowActions: []string{
					"actions/checkout@v4",
					"my-org/internal-action@main",
				},
			},
		},
		{
			name:           "invalid YAML",
			configFilePath: ".pincheck.yaml",
			content:        "files: [\n",
			isErr:          true,
		},
		{
			name:           "invalid pattern",
			configFilePath: ".pincheck.yaml",
			content: `files:
  - pattern: "("
`,
			isErr: true,
		},
		{
			name:           "empty pattern",
			configFilePath: ".pincheck.yaml",
			content: `files:
  - pattern: ""
`,
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if d.configFilePath != "" {
				if err := afero.WriteFile(fs, d.configFilePath, []byte(d.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			cfg := &config.Config{}
			err := config.NewReader(fs).Read(cfg, d.configFilePath)
			if d.isErr {
				if err == nil {
					t.Fatal("Read() must return an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, cfg, cmpopts.IgnoreUnexported(config.File{})); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestFinder_Find(t *testing.T) {
	t.Parallel()
	data := []struct {
		name           string
		configFilePath string
		files          []string
		exp            string
	}{
		{
			name:           "explicit path wins",
			configFilePath: "foo/pincheck.yaml",
			files:          []string{".pincheck.yaml"},
			exp:            "foo/pincheck.yaml",
		},
		{
			name:  "find .pincheck.yaml",
			files: []string{".pincheck.yaml"},
			exp:   ".pincheck.yaml",
		},
		{
			name:  "find .github/pincheck.yaml",
			files: []string{".github/pincheck.yaml"},
			exp:   ".github/pincheck.yaml",
		},
		{
			name: "no config",
			exp:  "",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, f := range d.files {
				if err := afero.WriteFile(fs, f, []byte("version: 1\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			p, err := config.NewFinder(fs).Find(d.configFilePath)
			if err != nil {
				t.Fatal(err)
			}
			if p != d.exp {
				t.Errorf("Find() = %q, want %q", p, d.exp)
			}
		})
	}
}

func TestConfig_AllowSet(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{
		AllowActions: []string{"actions/checkout@v4"},
	}
	set := cfg.AllowSet([]string{"owner/repo@main", "actions/checkout@v4"})
	if len(set) != 2 {
		t.Errorf("AllowSet() size = %d, want 2", len(set))
	}
	if _, ok := set["actions/checkout@v4"]; !ok {
		t.Error("AllowSet() must contain actions/checkout@v4")
	}
	if _, ok := set["owner/repo@main"]; !ok {
		t.Error("AllowSet() must contain owner/repo@main")
	}
}

func TestFile_Match(t *testing.T) {
	t.Parallel()
	f := &config.File{Pattern: `^\.github/workflows/.*\.ya?ml$`}
	if err := f.Init(); err != nil {
		t.Fatal(err)
	}
	if !f.Match(".github/workflows/ci.yml") {
		t.Error("Match() must match a workflow file")
	}
	if f.Match("README.md") {
		t.Error("Match() must not match README.md")
	}
}
