// Package check implements the core checking logic of pincheck.
// It parses GitHub Actions workflow files into a node tree, extracts every
// action reference under jobs.*.steps[].uses, classifies each reference as
// pinned to a full commit SHA, unpinned, or allow-listed, and aggregates the
// verdicts into a deterministic report. The package never touches the
// network and never modifies files; it only reads the candidate files
// through the injected filesystem.
package check

import (
	"io"

	"github.com/pincheck-dev/pincheck/pkg/config"
	"github.com/spf13/afero"
)

type Controller struct {
	fs        afero.Fs
	cfg       *config.Config
	param     *ParamCheck
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	logger    *Logger
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type ParamCheck struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	PWD               string
	Format            string
	AllowedRefs       []string
	Stdout            io.Writer
	Stderr            io.Writer
}

func New(fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamCheck) *Controller {
	return &Controller{
		fs:        fs,
		cfg:       &config.Config{},
		param:     param,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		logger:    NewLogger(param.Stderr),
	}
}
