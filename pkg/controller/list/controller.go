// Package list implements the 'pincheck list' command.
// It prints every action reference found in the target workflow files
// together with its verdict, for custom tooling and quick inspection.
package list

import (
	"io"

	"github.com/pincheck-dev/pincheck/pkg/config"
	"github.com/spf13/afero"
)

// Controller handles the list command operations.
type Controller struct {
	fs     afero.Fs
	cfg    *config.Config
	param  *Param
	stdout io.Writer
}

// Param contains parameters for the list command.
type Param struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	PWD               string
	LineTemplate      string
	AllowedRefs       []string
}

// New creates a new Controller for running list operations.
func New(fs afero.Fs, cfg *config.Config, param *Param, stdout io.Writer) *Controller {
	return &Controller{
		fs:     fs,
		cfg:    cfg,
		param:  param,
		stdout: stdout,
	}
}
