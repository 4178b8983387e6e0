package check

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// searchFiles builds the ordered candidate file list. Positional arguments
// win over config file patterns, which win over the default workflow globs.
func (c *Controller) searchFiles(logE *logrus.Entry) ([]string, error) {
	if len(c.param.WorkflowFilePaths) != 0 {
		return c.param.WorkflowFilePaths, nil
	}
	if c.cfg != nil && len(c.cfg.Files) > 0 {
		return c.searchFilesByConfig(logE)
	}
	return ListWorkflows()
}

func (c *Controller) searchFilesByConfig(logE *logrus.Entry) ([]string, error) {
	files := []string{}
	if err := fs.WalkDir(afero.NewIOFS(c.fs), c.param.PWD, func(p string, dirEntry fs.DirEntry, e error) error {
		if e != nil {
			return nil //nolint:nilerr
		}
		if dirEntry.IsDir() {
			return nil
		}
		filePath, err := filepath.Rel(c.param.PWD, p)
		if err != nil {
			logE.WithFields(logrus.Fields{
				"pwd":  c.param.PWD,
				"path": p,
			}).WithError(err).Debug("get a relative path")
			return nil
		}
		for _, file := range c.cfg.Files {
			if file.Match(filePath) {
				files = append(files, filePath)
				break
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk the current directory: %w", err)
	}
	return files, nil
}

// ListWorkflows returns workflow and composite action files found with the
// default glob patterns.
func ListWorkflows() ([]string, error) {
	patterns := []string{
		".github/workflows/*.yml",
		".github/workflows/*.yaml",
		"action.yml",
		"action.yaml",
		"*/action.yml",
		"*/action.yaml",
		"*/*/action.yml",
		"*/*/action.yaml",
		"*/*/*/action.yml",
		"*/*/*/action.yaml",
	}
	files := []string{}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("look for workflow or composite action files using glob %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}
