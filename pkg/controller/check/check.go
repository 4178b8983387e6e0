package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/pincheck-dev/pincheck/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// ErrActionsNotPinned is returned when at least one action isn't pinned to a
// full commit SHA. main maps it to a non-zero exit status without logging a
// stack of wrapped errors.
var ErrActionsNotPinned = errors.New("actions aren't pinned")

var errWorkflowsNotParsed = errors.New("some workflow files can't be parsed")

const formatSARIF = "sarif"

// Check scans the candidate workflow files and reports every action
// reference that isn't pinned to a full commit SHA. All violations are
// reported, not just the first one.
func (c *Controller) Check(_ context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	workflowFilePaths, err := c.searchFiles(logE)
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}

	builder := NewBuilder(c.fs, c.cfg.AllowSet(c.param.AllowedRefs))
	parseFailed := false
	parseFindings := []*Finding{}
	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		content, err := afero.ReadFile(c.fs, workflowFilePath)
		if err != nil {
			// A candidate that can't be read anymore, e.g. a file deleted
			// after the candidate list was built, contributes nothing.
			logE.WithError(err).Debug("skip an unreadable workflow file")
			continue
		}
		if err := builder.AddFile(workflowFilePath, content); err != nil {
			parseFailed = true
			logerr.WithError(logE, err).Error("parse a workflow file")
			parseFindings = append(parseFindings, &Finding{
				File:    workflowFilePath,
				Line:    1,
				Message: err.Error(),
			})
		}
	}

	report := builder.Report()
	if err := c.output(report, parseFindings); err != nil {
		return err
	}
	if report.Failed {
		return ErrActionsNotPinned
	}
	if parseFailed {
		return errWorkflowsNotParsed
	}
	return nil
}

func (c *Controller) output(report *Report, parseFindings []*Finding) error {
	if c.param.Format == formatSARIF {
		return c.outputSARIF(report, parseFindings)
	}
	for _, diag := range report.Diagnostics {
		c.logger.Output(diag)
	}
	return nil
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}
	c.cfg = cfg
	return nil
}
