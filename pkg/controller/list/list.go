package list

import (
	"context"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/pincheck-dev/pincheck/pkg/controller/check"
	"github.com/pincheck-dev/pincheck/pkg/workflow"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// List extracts every action reference from the target workflow files and
// writes one line per reference to stdout.
func (c *Controller) List(_ context.Context, logE *logrus.Entry) error {
	workflowFilePaths, err := c.searchFiles()
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}

	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}

	allowed := c.cfg.AllowSet(c.param.AllowedRefs)
	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		if err := c.listWorkflow(logE, workflowFilePath, tmpl, allowed); err != nil {
			logerr.WithError(logE, err).Error("list actions in a workflow")
		}
	}
	return nil
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) searchFiles() ([]string, error) {
	if len(c.param.WorkflowFilePaths) != 0 {
		return c.param.WorkflowFilePaths, nil
	}
	if c.cfg != nil && len(c.cfg.Files) > 0 {
		return c.searchFilesByGlob()
	}
	files, err := check.ListWorkflows()
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return files, nil
}

func (c *Controller) searchFilesByGlob() ([]string, error) {
	files := []string{}
	configFileDir := filepath.Dir(c.param.ConfigFilePath)
	for _, file := range c.cfg.Files {
		matches, err := filepath.Glob(filepath.Join(configFileDir, file.Pattern))
		if err != nil {
			return nil, fmt.Errorf("search target files: %w", err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func (c *Controller) listWorkflow(logE *logrus.Entry, workflowFilePath string, tmpl *template.Template, allowed map[string]struct{}) error {
	content, err := afero.ReadFile(c.fs, workflowFilePath)
	if err != nil {
		logE.WithError(err).Debug("skip an unreadable workflow file")
		return nil
	}
	doc, err := workflow.Parse(content)
	if err != nil {
		return fmt.Errorf("parse a workflow file: %w", err)
	}

	for _, ref := range workflow.Extract(doc) {
		verdict := check.Classify(ref.Text)
		if _, ok := allowed[ref.Text]; ok {
			verdict = check.VerdictAllowed
		}
		info := &ActionInfo{
			Ref:        ref.Text,
			Verdict:    verdict.String(),
			FilePath:   workflowFilePath,
			FileName:   filepath.Base(workflowFilePath),
			LineNumber: ref.Line,
		}
		if err := c.output(info, tmpl); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) output(info *ActionInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	// Default CSV format: <FilePath>,<LineNumber>,<Ref>,<Verdict>
	fmt.Fprintf(c.stdout, "%s,%d,%s,%s\n", info.FilePath, info.LineNumber, info.Ref, info.Verdict)
	return nil
}
