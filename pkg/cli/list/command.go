package list

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pincheck-dev/pincheck/pkg/cli/flag"
	"github.com/pincheck-dev/pincheck/pkg/config"
	"github.com/pincheck-dev/pincheck/pkg/controller/list"
	"github.com/pincheck-dev/pincheck/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags, stdout io.Writer) *cli.Command {
	r := &runner{
		logE:   logE,
		gf:     gf,
		stdout: stdout,
	}
	return r.Command()
}

type runner struct {
	logE   *logrus.Entry
	gf     *flag.GlobalFlags
	stdout io.Writer
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List action references and their verdicts",
		Description: `Output one line per action reference found in the target workflow files.

$ pincheck list

By default each line is

<file path>,<line number>,<reference>,<verdict>

The format can be changed with a Go template.

e.g.

$ pincheck list -template "{{.FilePath}}:{{.LineNumber}} {{.Ref}}"
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Go template for each output line",
			},
			&cli.StringSliceFlag{
				Name:    "allow",
				Aliases: []string{"a"},
				Usage:   "Action reference to exempt from pin enforcement. The full uses value must match exactly. Can be repeated",
				Sources: cli.EnvVars("PINCHECK_ALLOW"),
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(r.gf.LogLevel, r.logE)
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}

	fs := afero.NewOsFs()
	cfg := &config.Config{}
	cfgFinder := config.NewFinder(fs)
	configFilePath, err := cfgFinder.Find(r.gf.Config)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	if err := config.NewReader(fs).Read(cfg, configFilePath); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}

	param := &list.Param{
		WorkflowFilePaths: c.Args().Slice(),
		ConfigFilePath:    configFilePath,
		PWD:               pwd,
		LineTemplate:      c.String("template"),
		AllowedRefs:       c.StringSlice("allow"),
	}
	ctrl := list.New(fs, cfg, param, r.stdout)
	return ctrl.List(ctx, r.logE) //nolint:wrapcheck
}
