// Package initcmd implements the 'pincheck init' command.
// It generates a .pincheck.yaml configuration template so users can set up
// pincheck quickly.
package initcmd

import (
	"context"

	"github.com/pincheck-dev/pincheck/pkg/cli/flag"
	"github.com/pincheck-dev/pincheck/pkg/controller/initcmd"
	"github.com/pincheck-dev/pincheck/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE: logE,
		gf:   gf,
	}
	return r.Command()
}

type runner struct {
	logE *logrus.Entry
	gf   *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .pincheck.yaml if it doesn't exist",
		Description: `Create .pincheck.yaml if it doesn't exist

$ pincheck init

You can also pass a configuration file path.

e.g.

$ pincheck init .github/pincheck.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(r.gf.LogLevel, r.logE)
	ctrl := initcmd.New(afero.NewOsFs())
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.gf.Config
	}
	if configFilePath == "" {
		configFilePath = ".pincheck.yaml"
	}
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
