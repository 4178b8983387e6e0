package check

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pincheck-dev/pincheck/pkg/cli/flag"
	"github.com/pincheck-dev/pincheck/pkg/config"
	"github.com/pincheck-dev/pincheck/pkg/controller/check"
	"github.com/pincheck-dev/pincheck/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags, stdout, stderr io.Writer) *cli.Command {
	r := &runner{
		logE:   logE,
		gf:     gf,
		stdout: stdout,
		stderr: stderr,
	}
	return r.Command()
}

type runner struct {
	logE   *logrus.Entry
	gf     *flag.GlobalFlags
	stdout io.Writer
	stderr io.Writer
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check that GitHub Actions are pinned to full commit SHAs",
		Description: `If no argument is passed, pincheck searches GitHub Actions workflow files from .github/workflows.

$ pincheck check

You can also pass workflow file paths as arguments.

e.g.

$ pincheck check .github/workflows/test.yaml .github/workflows/release.yaml

pincheck exits with a non-zero status code if any action isn't pinned.
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "allow",
				Aliases: []string{"a"},
				Usage:   "Action reference to exempt from pin enforcement. The full uses value must match exactly. Can be repeated",
				Sources: cli.EnvVars("PINCHECK_ALLOW"),
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "Output format (text|sarif)",
				Sources: cli.EnvVars("PINCHECK_FORMAT"),
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

	format := c.String("format")
	if format != "" && format != "text" && format != "sarif" {
		return fmt.Errorf("unsupported format: %s", format)
	}

	fs := afero.NewOsFs()
	param := &check.ParamCheck{
		WorkflowFilePaths: c.Args().Slice(),
		ConfigFilePath:    r.gf.Config,
		PWD:               pwd,
		Format:            format,
		AllowedRefs:       c.StringSlice("allow"),
		Stdout:            r.stdout,
		Stderr:            r.stderr,
	}
	ctrl := check.New(fs, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Check(ctx, r.logE) //nolint:wrapcheck
}
