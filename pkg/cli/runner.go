// Package cli wires the command line interface of pincheck.
package cli

import (
	"context"
	"io"

	checkcli "github.com/pincheck-dev/pincheck/pkg/cli/check"
	"github.com/pincheck-dev/pincheck/pkg/cli/flag"
	initcli "github.com/pincheck-dev/pincheck/pkg/cli/initcmd"
	listcli "github.com/pincheck-dev/pincheck/pkg/cli/list"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/urfave-cli-v3-help-all/helpall"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	gf := &flag.GlobalFlags{}
	cmd := helpall.With(&cli.Command{
		Name:                  "pincheck",
		Usage:                 "Check that GitHub Actions are pinned to full commit SHAs. https://github.com/pincheck-dev/pincheck",
		Version:               r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags:                 gf.Flags(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			checkcli.New(r.LogE, gf, r.Stdout, r.Stderr),
			listcli.New(r.LogE, gf, r.Stdout),
			initcli.New(r.LogE, gf),
			newVersionCommand(),
		},
	}, nil)

	return cmd.Run(ctx, args) //nolint:wrapcheck
}

func newVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show the pincheck version",
		Action: func(_ context.Context, c *cli.Command) error {
			cli.ShowVersion(c)
			return nil
		},
	}
}
