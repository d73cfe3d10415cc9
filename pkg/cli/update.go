package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/cli/config"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/geosync/pkg/infra/fetch"
	"github.com/m-mizutani/geosync/pkg/infra/fsync"
	"github.com/m-mizutani/geosync/pkg/infra/source"
	"github.com/m-mizutani/geosync/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdUpdate(paths *config.Paths, download *config.Download, report *config.Report) *cli.Command {
	return &cli.Command{
		Name:    "update",
		Aliases: []string{"u"},
		Usage:   "Download every rule file and copy them into the mihomo-party directories",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			reporters, err := report.Reporters()
			if err != nil {
				return goerr.Wrap(err, "failed to set up reporters")
			}

			artifacts := model.Artifacts()
			downloader := fetch.New(download.Options()...)
			ctxlog.From(ctx).Debug("downloader configured", "strategies", downloader.Strategies())

			uc := usecase.NewUpdate(
				source.New(paths.ConfigFile),
				downloader,
				fsync.New(paths.StagingDir, artifacts),
				usecase.UpdateConfig{
					StagingDir: paths.StagingDir,
					TestDir:    paths.TestDir(),
					WorkDir:    paths.WorkDir(),
				},
				usecase.WithReporters(reporters...),
				usecase.WithArtifacts(artifacts),
			)

			result, err := uc.Run(ctx)
			if result != nil {
				printSummary(c.Root().Writer, result)
			}
			return err
		},
	}
}

func cmdInitConfig(paths *config.Paths) *cli.Command {
	var force bool

	return &cli.Command{
		Name:  "init-config",
		Usage: "Write the source URL config file with the built-in mirror URLs",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "Overwrite an existing config file",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := os.Stat(paths.ConfigFile); err == nil && !force {
				return goerr.New("config file already exists, use --force to overwrite",
					goerr.V("path", paths.ConfigFile))
			}
			return source.New(paths.ConfigFile).CreateDefault(ctx)
		},
	}
}

func printSummary(w io.Writer, result *model.RunResult) {
	if w == nil {
		w = os.Stdout
	}

	ok := color.New(color.FgGreen, color.Bold)
	ng := color.New(color.FgRed, color.Bold)

	for _, a := range result.Artifacts {
		if a.Err != nil {
			_, _ = ng.Fprint(w, "  FAIL ")
			_, _ = fmt.Fprintln(w, a.FileName)
			continue
		}
		_, _ = ok.Fprint(w, "  OK   ")
		_, _ = fmt.Fprintf(w, "%s (%d bytes via %s)\n", a.FileName, a.Bytes, a.Strategy)
	}

	elapsed := result.Duration.Round(time.Millisecond)
	if result.Success {
		_, _ = ok.Fprintf(w, "updated %d directories in %s\n", len(result.Targets), elapsed)
		return
	}

	failed := result.Failed()
	if len(failed) == 0 {
		_, _ = ng.Fprintf(w, "update failed in %s\n", elapsed)
		return
	}
	_, _ = ng.Fprintf(w, "update failed in %s: %s\n", elapsed, strings.Join(failed, ", "))
}
