package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/cli/config"
	"github.com/m-mizutani/geosync/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg   config.Logger
		pathsCfg    config.Paths
		downloadCfg config.Download
		reportCfg   config.Report
		logger      *slog.Logger
	)
	defer func() { _ = loggerCfg.Close() }()

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, pathsCfg.Flags()...)
	flags = append(flags, downloadCfg.Flags()...)
	flags = append(flags, reportCfg.Flags()...)

	update := cmdUpdate(&pathsCfg, &downloadCfg, &reportCfg)

	app := &cli.Command{
		Name:    types.AppName,
		Usage:   "Refresh mihomo-party geo rule files from mirror URLs",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := pathsCfg.Resolve(); err != nil {
				return nil, err
			}
			if loggerCfg.Dir == "" {
				loggerCfg.Dir = pathsCfg.LogDir()
			}

			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: update.Action,
		Commands: []*cli.Command{
			update,
			cmdInitConfig(&pathsCfg),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
