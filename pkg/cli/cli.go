package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		closeLog  = func() {}
	)

	app := &cli.Command{
		Name:    "embiscope",
		Usage:   "EMBI LATAM country risk dashboard",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			closeLog = closer

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			closeLog()
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdImport(),
			cmdNotify(),
			cmdView(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
