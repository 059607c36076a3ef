package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/cli/config"
	termctrl "github.com/secmon-lab/embiscope/pkg/controller/term"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/usecase"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func cmdView() *cli.Command {
	var (
		clientCfg      config.Client
		outputDir      string
		defaultCountry string
		defaultDelay   time.Duration
	)

	flags := joinFlags(
		clientCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output-dir",
				Usage:       "Directory for the map preview, downloads and charts",
				Value:       ".",
				Sources:     cli.EnvVars("EMBISCOPE_OUTPUT_DIR"),
				Destination: &outputDir,
			},
			&cli.StringFlag{
				Name:        "default-country",
				Usage:       "Country whose history is shown on start (empty to disable)",
				Value:       string(usecase.DefaultCountry),
				Sources:     cli.EnvVars("EMBISCOPE_DEFAULT_COUNTRY"),
				Destination: &defaultCountry,
			},
			&cli.DurationFlag{
				Name:        "default-country-delay",
				Usage:       "Delay before the default country is selected",
				Value:       usecase.DefaultCountryDelay,
				Destination: &defaultDelay,
			},
		},
	)

	return &cli.Command{
		Name:  "view",
		Usage: "Browse the EMBI dashboard from the terminal",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctxlog.From(ctx).Debug("Starting viewer",
				slog.Any("client", clientCfg),
				slog.String("output_dir", outputDir),
			)

			client, err := clientCfg.Configure()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outputDir))
			}

			opts := []termctrl.Option{
				termctrl.WithOutputDir(outputDir),
				termctrl.WithDefaultCountry(types.Country(defaultCountry), defaultDelay),
			}

			fd := int(os.Stdin.Fd())
			if !term.IsTerminal(fd) {
				viewer := termctrl.NewViewer(client, os.Stdout, opts...)
				return viewer.Run(ctx, termctrl.NewLineReader(os.Stdin))
			}

			state, err := term.MakeRaw(fd)
			if err != nil {
				return goerr.Wrap(err, "failed to enter raw mode")
			}
			defer func() { _ = term.Restore(fd, state) }()

			screen := term.NewTerminal(struct {
				io.Reader
				io.Writer
			}{os.Stdin, os.Stdout}, "embi> ")

			viewer := termctrl.NewViewer(client, screen, opts...)
			return viewer.Run(ctx, screen)
		},
	}
}
