package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/embiscope/pkg/cli/config"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdNotify() *cli.Command {
	var (
		datasetCfg   config.Dataset
		firestoreCfg config.Firestore
		slackCfg     config.Slack
		date         string
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		firestoreCfg.Flags(),
		slackCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "date",
				Usage:       "Date to post (YYYY-MM-DD, defaults to the latest)",
				Sources:     cli.EnvVars("EMBISCOPE_NOTIFY_DATE"),
				Destination: &date,
			},
		},
	)

	return &cli.Command{
		Name:  "notify",
		Usage: "Post an EMBI snapshot to Slack",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctxlog.From(ctx).Info("Posting EMBI snapshot",
				slog.Any("dataset", datasetCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("slack", slackCfg),
				slog.String("date", date),
			)

			slackClient, err := slackCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			embiUC, err := newEMBI(ctx, &datasetCfg, repo)
			if err != nil {
				return err
			}

			notifyUC := usecase.NewNotify(embiUC, slackClient, slackCfg.ChannelID, slackCfg.DashboardURL)
			if _, err := notifyUC.PostSnapshot(ctx, types.Date(date)); err != nil {
				return err
			}
			return nil
		},
	}
}
