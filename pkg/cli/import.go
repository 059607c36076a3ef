package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var (
		datasetCfg   config.Dataset
		firestoreCfg config.Firestore
	)

	return &cli.Command{
		Name:  "import",
		Usage: "Import an EMBI CSV into Firestore",
		Flags: joinFlags(datasetCfg.Flags(), firestoreCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if datasetCfg.CSVPath == "" {
				return goerr.New("--csv is required")
			}
			ctxlog.From(ctx).Info("Importing EMBI dataset",
				slog.Any("dataset", datasetCfg),
				slog.Any("firestore", firestoreCfg),
			)

			repo, err := firestoreCfg.ConfigurePersistent(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			embiUC, err := newEMBI(ctx, &datasetCfg, repo)
			if err != nil {
				return err
			}

			dates, err := embiUC.Dates(ctx)
			if err != nil {
				return err
			}
			ctxlog.From(ctx).Info("Import complete", "dates", len(dates))
			return nil
		},
	}
}
