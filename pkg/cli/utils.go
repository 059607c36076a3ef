package cli

import (
	"context"

	"github.com/secmon-lab/embiscope/pkg/cli/config"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// newEMBI wires the EMBI use case from the dataset config and imports the
// configured CSV, if any
func newEMBI(ctx context.Context, datasetCfg *config.Dataset, repo interfaces.Repository) (*usecase.EMBI, error) {
	countries, err := datasetCfg.Countries()
	if err != nil {
		return nil, err
	}
	renderer, err := datasetCfg.Renderer(countries)
	if err != nil {
		return nil, err
	}
	uc := usecase.NewEMBI(repo, renderer)

	ds, err := datasetCfg.Load(ctx, countries)
	if err != nil {
		return nil, err
	}
	if ds != nil {
		if err := uc.Import(ctx, ds); err != nil {
			return nil, err
		}
	}
	return uc, nil
}
