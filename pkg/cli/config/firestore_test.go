package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/embiscope/pkg/cli/config"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
)

func TestFirestoreWithoutProject(t *testing.T) {
	ctx := context.Background()
	cfg := config.Firestore{DatabaseID: "(default)"}
	gt.False(t, cfg.IsConfigured())

	t.Run("Configure falls back to memory", func(t *testing.T) {
		repo, err := cfg.Configure(ctx)
		gt.NoError(t, err).Required()
		defer repo.Close()

		gt.NoError(t, repo.PutObservations(ctx, []*model.Observation{model.NewObservation("2023-01-01")}))
		dates, err := repo.ListDates(ctx)
		gt.NoError(t, err)
		gt.A(t, dates).Length(1)
	})

	t.Run("ConfigurePersistent requires a project", func(t *testing.T) {
		_, err := cfg.ConfigurePersistent(ctx)
		gt.Error(t, err)
	})
}
