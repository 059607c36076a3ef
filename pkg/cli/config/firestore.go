package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore locates the observation store
type Firestore struct {
	ProjectID  string
	DatabaseID string
	Collection string
}

func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project holding EMBI observations (memory store when empty)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("EMBISCOPE_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("EMBISCOPE_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Collection with one document per observation date",
			Category:    "Firestore",
			Value:       repository.DefaultCollection,
			Sources:     cli.EnvVars("EMBISCOPE_FIRESTORE_COLLECTION"),
			Destination: &f.Collection,
		},
	}
}

// Configure opens the observation store. Without a project, observations
// live in memory until the process exits.
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	if !f.IsConfigured() {
		ctxlog.From(ctx).Warn("No Firestore project, keeping EMBI observations in memory")
		return repository.NewMemory(), nil
	}
	return f.open(ctx)
}

// ConfigurePersistent is Configure without the memory fallback
func (f *Firestore) ConfigurePersistent(ctx context.Context) (interfaces.Repository, error) {
	if !f.IsConfigured() {
		return nil, goerr.New("--firestore-project is required")
	}
	return f.open(ctx)
}

func (f *Firestore) open(ctx context.Context) (interfaces.Repository, error) {
	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID,
		repository.WithCollection(f.Collection))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open observation store",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
			goerr.V("collection", f.Collection),
		)
	}
	return repo, nil
}

func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
		slog.String("collection", f.Collection),
	)
}
