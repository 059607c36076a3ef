package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// DefaultCollection holds one document per observation date
	DefaultCollection = "embi_observations"

	// Field names
	fieldDate = "date"
)

// Firestore implements Repository interface with Firestore. Each observation
// is one document keyed by its date.
type Firestore struct {
	client     *firestore.Client
	collection string
}

// FirestoreOption configures a Firestore repository
type FirestoreOption func(*Firestore)

// WithCollection stores observations in the named collection instead of
// DefaultCollection
func WithCollection(name string) FirestoreOption {
	return func(f *Firestore) {
		if name != "" {
			f.collection = name
		}
	}
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string, opts ...FirestoreOption) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	repo := &Firestore{collection: DefaultCollection}
	for _, opt := range opts {
		opt(repo)
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permission
	_, err = client.Collection(repo.collection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
		"collection", repo.collection,
	)

	repo.client = client
	return repo, nil
}

// PutObservations stores observations, replacing existing ones with the same date
func (f *Firestore) PutObservations(ctx context.Context, observations []*model.Observation) error {
	for _, obs := range observations {
		if err := validateObservation(obs); err != nil {
			return err
		}
	}
	if len(observations) == 0 {
		return nil
	}

	bw := f.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(observations))
	for _, obs := range observations {
		job, err := bw.Set(f.doc(obs.Date), obs)
		if err != nil {
			bw.End()
			return goerr.Wrap(err, "failed to enqueue observation", goerr.V("date", obs.Date))
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "failed to save observation to firestore",
				goerr.V("date", observations[i].Date))
		}
	}

	ctxlog.From(ctx).Debug("Observations saved to firestore", "count", len(observations))
	return nil
}

// ListDates returns all dates in ascending order
func (f *Firestore) ListDates(ctx context.Context) ([]types.Date, error) {
	query := f.client.Collection(f.collection).
		Select(fieldDate).
		OrderBy(fieldDate, firestore.Asc)

	var dates []types.Date
	err := f.each(ctx, query, func(obs *model.Observation) {
		dates = append(dates, obs.Date)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list dates")
	}
	return dates, nil
}

// GetObservation returns the observation of a date
func (f *Firestore) GetObservation(ctx context.Context, date types.Date) (*model.Observation, error) {
	if date == "" {
		return nil, goerr.New("date is empty")
	}

	doc, err := f.doc(date).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "observation not found", goerr.V("date", date))
		}
		return nil, goerr.Wrap(err, "failed to get observation from firestore", goerr.V("date", date))
	}

	var obs model.Observation
	if err := doc.DataTo(&obs); err != nil {
		return nil, goerr.Wrap(err, "failed to decode observation", goerr.V("date", date))
	}
	return &obs, nil
}

// ListObservations returns observations with start <= date <= end in ascending order
func (f *Firestore) ListObservations(ctx context.Context, start, end types.Date) ([]*model.Observation, error) {
	if start > end {
		return nil, nil
	}

	query := f.client.Collection(f.collection).
		Where(fieldDate, ">=", start.String()).
		Where(fieldDate, "<=", end.String()).
		OrderBy(fieldDate, firestore.Asc)

	var result []*model.Observation
	err := f.each(ctx, query, func(obs *model.Observation) {
		result = append(result, obs)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list observations",
			goerr.V("start", start),
			goerr.V("end", end))
	}
	return result, nil
}

// GetSeries returns the non-missing values of a country in ascending date order
func (f *Firestore) GetSeries(ctx context.Context, country types.Country) (*model.HistoricalSeries, error) {
	query := f.client.Collection(f.collection).OrderBy(fieldDate, firestore.Asc)

	series := newSeries(country)
	if err := f.each(ctx, query, series.add); err != nil {
		return nil, goerr.Wrap(err, "failed to read series", goerr.V("country", country))
	}
	return series.HistoricalSeries, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}

func (f *Firestore) doc(date types.Date) *firestore.DocumentRef {
	return f.client.Collection(f.collection).Doc(date.String())
}

func (f *Firestore) each(ctx context.Context, query firestore.Query, fn func(*model.Observation)) error {
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate observations")
		}

		var obs model.Observation
		if err := doc.DataTo(&obs); err != nil {
			return goerr.Wrap(err, "failed to decode observation", goerr.V("id", doc.Ref.ID))
		}
		fn(&obs)
	}
}
