package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/repository"
)

// fixture uses a random day in a far-past year and a unique country name so
// runs against a shared Firestore database do not see each other's data
type fixture struct {
	country types.Country
	dates   []types.Date
}

func newFixture() fixture {
	now := time.Now().UnixNano()
	base := time.Date(1900+int(now%80), time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, int(now/1000%300))

	return fixture{
		country: types.Country(fmt.Sprintf("Test-%d", now)),
		dates: []types.Date{
			types.NewDate(base),
			types.NewDate(base.AddDate(0, 0, 1)),
			types.NewDate(base.AddDate(0, 0, 2)),
		},
	}
}

func (f fixture) observations() []*model.Observation {
	// inserted out of order; the middle date has no value for the country
	third := model.NewObservation(f.dates[2])
	third.Set(f.country, 3.25)
	third.Set("Chile", 1.1)

	first := model.NewObservation(f.dates[0])
	first.Set(f.country, 1.5)

	second := model.NewObservation(f.dates[1])
	second.Set("Chile", 1.2)

	return []*model.Observation{third, first, second}
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("PutObservations and GetObservation", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		f := newFixture()
		gt.NoError(t, repo.PutObservations(ctx, f.observations())).Required()

		obs, err := repo.GetObservation(ctx, f.dates[2])
		gt.NoError(t, err).Required()
		gt.Equal(t, obs.Date, f.dates[2])

		v, ok := obs.Value(f.country)
		gt.True(t, ok)
		gt.Equal(t, v, 3.25)

		v, ok = obs.Value("Chile")
		gt.True(t, ok)
		gt.Equal(t, v, 1.1)
	})

	t.Run("PutObservations replaces the same date", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		f := newFixture()
		gt.NoError(t, repo.PutObservations(ctx, f.observations())).Required()

		replaced := model.NewObservation(f.dates[0])
		replaced.Set(f.country, 9.9)
		gt.NoError(t, repo.PutObservations(ctx, []*model.Observation{replaced})).Required()

		obs, err := repo.GetObservation(ctx, f.dates[0])
		gt.NoError(t, err).Required()
		v, _ := obs.Value(f.country)
		gt.Equal(t, v, 9.9)
	})

	t.Run("PutObservations rejects invalid input", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.PutObservations(ctx, []*model.Observation{nil}))
		gt.Error(t, repo.PutObservations(ctx, []*model.Observation{model.NewObservation("01/02/2023")}))
	})

	t.Run("GetObservation of unknown date", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		_, err := repo.GetObservation(ctx, "1801-01-01")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrNotFound))

		_, err = repo.GetObservation(ctx, "")
		gt.Error(t, err)
	})

	t.Run("ListDates is ascending", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		f := newFixture()
		gt.NoError(t, repo.PutObservations(ctx, f.observations())).Required()

		dates, err := repo.ListDates(ctx)
		gt.NoError(t, err).Required()
		gt.True(t, slices.IsSorted(dates))
		for _, d := range f.dates {
			gt.True(t, slices.Contains(dates, d))
		}
	})

	t.Run("ListObservations is inclusive and ordered", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		f := newFixture()
		gt.NoError(t, repo.PutObservations(ctx, f.observations())).Required()

		obs, err := repo.ListObservations(ctx, f.dates[0], f.dates[1])
		gt.NoError(t, err).Required()
		gt.A(t, obs).Length(2)
		gt.Equal(t, obs[0].Date, f.dates[0])
		gt.Equal(t, obs[1].Date, f.dates[1])

		obs, err = repo.ListObservations(ctx, f.dates[2], f.dates[0])
		gt.NoError(t, err)
		gt.A(t, obs).Length(0)
	})

	t.Run("GetSeries skips missing values", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		f := newFixture()
		gt.NoError(t, repo.PutObservations(ctx, f.observations())).Required()

		series, err := repo.GetSeries(ctx, f.country)
		gt.NoError(t, err).Required()
		gt.Equal(t, series.Country, f.country)
		gt.Equal(t, series.Labels, []string{f.dates[0].String(), f.dates[2].String()})
		gt.Equal(t, series.Values, []float64{1.5, 3.25})

		empty, err := repo.GetSeries(ctx, "Nowhere")
		gt.NoError(t, err).Required()
		gt.Equal(t, empty.Len(), 0)
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	obs := model.NewObservation("2023-01-01")
	obs.Set("Chile", 1.0)
	gt.NoError(t, repo.PutObservations(ctx, []*model.Observation{obs})).Required()

	obs.Set("Chile", 2.0)
	got, err := repo.GetObservation(ctx, "2023-01-01")
	gt.NoError(t, err).Required()
	v, _ := got.Value("Chile")
	gt.Equal(t, v, 1.0)

	got.Set("Chile", 3.0)
	again, err := repo.GetObservation(ctx, "2023-01-01")
	gt.NoError(t, err).Required()
	v, _ = again.Value("Chile")
	gt.Equal(t, v, 1.0)
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		// isolate each run from earlier data
		collection := fmt.Sprintf("embi_test_%d", time.Now().UnixNano())
		repo, err := repository.NewFirestore(ctx, projectID, databaseID, repository.WithCollection(collection))
		gt.NoError(t, err).Required()
		return repo
	})
}
