package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/repository"
	"github.com/secmon-lab/embiscope/pkg/service/embi"
	"github.com/secmon-lab/embiscope/pkg/service/mapview"
	"github.com/secmon-lab/embiscope/pkg/usecase"
)

func newEMBI(t *testing.T) *usecase.EMBI {
	t.Helper()
	ctx := testContext()

	table, err := embi.DefaultCountries()
	gt.NoError(t, err).Required()
	renderer, err := mapview.New(table)
	gt.NoError(t, err).Required()

	uc := usecase.NewEMBI(repository.NewMemory(), renderer)

	day1 := model.NewObservation("2023-01-01")
	day1.Set("Chile", 1.25)
	day1.Set("Perú", 1.6)
	day1.Set("REP DOM", 2.75)

	day2 := model.NewObservation("2023-01-02")
	day2.Set("Chile", 1.3)
	day2.Set("Argentina", 20.5)

	day3 := model.NewObservation("2023-01-03")
	day3.Set("Chile", 1.35)

	gt.NoError(t, uc.Import(ctx, &model.Dataset{
		Countries:    []types.Country{"Argentina", "Chile", "Perú", "REP DOM"},
		Observations: []*model.Observation{day3, day1, day2},
	})).Required()
	return uc
}

func csvLines(t *testing.T, data []byte) []string {
	t.Helper()
	gt.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	body := strings.TrimPrefix(string(data), "\ufeff")
	return strings.Split(strings.TrimRight(body, "\n"), "\n")
}

func TestEMBIDates(t *testing.T) {
	uc := newEMBI(t)
	dates, err := uc.Dates(testContext())
	gt.NoError(t, err).Required()
	gt.Equal(t, dates, []types.Date{"2023-01-01", "2023-01-02", "2023-01-03"})
}

func TestEMBIDates_Empty(t *testing.T) {
	table, err := embi.DefaultCountries()
	gt.NoError(t, err).Required()
	renderer, err := mapview.New(table)
	gt.NoError(t, err).Required()

	dates, err := usecase.NewEMBI(repository.NewMemory(), renderer).Dates(testContext())
	gt.NoError(t, err)
	gt.True(t, dates != nil)
	gt.A(t, dates).Length(0)
}

func TestEMBIMapHTML(t *testing.T) {
	uc := newEMBI(t)
	ctx := testContext()

	html, err := uc.MapHTML(ctx, "2023-01-02")
	gt.NoError(t, err).Required()
	gt.S(t, string(html)).Contains("EMBI LATAM (%)")
	gt.S(t, string(html)).Contains("20.50%")

	for _, date := range []types.Date{"2020-01-01", "not-a-date"} {
		html, err = uc.MapHTML(ctx, date)
		gt.NoError(t, err).Required()
		gt.S(t, string(html)).Contains("No data available for this date")
	}
}

func TestEMBIHistorical(t *testing.T) {
	uc := newEMBI(t)
	ctx := testContext()

	t.Run("Dataset name", func(t *testing.T) {
		series, err := uc.Historical(ctx, "Chile")
		gt.NoError(t, err).Required()
		gt.Equal(t, series.Labels, []string{"2023-01-01", "2023-01-02", "2023-01-03"})
		gt.Equal(t, series.Values, []float64{1.25, 1.3, 1.35})
	})

	t.Run("GeoJSON alias", func(t *testing.T) {
		series, err := uc.Historical(ctx, "Peru")
		gt.NoError(t, err).Required()
		gt.Equal(t, series.Country, types.Country("Perú"))
		gt.Equal(t, series.Values, []float64{1.6})

		series, err = uc.Historical(ctx, "Dominican Republic")
		gt.NoError(t, err).Required()
		gt.Equal(t, series.Country, types.Country("REP DOM"))
	})

	t.Run("Known country without values", func(t *testing.T) {
		series, err := uc.Historical(ctx, "Bolivia")
		gt.NoError(t, err).Required()
		gt.Equal(t, series.Len(), 0)
	})

	t.Run("Unknown country", func(t *testing.T) {
		_, err := uc.Historical(ctx, "Atlantis")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrCountryNotFound))
	})
}

func TestEMBIExports(t *testing.T) {
	uc := newEMBI(t)
	ctx := testContext()

	t.Run("Country on a date", func(t *testing.T) {
		export, err := uc.ExportCountryDate(ctx, "Chile", "2023-01-02")
		gt.NoError(t, err).Required()
		gt.Equal(t, export.FileName, "EMBI_Chile_2023-01-02.csv")

		lines := csvLines(t, export.Data)
		gt.Equal(t, lines, []string{"Fecha,País,EMBI", "2023-01-02,Chile,1.3"})
	})

	t.Run("Country without a value on the date", func(t *testing.T) {
		export, err := uc.ExportCountryDate(ctx, "Perú", "2023-01-02")
		gt.NoError(t, err).Required()
		gt.Equal(t, csvLines(t, export.Data)[1], "2023-01-02,Perú,")
	})

	t.Run("File name keeps the requested name", func(t *testing.T) {
		export, err := uc.ExportCountryDate(ctx, "Peru", "2023-01-01")
		gt.NoError(t, err).Required()
		gt.Equal(t, export.FileName, "EMBI_Peru_2023-01-01.csv")
		gt.Equal(t, csvLines(t, export.Data)[1], "2023-01-01,Perú,1.6")

		export, err = uc.ExportRangeCountry(ctx, "Dominican Republic", "2023-01-01", "2023-01-02")
		gt.NoError(t, err).Required()
		gt.Equal(t, export.FileName, "EMBI_Dominican Republic_2023-01-01_to_2023-01-02.csv")
		gt.Equal(t, csvLines(t, export.Data)[1], "2023-01-01,REP DOM,2.75")
	})

	t.Run("All countries on a date", func(t *testing.T) {
		export, err := uc.ExportAllDate(ctx, "2023-01-01")
		gt.NoError(t, err).Required()
		gt.Equal(t, export.FileName, "EMBI_Todos_2023-01-01.csv")

		lines := csvLines(t, export.Data)
		gt.Equal(t, len(lines), 18)
		gt.Equal(t, lines[1], "2023-01-01,Argentina,")
		gt.Equal(t, lines[17], "2023-01-01,REP DOM,2.75")
	})

	t.Run("Country over a range", func(t *testing.T) {
		export, err := uc.ExportRangeCountry(ctx, "Chile", "2023-01-02", "2023-01-03")
		gt.NoError(t, err).Required()
		gt.Equal(t, export.FileName, "EMBI_Chile_2023-01-02_to_2023-01-03.csv")

		lines := csvLines(t, export.Data)
		gt.Equal(t, lines[1:], []string{"2023-01-02,Chile,1.3", "2023-01-03,Chile,1.35"})
	})

	t.Run("All countries over a range", func(t *testing.T) {
		export, err := uc.ExportRangeAll(ctx, "2023-01-01", "2023-01-03")
		gt.NoError(t, err).Required()
		gt.Equal(t, export.FileName, "EMBI_Todos_2023-01-01_to_2023-01-03.csv")
		gt.Equal(t, len(csvLines(t, export.Data)), 1+3*17)
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := uc.ExportCountryDate(ctx, "Chile", "2020-01-01")
		gt.True(t, errors.Is(err, model.ErrNotFound))

		_, err = uc.ExportCountryDate(ctx, "Atlantis", "2023-01-01")
		gt.True(t, errors.Is(err, model.ErrNotFound))

		_, err = uc.ExportAllDate(ctx, "2020-01-01")
		gt.True(t, errors.Is(err, model.ErrNotFound))

		_, err = uc.ExportRangeAll(ctx, "2020-01-01", "2020-12-31")
		gt.True(t, errors.Is(err, model.ErrNotFound))

		// reversed ranges select nothing
		_, err = uc.ExportRangeCountry(ctx, "Chile", "2023-01-03", "2023-01-01")
		gt.True(t, errors.Is(err, model.ErrNotFound))
	})

	t.Run("Invalid date", func(t *testing.T) {
		_, err := uc.ExportAllDate(ctx, "01-01-2023")
		gt.True(t, errors.Is(err, model.ErrInvalidDate))

		_, err = uc.ExportRangeAll(ctx, "2023-01-01", "tomorrow")
		gt.True(t, errors.Is(err, model.ErrInvalidDate))
	})
}

func TestEMBILatestSnapshot(t *testing.T) {
	uc := newEMBI(t)

	snap, err := uc.LatestSnapshot(testContext())
	gt.NoError(t, err).Required()
	gt.Equal(t, snap.Date, types.Date("2023-01-03"))
	gt.Equal(t, len(snap.Entries), 17)
	gt.Equal(t, snap.Count(mapview.TierMissing), 16)
}

func TestEMBIRepositoryFailure(t *testing.T) {
	table, err := embi.DefaultCountries()
	gt.NoError(t, err).Required()
	renderer, err := mapview.New(table)
	gt.NoError(t, err).Required()

	repo := &mocks.RepositoryMock{
		ListDatesFunc: func(ctx context.Context) ([]types.Date, error) {
			return nil, errors.New("backend unavailable")
		},
		GetObservationFunc: func(ctx context.Context, date types.Date) (*model.Observation, error) {
			return nil, errors.New("backend unavailable")
		},
	}
	uc := usecase.NewEMBI(repo, renderer)

	_, err = uc.Dates(testContext())
	gt.Error(t, err)

	_, err = uc.MapHTML(testContext(), "2023-01-01")
	gt.Error(t, err)
	gt.False(t, errors.Is(err, model.ErrNotFound))
}
