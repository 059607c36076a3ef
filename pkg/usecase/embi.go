package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/service/mapview"
)

var exportHeader = []string{"Fecha", "País", "EMBI"}

// EMBI serves the EMBI dataset: date catalog, rendered maps, per-country
// history and CSV exports
type EMBI struct {
	repo      interfaces.Repository
	countries *model.CountryTable
	maps      *mapview.Renderer
}

// NewEMBI creates an EMBI use case
func NewEMBI(repo interfaces.Repository, maps *mapview.Renderer) *EMBI {
	return &EMBI{
		repo:      repo,
		countries: maps.Countries(),
		maps:      maps,
	}
}

// Countries returns the country table
func (u *EMBI) Countries() *model.CountryTable {
	return u.countries
}

// Import stores a parsed dataset
func (u *EMBI) Import(ctx context.Context, ds *model.Dataset) error {
	if err := u.repo.PutObservations(ctx, ds.Observations); err != nil {
		return goerr.Wrap(err, "failed to import dataset")
	}

	ctxlog.From(ctx).Info("Dataset imported",
		"observations", len(ds.Observations),
		"countries", len(ds.Countries),
	)
	return nil
}

// Dates returns the available dates in ascending order
func (u *EMBI) Dates(ctx context.Context) ([]types.Date, error) {
	dates, err := u.repo.ListDates(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list dates")
	}
	if dates == nil {
		dates = []types.Date{}
	}
	return dates, nil
}

// MapHTML renders the map document of a date. Unknown or malformed dates get
// the no-data document.
func (u *EMBI) MapHTML(ctx context.Context, date types.Date) ([]byte, error) {
	var buf bytes.Buffer

	obs, err := u.observation(ctx, date)
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidDate) {
		ctxlog.From(ctx).Debug("No data for map", "date", date)
		if err := u.maps.RenderNoData(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	if err != nil {
		return nil, err
	}

	if err := u.maps.Render(&buf, obs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Snapshot classifies every country on a date
func (u *EMBI) Snapshot(ctx context.Context, date types.Date) (*mapview.Snapshot, error) {
	obs, err := u.observation(ctx, date)
	if err != nil {
		return nil, err
	}
	return mapview.NewSnapshot(obs, u.countries), nil
}

// LatestSnapshot classifies every country on the most recent date
func (u *EMBI) LatestSnapshot(ctx context.Context) (*mapview.Snapshot, error) {
	dates, err := u.Dates(ctx)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, goerr.Wrap(model.ErrNotFound, "dataset is empty")
	}
	return u.Snapshot(ctx, dates[len(dates)-1])
}

// Historical returns the series of a country. GeoJSON names such as "Peru"
// resolve to the dataset name.
func (u *EMBI) Historical(ctx context.Context, name string) (*model.HistoricalSeries, error) {
	country, err := u.countries.Resolve(name)
	if err != nil {
		return nil, err
	}

	series, err := u.repo.GetSeries(ctx, country)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get series", goerr.V("country", country))
	}
	return series, nil
}

// ExportCountryDate exports one country on one date. The file name keeps the
// requested name while rows carry the dataset name.
func (u *EMBI) ExportCountryDate(ctx context.Context, name string, date types.Date) (*model.Export, error) {
	country, err := u.exportCountry(name)
	if err != nil {
		return nil, err
	}
	obs, err := u.observation(ctx, date)
	if err != nil {
		return nil, err
	}

	return buildExport(
		fmt.Sprintf("EMBI_%s_%s.csv", name, date),
		[]*model.Observation{obs},
		[]types.Country{country},
	)
}

// ExportAllDate exports every country on one date
func (u *EMBI) ExportAllDate(ctx context.Context, date types.Date) (*model.Export, error) {
	obs, err := u.observation(ctx, date)
	if err != nil {
		return nil, err
	}

	return buildExport(
		fmt.Sprintf("EMBI_Todos_%s.csv", date),
		[]*model.Observation{obs},
		u.countries.Names(),
	)
}

// ExportRangeCountry exports one country for start <= date <= end
func (u *EMBI) ExportRangeCountry(ctx context.Context, name string, start, end types.Date) (*model.Export, error) {
	country, err := u.exportCountry(name)
	if err != nil {
		return nil, err
	}
	obs, err := u.observations(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return buildExport(
		fmt.Sprintf("EMBI_%s_%s_to_%s.csv", name, start, end),
		obs,
		[]types.Country{country},
	)
}

// ExportRangeAll exports every country for start <= date <= end
func (u *EMBI) ExportRangeAll(ctx context.Context, start, end types.Date) (*model.Export, error) {
	obs, err := u.observations(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return buildExport(
		fmt.Sprintf("EMBI_Todos_%s_to_%s.csv", start, end),
		obs,
		u.countries.Names(),
	)
}

func (u *EMBI) exportCountry(name string) (types.Country, error) {
	country, err := u.countries.Resolve(name)
	if err != nil {
		return "", goerr.Wrap(model.ErrNotFound, "unknown country", goerr.V("country", name))
	}
	return country, nil
}

func (u *EMBI) observation(ctx context.Context, date types.Date) (*model.Observation, error) {
	if err := date.Validate(); err != nil {
		return nil, goerr.Wrap(model.ErrInvalidDate, "cannot parse date", goerr.V("date", date), goerr.V("cause", err.Error()))
	}
	return u.repo.GetObservation(ctx, date)
}

func (u *EMBI) observations(ctx context.Context, start, end types.Date) ([]*model.Observation, error) {
	for _, d := range []types.Date{start, end} {
		if err := d.Validate(); err != nil {
			return nil, goerr.Wrap(model.ErrInvalidDate, "cannot parse date", goerr.V("date", d), goerr.V("cause", err.Error()))
		}
	}

	obs, err := u.repo.ListObservations(ctx, start, end)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list observations")
	}
	if len(obs) == 0 {
		return nil, goerr.Wrap(model.ErrNotFound, "no observations in range",
			goerr.V("start", start),
			goerr.V("end", end))
	}
	return obs, nil
}

// buildExport writes one row per observation and country. Missing values
// are written as empty cells. The file starts with a UTF-8 BOM.
func buildExport(fileName string, observations []*model.Observation, countries []types.Country) (*model.Export, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, goerr.Wrap(err, "failed to write CSV header")
	}

	for _, obs := range observations {
		for _, country := range countries {
			value := ""
			if v, ok := obs.Value(country); ok {
				value = strconv.FormatFloat(v, 'f', -1, 64)
			}
			if err := w.Write([]string{obs.Date.String(), country.String(), value}); err != nil {
				return nil, goerr.Wrap(err, "failed to write CSV row")
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, goerr.Wrap(err, "failed to flush CSV")
	}

	return &model.Export{
		FileName: fileName,
		Data:     buf.Bytes(),
	}, nil
}
