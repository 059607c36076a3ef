package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/service/embi"
	"github.com/secmon-lab/embiscope/pkg/service/mapview"
	"github.com/urfave/cli/v3"
)

// Dataset holds the EMBI source file and map configuration
type Dataset struct {
	CSVPath       string
	CountriesPath string
	GeoJSONURL    string
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "csv",
			Usage:       "EMBI historical CSV to import on start",
			Category:    "Dataset",
			Sources:     cli.EnvVars("EMBISCOPE_CSV"),
			Destination: &d.CSVPath,
		},
		&cli.StringFlag{
			Name:        "countries",
			Usage:       "YAML country table (defaults to the built-in LATAM table)",
			Category:    "Dataset",
			Sources:     cli.EnvVars("EMBISCOPE_COUNTRIES"),
			Destination: &d.CountriesPath,
		},
		&cli.StringFlag{
			Name:        "geojson-url",
			Usage:       "Country shapes loaded by map pages",
			Category:    "Dataset",
			Value:       mapview.DefaultGeoJSONURL,
			Sources:     cli.EnvVars("EMBISCOPE_GEOJSON_URL"),
			Destination: &d.GeoJSONURL,
		},
	}
}

// Countries loads the country table
func (d *Dataset) Countries() (*model.CountryTable, error) {
	return embi.LoadCountries(d.CountriesPath)
}

// Renderer creates the map renderer for the country table
func (d *Dataset) Renderer(countries *model.CountryTable) (*mapview.Renderer, error) {
	var opts []mapview.Option
	if d.GeoJSONURL != "" {
		opts = append(opts, mapview.WithGeoJSONURL(d.GeoJSONURL))
	}
	return mapview.New(countries, opts...)
}

// Load parses the CSV file. It returns nil when no file is configured.
func (d *Dataset) Load(ctx context.Context, countries *model.CountryTable) (*model.Dataset, error) {
	if d.CSVPath == "" {
		return nil, nil
	}

	ds, err := embi.LoadFile(d.CSVPath, countries.Names())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load EMBI dataset", goerr.V("path", d.CSVPath))
	}

	ctxlog.From(ctx).Info("EMBI dataset loaded",
		"path", d.CSVPath,
		"observations", len(ds.Observations),
		"countries", len(ds.Countries),
	)
	return ds, nil
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("csv", d.CSVPath),
		slog.String("countries", d.CountriesPath),
		slog.String("geojson_url", d.GeoJSONURL),
	)
}
