package mapview

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
)

// DefaultGeoJSONURL is the source of country shapes
const DefaultGeoJSONURL = "https://raw.githubusercontent.com/datasets/geo-countries/master/data/countries.geojson"

var (
	//go:embed map.html.tmpl
	mapTemplate string

	//go:embed nodata.html.tmpl
	noDataTemplate string
)

// Renderer renders choropleth map documents
type Renderer struct {
	countries  *model.CountryTable
	geoJSONURL string
	tmpl       *template.Template
	noData     *template.Template
}

// Option configures a Renderer
type Option func(*Renderer)

// WithGeoJSONURL sets where the page loads country shapes from
func WithGeoJSONURL(url string) Option {
	return func(r *Renderer) {
		r.geoJSONURL = url
	}
}

// New creates a renderer for the given country table
func New(countries *model.CountryTable, opts ...Option) (*Renderer, error) {
	if countries == nil {
		return nil, goerr.New("country table is required")
	}

	r := &Renderer{
		countries:  countries,
		geoJSONURL: DefaultGeoJSONURL,
	}
	for _, opt := range opts {
		opt(r)
	}

	tmpl, err := template.New("map").Funcs(template.FuncMap{
		"pct": formatPercent,
	}).Parse(mapTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse map template")
	}
	r.tmpl = tmpl

	noData, err := template.New("nodata").Parse(noDataTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse no-data template")
	}
	r.noData = noData

	return r, nil
}

// Countries returns the country table
func (r *Renderer) Countries() *model.CountryTable {
	return r.countries
}

type featureStyle struct {
	Color   string `json:"color"`
	Country string `json:"country"`
}

type valueLabel struct {
	Coords   model.LatLng `json:"coords"`
	Position model.LatLng `json:"position"`
	Callout  bool         `json:"callout"`
	Text     string       `json:"text"`
}

type mapPage struct {
	Date        string
	GeoJSONURL  string
	Low         float64
	High        float64
	LowColor    string
	MediumColor string
	HighColor   string
	Styles      map[string]featureStyle
	Labels      []valueLabel
}

// Render writes the map document of one observation
func (r *Renderer) Render(w io.Writer, obs *model.Observation) error {
	snap := NewSnapshot(obs, r.countries)

	page := mapPage{
		Date:        obs.Date.String(),
		GeoJSONURL:  r.geoJSONURL,
		Low:         snap.Low,
		High:        snap.High,
		LowColor:    TierLow.Color(),
		MediumColor: TierMedium.Color(),
		HighColor:   TierHigh.Color(),
		Styles:      make(map[string]featureStyle),
		Labels:      []valueLabel{},
	}

	for _, e := range snap.Entries {
		style := featureStyle{
			Color:   e.Tier.Color(),
			Country: e.Info.Name.String(),
		}
		// shapes are looked up by GeoJSON name
		page.Styles[e.Info.Name.String()] = style
		for _, alias := range e.Info.Aliases {
			page.Styles[alias] = style
		}

		if e.Present {
			page.Labels = append(page.Labels, valueLabel{
				Coords:   e.Info.Coords,
				Position: e.Info.LabelPosition(),
				Callout:  e.Info.HasCallout(),
				Text:     formatPercent(e.Value),
			})
		}
	}

	if err := r.tmpl.Execute(w, page); err != nil {
		return goerr.Wrap(err, "failed to render map", goerr.V("date", obs.Date))
	}
	return nil
}

// RenderNoData writes the document shown for dates without data
func (r *Renderer) RenderNoData(w io.Writer) error {
	if err := r.noData.Execute(w, nil); err != nil {
		return goerr.Wrap(err, "failed to render no-data page")
	}
	return nil
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
