package frontend

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

//go:embed index.html.tmpl
var indexTemplate string

// Index is the data of the home page. Labels holds the long Spanish form of
// Dates, index for index.
type Index struct {
	Dates     []types.Date
	Labels    []string
	Latest    types.Date
	Countries []types.Country
}

// NewIndex builds the home page data from ascending dates
func NewIndex(dates []types.Date, countries []types.Country) Index {
	idx := Index{
		Dates:     dates,
		Labels:    make([]string, len(dates)),
		Countries: countries,
	}
	for i, d := range dates {
		idx.Labels[i] = model.LongDate(d)
	}
	if len(dates) > 0 {
		idx.Latest = dates[len(dates)-1]
	}
	return idx
}

// LastIndex is the slider position of Latest
func (x Index) LastIndex() int {
	return len(x.Dates) - 1
}

// Home renders the browser entry page
type Home struct {
	tmpl *template.Template
}

// NewHome parses the embedded home page template
func NewHome() (*Home, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse home page template")
	}
	return &Home{tmpl: tmpl}, nil
}

// Render writes the home page
func (h *Home) Render(w io.Writer, data Index) error {
	if err := h.tmpl.Execute(w, data); err != nil {
		return goerr.Wrap(err, "failed to render home page")
	}
	return nil
}
