package model

import (
	"sort"

	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// Observation holds the EMBI spread of every country on one date.
// Countries without data on that date are absent from Values.
type Observation struct {
	Date   types.Date         `firestore:"date" json:"date"`
	Values map[string]float64 `firestore:"values" json:"values"`
}

// NewObservation creates an empty observation for date
func NewObservation(date types.Date) *Observation {
	return &Observation{
		Date:   date,
		Values: make(map[string]float64),
	}
}

// Value returns the value for a country
func (o *Observation) Value(country types.Country) (float64, bool) {
	v, ok := o.Values[country.String()]
	return v, ok
}

// Set sets the value for a country
func (o *Observation) Set(country types.Country, value float64) {
	if o.Values == nil {
		o.Values = make(map[string]float64)
	}
	o.Values[country.String()] = value
}

// Copy returns a deep copy
func (o *Observation) Copy() *Observation {
	c := NewObservation(o.Date)
	for k, v := range o.Values {
		c.Values[k] = v
	}
	return c
}

// SortObservations sorts observations by date ascending
func SortObservations(obs []*Observation) {
	sort.SliceStable(obs, func(i, j int) bool {
		return obs[i].Date < obs[j].Date
	})
}

// Dataset is the parsed EMBI history
type Dataset struct {
	Countries    []types.Country
	Observations []*Observation
}

// Dates returns the dates of all observations in order
func (d *Dataset) Dates() []types.Date {
	dates := make([]types.Date, 0, len(d.Observations))
	for _, o := range d.Observations {
		dates = append(dates, o.Date)
	}
	return dates
}
