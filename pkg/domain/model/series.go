package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// HistoricalSeries is a country's EMBI time series. Labels and Values are
// aligned by index.
type HistoricalSeries struct {
	Country types.Country `json:"-"`
	Labels  []string      `json:"labels"`
	Values  []float64     `json:"values"`
}

// Validate checks that labels and values are aligned
func (s *HistoricalSeries) Validate() error {
	if len(s.Labels) != len(s.Values) {
		return goerr.New("labels and values length mismatch",
			goerr.V("labels", len(s.Labels)),
			goerr.V("values", len(s.Values)))
	}
	return nil
}

// Len returns the number of points
func (s *HistoricalSeries) Len() int {
	return len(s.Values)
}

// Latest returns the most recent point
func (s *HistoricalSeries) Latest() (string, float64, bool) {
	if len(s.Values) == 0 {
		return "", 0, false
	}
	return s.Labels[len(s.Labels)-1], s.Values[len(s.Values)-1], true
}

// Bounds returns the minimum and maximum values
func (s *HistoricalSeries) Bounds() (minValue, maxValue float64, ok bool) {
	if len(s.Values) == 0 {
		return 0, 0, false
	}
	minValue, maxValue = s.Values[0], s.Values[0]
	for _, v := range s.Values[1:] {
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	return minValue, maxValue, true
}
