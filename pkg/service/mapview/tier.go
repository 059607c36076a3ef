package mapview

import (
	"math"
	"sort"

	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// Thresholds used when a date has no values at all
const (
	DefaultLowThreshold  = 2.0
	DefaultHighThreshold = 4.0
)

// Tier is the risk band of a spread relative to the other countries on the same date
type Tier int

const (
	TierMissing Tier = iota
	TierLow
	TierMedium
	TierHigh
)

// Color returns the fill color of the tier
func (t Tier) Color() string {
	switch t {
	case TierLow:
		return "#2ecc71"
	case TierMedium:
		return "#f39c12"
	case TierHigh:
		return "#e74c3c"
	default:
		return "#cccccc"
	}
}

// Label returns the legend label of the tier
func (t Tier) Label() string {
	switch t {
	case TierLow:
		return "Bajo"
	case TierMedium:
		return "Medio"
	case TierHigh:
		return "Alto"
	default:
		return "Sin datos"
	}
}

// Quantile returns the q-quantile of sorted values using linear
// interpolation between closest ranks
func Quantile(sorted []float64, q float64) float64 {
	switch len(sorted) {
	case 0:
		return math.NaN()
	case 1:
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Thresholds returns the 33rd and 67th percentiles of values, or the defaults
// when values is empty
func Thresholds(values []float64) (low, high float64) {
	if len(values) == 0 {
		return DefaultLowThreshold, DefaultHighThreshold
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return Quantile(sorted, 0.33), Quantile(sorted, 0.67)
}

// Classify returns the tier of a value
func Classify(value float64, present bool, low, high float64) Tier {
	switch {
	case !present:
		return TierMissing
	case value < low:
		return TierLow
	case value < high:
		return TierMedium
	default:
		return TierHigh
	}
}

// Entry is one country on a snapshot
type Entry struct {
	Info    model.CountryInfo
	Value   float64
	Present bool
	Tier    Tier
}

// Snapshot is the classified state of every country on one date
type Snapshot struct {
	Date    types.Date
	Low     float64
	High    float64
	Entries []Entry
}

// NewSnapshot classifies the observation against the country table. Entries
// follow the table order.
func NewSnapshot(obs *model.Observation, countries *model.CountryTable) *Snapshot {
	var values []float64
	for _, c := range countries.Countries {
		if v, ok := obs.Value(c.Name); ok {
			values = append(values, v)
		}
	}
	low, high := Thresholds(values)

	snap := &Snapshot{
		Date: obs.Date,
		Low:  low,
		High: high,
	}
	for _, c := range countries.Countries {
		v, ok := obs.Value(c.Name)
		snap.Entries = append(snap.Entries, Entry{
			Info:    c,
			Value:   v,
			Present: ok,
			Tier:    Classify(v, ok, low, high),
		})
	}
	return snap
}

// Count returns the number of entries in a tier
func (s *Snapshot) Count(tier Tier) int {
	n := 0
	for _, e := range s.Entries {
		if e.Tier == tier {
			n++
		}
	}
	return n
}
