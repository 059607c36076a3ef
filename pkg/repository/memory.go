package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu           sync.RWMutex
	observations map[types.Date]*model.Observation
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		observations: make(map[types.Date]*model.Observation),
	}
}

// PutObservations stores observations, replacing existing ones with the same date
func (m *Memory) PutObservations(ctx context.Context, observations []*model.Observation) error {
	for _, obs := range observations {
		if err := validateObservation(obs); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, obs := range observations {
		m.observations[obs.Date] = obs.Copy()
	}
	return nil
}

// ListDates returns all dates in ascending order
func (m *Memory) ListDates(ctx context.Context) ([]types.Date, error) {
	obs := m.sorted()
	dates := make([]types.Date, 0, len(obs))
	for _, o := range obs {
		dates = append(dates, o.Date)
	}
	return dates, nil
}

// GetObservation returns the observation of a date
func (m *Memory) GetObservation(ctx context.Context, date types.Date) (*model.Observation, error) {
	if date == "" {
		return nil, goerr.New("date is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	obs, exists := m.observations[date]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "observation not found", goerr.V("date", date))
	}

	// Return a copy to prevent external modification
	return obs.Copy(), nil
}

// ListObservations returns observations with start <= date <= end in ascending order
func (m *Memory) ListObservations(ctx context.Context, start, end types.Date) ([]*model.Observation, error) {
	var result []*model.Observation
	for _, o := range m.sorted() {
		if o.Date >= start && o.Date <= end {
			result = append(result, o)
		}
	}
	return result, nil
}

// GetSeries returns the non-missing values of a country in ascending date order
func (m *Memory) GetSeries(ctx context.Context, country types.Country) (*model.HistoricalSeries, error) {
	series := newSeries(country)
	for _, o := range m.sorted() {
		series.add(o)
	}
	return series.HistoricalSeries, nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}

func (m *Memory) sorted() []*model.Observation {
	m.mu.RLock()
	obs := make([]*model.Observation, 0, len(m.observations))
	for _, o := range m.observations {
		obs = append(obs, o.Copy())
	}
	m.mu.RUnlock()

	model.SortObservations(obs)
	return obs
}

func validateObservation(obs *model.Observation) error {
	if obs == nil {
		return goerr.New("observation is nil")
	}
	if err := obs.Date.Validate(); err != nil {
		return goerr.Wrap(err, "invalid observation")
	}
	return nil
}

type seriesBuilder struct {
	*model.HistoricalSeries
}

func newSeries(country types.Country) *seriesBuilder {
	return &seriesBuilder{
		HistoricalSeries: &model.HistoricalSeries{
			Country: country,
			Labels:  []string{},
			Values:  []float64{},
		},
	}
}

func (b *seriesBuilder) add(obs *model.Observation) {
	if v, ok := obs.Value(b.Country); ok {
		b.Labels = append(b.Labels, obs.Date.String())
		b.Values = append(b.Values, v)
	}
}
