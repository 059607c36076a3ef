package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// Repository defines the interface for EMBI observation storage
type Repository interface {
	// PutObservations stores observations, replacing existing ones with the same date
	PutObservations(ctx context.Context, observations []*model.Observation) error

	// ListDates returns all dates in ascending order
	ListDates(ctx context.Context) ([]types.Date, error)

	// GetObservation returns the observation of a date
	GetObservation(ctx context.Context, date types.Date) (*model.Observation, error)

	// ListObservations returns observations with start <= date <= end in ascending order
	ListObservations(ctx context.Context, start, end types.Date) ([]*model.Observation, error)

	// GetSeries returns the non-missing values of a country in ascending date order
	GetSeries(ctx context.Context, country types.Country) (*model.HistoricalSeries, error)

	// Close closes the repository connection
	Close() error
}
