package interfaces

//go:generate moq -out mocks/client_mock.go -pkg mocks . EMBIClient

import (
	"context"

	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// EMBIClient is the dashboard's view of the EMBI REST API
type EMBIClient interface {
	// Dates returns the catalog of available dates in ascending order
	Dates(ctx context.Context) ([]types.Date, error)

	// Map returns the rendered map document for a date
	Map(ctx context.Context, date types.Date) (string, error)

	// MapURL returns the URL of the rendered map for a date, for frame based views
	MapURL(date types.Date) string

	// Historical returns the time series of a country
	Historical(ctx context.Context, country types.Country) (*model.HistoricalSeries, error)
}
