package interfaces

//go:generate moq -out mocks/view_mock.go -pkg mocks . View

import (
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// View is the render surface driven by the dashboard. Implementations must
// not block; they only reflect state.
type View interface {
	// Map region
	ShowLoading()
	ShowMap(content string)
	SetMapFrame(url string)
	RevealMap()
	ShowError(message string)

	// Time navigation
	SetSliderBounds(minIndex, maxIndex int)
	SetSliderValue(index int)
	SetDateLabels(start, end string)
	SetCurrentDate(label string)

	// Download form
	SetRangeInputs(minDate, maxDate, start, end types.Date)
	SetDownloadFields(visibility model.FieldVisibility)
	Prompt(message string)
	Navigate(url string)

	// Historical chart panel
	SetChart(title string, series *model.HistoricalSeries)
	ShowChart()
	HideChart()
}
