package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

func TestVisibility(t *testing.T) {
	tests := []struct {
		mode    types.DownloadMode
		country bool
		rng     bool
	}{
		{types.DownloadModeSingle, true, false},
		{types.DownloadModeAll, false, false},
		{types.DownloadModeRangeSingle, true, true},
		{types.DownloadModeRangeAll, false, true},
		{types.DownloadMode("bogus"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			v := model.Visibility(tt.mode)
			gt.Equal(t, v.Country, tt.country)
			gt.Equal(t, v.Range, tt.rng)

			// Applying it again yields the same result
			gt.Equal(t, model.Visibility(tt.mode), v)
		})
	}
}

func TestBuildDownloadURL(t *testing.T) {
	tests := []struct {
		name     string
		sel      model.DownloadSelection
		expected string
	}{
		{
			name: "single country on one date",
			sel: model.DownloadSelection{
				Mode:    types.DownloadModeSingle,
				Country: "Ecuador",
				Date:    "2023-12-29",
			},
			expected: "/api/download/country/Ecuador/2023-12-29",
		},
		{
			name: "all countries on one date",
			sel: model.DownloadSelection{
				Mode:    types.DownloadModeAll,
				Country: "Ecuador",
				Date:    "2023-12-29",
			},
			expected: "/api/download/all/2023-12-29",
		},
		{
			name: "single country over range",
			sel: model.DownloadSelection{
				Mode:      types.DownloadModeRangeSingle,
				Country:   "Ecuador",
				StartDate: "2023-01-01",
				EndDate:   "2023-06-01",
			},
			expected: "/api/download/range/Ecuador/2023-01-01/2023-06-01",
		},
		{
			name: "all countries over range",
			sel: model.DownloadSelection{
				Mode:      types.DownloadModeRangeAll,
				StartDate: "2023-01-01",
				EndDate:   "2023-06-01",
			},
			expected: "/api/download/range/all/2023-01-01/2023-06-01",
		},
		{
			name: "country names are path escaped",
			sel: model.DownloadSelection{
				Mode:    types.DownloadModeSingle,
				Country: "REP DOM",
				Date:    "2023-01-02",
			},
			expected: "/api/download/country/REP%20DOM/2023-01-02",
		},
		{
			name: "reversed range is passed through",
			sel: model.DownloadSelection{
				Mode:      types.DownloadModeRangeAll,
				StartDate: "2023-06-01",
				EndDate:   "2023-01-01",
			},
			expected: "/api/download/range/all/2023-06-01/2023-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := model.BuildDownloadURL(tt.sel)
			gt.NoError(t, err)
			gt.Equal(t, url, tt.expected)
		})
	}
}

func TestBuildDownloadURL_IncompleteRange(t *testing.T) {
	tests := []struct {
		name string
		sel  model.DownloadSelection
	}{
		{
			name: "missing start date",
			sel: model.DownloadSelection{
				Mode:    types.DownloadModeRangeSingle,
				EndDate: "2023-06-01",
			},
		},
		{
			name: "missing end date",
			sel: model.DownloadSelection{
				Mode:      types.DownloadModeRangeAll,
				StartDate: "2023-01-01",
			},
		},
		{
			name: "missing both dates",
			sel: model.DownloadSelection{
				Mode:    types.DownloadModeRangeAll,
				Country: "Chile",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sel.Mode == types.DownloadModeRangeSingle {
				tt.sel.Country = "Ecuador"
			}
			url, err := model.BuildDownloadURL(tt.sel)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, model.ErrIncompleteRange))
			gt.Equal(t, url, "")
		})
	}
}

func TestBuildDownloadURL_InvalidSelection(t *testing.T) {
	t.Run("unknown mode", func(t *testing.T) {
		_, err := model.BuildDownloadURL(model.DownloadSelection{Mode: "bogus", Date: "2023-01-01"})
		gt.True(t, errors.Is(err, model.ErrInvalidMode))
	})

	t.Run("single without country", func(t *testing.T) {
		_, err := model.BuildDownloadURL(model.DownloadSelection{Mode: types.DownloadModeSingle, Date: "2023-01-01"})
		gt.Error(t, err)
	})

	t.Run("all without date", func(t *testing.T) {
		_, err := model.BuildDownloadURL(model.DownloadSelection{Mode: types.DownloadModeAll})
		gt.Error(t, err)
	})
}
