package model

import (
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// DownloadSelection is the user's choice of export scope. Which fields are
// relevant depends on Mode.
type DownloadSelection struct {
	Mode      types.DownloadMode
	Country   types.Country
	Date      types.Date // used by single and all
	StartDate types.Date // used by range modes
	EndDate   types.Date // used by range modes
}

// FieldVisibility tells which optional form groups are shown for a mode
type FieldVisibility struct {
	Country bool
	Range   bool
}

// Visibility returns which form groups are visible for the mode.
// Unknown modes hide everything.
func Visibility(mode types.DownloadMode) FieldVisibility {
	return FieldVisibility{
		Country: mode.IsSingleCountry(),
		Range:   mode.IsRange(),
	}
}

// BuildDownloadURL returns the export path for the selection. Range modes
// without both dates return ErrIncompleteRange. Date ordering is not checked.
func BuildDownloadURL(sel DownloadSelection) (string, error) {
	if !sel.Mode.IsValid() {
		return "", goerr.Wrap(ErrInvalidMode, "cannot build download URL", goerr.V("mode", sel.Mode))
	}

	if sel.Mode.IsSingleCountry() && sel.Country == "" {
		return "", goerr.New("country is required", goerr.V("mode", sel.Mode))
	}

	if sel.Mode.IsRange() {
		if sel.StartDate == "" || sel.EndDate == "" {
			return "", goerr.Wrap(ErrIncompleteRange, "cannot build download URL",
				goerr.V("start", sel.StartDate),
				goerr.V("end", sel.EndDate))
		}
	} else if sel.Date == "" {
		return "", goerr.New("date is required", goerr.V("mode", sel.Mode))
	}

	country := url.PathEscape(sel.Country.String())
	date := url.PathEscape(sel.Date.String())
	start := url.PathEscape(sel.StartDate.String())
	end := url.PathEscape(sel.EndDate.String())

	switch sel.Mode {
	case types.DownloadModeSingle:
		return "/api/download/country/" + country + "/" + date, nil
	case types.DownloadModeAll:
		return "/api/download/all/" + date, nil
	case types.DownloadModeRangeSingle:
		return "/api/download/range/" + country + "/" + start + "/" + end, nil
	default:
		return "/api/download/range/all/" + start + "/" + end, nil
	}
}

// Export is a generated CSV download
type Export struct {
	FileName string
	Data     []byte
}
