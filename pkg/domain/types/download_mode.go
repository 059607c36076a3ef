package types

// DownloadMode represents the scope of a data export
type DownloadMode string

const (
	// DownloadModeSingle exports one country on one date
	DownloadModeSingle DownloadMode = "single"
	// DownloadModeAll exports all countries on one date
	DownloadModeAll DownloadMode = "all"
	// DownloadModeRangeSingle exports one country over a date range
	DownloadModeRangeSingle DownloadMode = "range_single"
	// DownloadModeRangeAll exports all countries over a date range
	DownloadModeRangeAll DownloadMode = "range_all"
)

// AllDownloadModes returns every supported download mode
func AllDownloadModes() []DownloadMode {
	return []DownloadMode{
		DownloadModeSingle,
		DownloadModeAll,
		DownloadModeRangeSingle,
		DownloadModeRangeAll,
	}
}

// String returns the string representation
func (m DownloadMode) String() string {
	return string(m)
}

// IsValid checks if the mode is one of the supported modes
func (m DownloadMode) IsValid() bool {
	switch m {
	case DownloadModeSingle, DownloadModeAll, DownloadModeRangeSingle, DownloadModeRangeAll:
		return true
	default:
		return false
	}
}

// IsRange reports whether the mode covers a date range
func (m DownloadMode) IsRange() bool {
	return m == DownloadModeRangeSingle || m == DownloadModeRangeAll
}

// IsSingleCountry reports whether the mode targets one country
func (m DownloadMode) IsSingleCountry() bool {
	return m == DownloadModeSingle || m == DownloadModeRangeSingle
}
