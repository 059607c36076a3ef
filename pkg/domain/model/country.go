package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// LatLng is a [latitude, longitude] pair
type LatLng [2]float64

// CountryInfo describes how a dataset country is located and labelled on the map
type CountryInfo struct {
	Name    types.Country `yaml:"name"`
	Aliases []string      `yaml:"aliases"` // GeoJSON names (e.g. "Peru" for "Perú")
	Coords  LatLng        `yaml:"coords"`
	Label   LatLng        `yaml:"label"` // where the value label is drawn; defaults to Coords
}

// Validate validates the country info
func (c *CountryInfo) Validate() error {
	if c.Name == "" {
		return goerr.New("country name is required")
	}
	return nil
}

// LabelPosition returns the label position, falling back to the country coordinates
func (c *CountryInfo) LabelPosition() LatLng {
	if c.Label == (LatLng{}) {
		return c.Coords
	}
	return c.Label
}

// HasCallout reports whether the label is offset from the country and needs a line
func (c *CountryInfo) HasCallout() bool {
	return c.LabelPosition() != c.Coords
}

// CountryTable is the ordered list of countries shown on the map
type CountryTable struct {
	Countries []CountryInfo `yaml:"countries"`
}

// Validate validates the table
func (t *CountryTable) Validate() error {
	if len(t.Countries) == 0 {
		return goerr.New("at least one country is required")
	}

	seen := make(map[types.Country]bool)
	for i := range t.Countries {
		c := &t.Countries[i]
		if err := c.Validate(); err != nil {
			return goerr.Wrap(err, "invalid country", goerr.V("index", i))
		}
		if seen[c.Name] {
			return goerr.New("duplicate country", goerr.V("name", c.Name))
		}
		seen[c.Name] = true
	}
	return nil
}

// Names returns the dataset names in table order
func (t *CountryTable) Names() []types.Country {
	names := make([]types.Country, 0, len(t.Countries))
	for _, c := range t.Countries {
		names = append(names, c.Name)
	}
	return names
}

// Find looks up a country by dataset name
func (t *CountryTable) Find(name types.Country) (*CountryInfo, bool) {
	for i := range t.Countries {
		if t.Countries[i].Name == name {
			return &t.Countries[i], true
		}
	}
	return nil, false
}

// Resolve maps a dataset name or a GeoJSON alias to the dataset name
func (t *CountryTable) Resolve(name string) (types.Country, error) {
	for _, c := range t.Countries {
		if c.Name.String() == name {
			return c.Name, nil
		}
	}
	for _, c := range t.Countries {
		for _, alias := range c.Aliases {
			if alias == name {
				return c.Name, nil
			}
		}
	}
	return "", goerr.Wrap(ErrCountryNotFound, "cannot resolve country", goerr.V("name", name))
}

// GeoNames returns a GeoJSON name -> dataset name lookup
func (t *CountryTable) GeoNames() map[string]types.Country {
	m := make(map[string]types.Country)
	for _, c := range t.Countries {
		m[c.Name.String()] = c.Name
		for _, alias := range c.Aliases {
			m[alias] = c.Name
		}
	}
	return m
}
