package embi

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var defaultCountries []byte

// DefaultCountries returns the built-in LATAM country table
func DefaultCountries() (*model.CountryTable, error) {
	return parseCountries(defaultCountries)
}

// LoadCountries reads a country table from a YAML file. An empty path
// returns the built-in table.
func LoadCountries(path string) (*model.CountryTable, error) {
	if path == "" {
		return DefaultCountries()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read country table", goerr.V("path", path))
	}

	table, err := parseCountries(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid country table", goerr.V("path", path))
	}
	return table, nil
}

func parseCountries(data []byte) (*model.CountryTable, error) {
	var table model.CountryTable
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		return nil, goerr.Wrap(err, "failed to decode country table")
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}
