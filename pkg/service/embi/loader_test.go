package embi_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/service/embi"
	"golang.org/x/text/encoding/charmap"
)

const sampleCSV = "Serie Histórica Spread del EMBI\n" +
	"Fecha;Argentina;Chile;Perú;Otro\n" +
	"02-ene-23;2.510,5;1,35;1,90;9\n" +
	"29-dic-22;2.300;1,40;;9\n" +
	"fecha invalida;1;1;1;1\n" +
	"31-oct-07;3,2;0,95;1,50;9\n"

func TestParse(t *testing.T) {
	countries := []types.Country{"Argentina", "Chile", "Perú", "Brasil"}

	ds, err := embi.Parse([]byte(sampleCSV), countries)
	gt.NoError(t, err).Required()

	// Brasil is not a column, Otro is not a listed country
	gt.Equal(t, ds.Countries, []types.Country{"Argentina", "Chile", "Perú"})

	gt.Equal(t, ds.Dates(), []types.Date{"2007-10-31", "2022-12-29", "2023-01-02"})

	first := ds.Observations[0]
	v, ok := first.Value("Chile")
	gt.True(t, ok)
	gt.Equal(t, v, 0.95)

	missing := ds.Observations[1]
	_, ok = missing.Value("Perú")
	gt.False(t, ok)

	// thousands separators are not supported, so the value is missing
	last := ds.Observations[2]
	_, ok = last.Value("Argentina")
	gt.False(t, ok)
	v, ok = last.Value("Perú")
	gt.True(t, ok)
	gt.Equal(t, v, 1.90)
}

func TestParse_Errors(t *testing.T) {
	t.Run("Missing header", func(t *testing.T) {
		_, err := embi.Parse([]byte("title only\n"), nil)
		gt.Error(t, err)
	})

	t.Run("Missing date column", func(t *testing.T) {
		_, err := embi.Parse([]byte("title\nDate;Chile\n01-ene-23;1\n"), nil)
		gt.Error(t, err)
	})
}

func TestParse_Windows1252(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String(sampleCSV)
	gt.NoError(t, err).Required()

	text, name := embi.Decode([]byte(encoded))
	gt.Equal(t, name, "windows-1252")
	gt.S(t, text).Contains("Perú")

	ds, err := embi.Parse([]byte(encoded), []types.Country{"Perú"})
	gt.NoError(t, err).Required()
	gt.Equal(t, ds.Countries, []types.Country{"Perú"})
}

func TestDecode_UTF8BOM(t *testing.T) {
	text, name := embi.Decode(append([]byte{0xEF, 0xBB, 0xBF}, []byte("México")...))
	gt.Equal(t, name, "utf-8")
	gt.Equal(t, text, "México")
}

func TestParseSpanishDate(t *testing.T) {
	testCases := []struct {
		input    string
		expected types.Date
		valid    bool
	}{
		{"29-oct-07", "2007-10-29", true},
		{"1-ENE-30", "2030-01-01", true},
		{"15-ago-31", "1931-08-15", true},
		{"05-dic-99", "1999-12-05", true},
		{"05-dic-2001", "2001-12-05", true},
		{"31-feb-20", "", false},
		{"01-xyz-20", "", false},
		{"01/01/2020", "", false},
		{"aa-ene-20", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d, err := embi.ParseSpanishDate(tc.input)
			if !tc.valid {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, d, tc.expected)
		})
	}
}

func TestParseValue(t *testing.T) {
	v, ok := embi.ParseValue(" 4,25 ")
	gt.True(t, ok)
	gt.Equal(t, v, 4.25)

	v, ok = embi.ParseValue("3.5")
	gt.True(t, ok)
	gt.Equal(t, v, 3.5)

	for _, s := range []string{"", "  ", "n/d", "NaN", "Inf"} {
		_, ok := embi.ParseValue(s)
		gt.False(t, ok)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embi.csv")
	gt.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0600)).Required()

	ds, err := embi.LoadFile(path, []types.Country{"Chile"})
	gt.NoError(t, err).Required()
	gt.Equal(t, len(ds.Observations), 3)

	_, err = embi.LoadFile(filepath.Join(t.TempDir(), "missing.csv"), nil)
	gt.Error(t, err)
}

func TestDefaultCountries(t *testing.T) {
	table, err := embi.DefaultCountries()
	gt.NoError(t, err).Required()
	gt.Equal(t, len(table.Countries), 17)

	names := table.Names()
	gt.Equal(t, names[0], types.Country("Argentina"))
	gt.Equal(t, names[16], types.Country("REP DOM"))

	resolved, err := table.Resolve("Dominican Republic")
	gt.NoError(t, err)
	gt.Equal(t, resolved, types.Country("REP DOM"))

	info, ok := table.Find("Perú")
	gt.True(t, ok)
	gt.Equal(t, info.Coords[0], -9.2)
	gt.True(t, info.HasCallout())
}

func TestLoadCountries(t *testing.T) {
	t.Run("Custom table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "countries.yaml")
		body := "countries:\n  - name: Chile\n    coords: [-35.7, -71.5]\n"
		gt.NoError(t, os.WriteFile(path, []byte(body), 0600)).Required()

		table, err := embi.LoadCountries(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, table.Names(), []types.Country{"Chile"})

		info, _ := table.Find("Chile")
		gt.False(t, info.HasCallout())
	})

	t.Run("Unknown fields are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "countries.yaml")
		body := "countries:\n  - name: Chile\n    colour: red\n"
		gt.NoError(t, os.WriteFile(path, []byte(body), 0600)).Required()

		_, err := embi.LoadCountries(path)
		gt.Error(t, err)
	})

	t.Run("Empty table is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "countries.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("countries: []\n"), 0600)).Required()

		_, err := embi.LoadCountries(path)
		gt.Error(t, err)
	})

	t.Run("Empty path uses the built-in table", func(t *testing.T) {
		table, err := embi.LoadCountries("")
		gt.NoError(t, err)
		gt.Equal(t, len(table.Countries), 17)
	})
}
