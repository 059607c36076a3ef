package embi

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"golang.org/x/text/encoding/charmap"
)

// DateColumn is the header of the date column
const DateColumn = "Fecha"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var spanishMonths = map[string]time.Month{
	"ene": time.January,
	"feb": time.February,
	"mar": time.March,
	"abr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dic": time.December,
}

// LoadFile reads and parses an EMBI history export
func LoadFile(path string, countries []types.Country) (*model.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read EMBI file", goerr.V("path", path))
	}

	ds, err := Parse(data, countries)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse EMBI file", goerr.V("path", path))
	}
	return ds, nil
}

// Parse decodes an EMBI history export. The first line is a title and is
// skipped; the second is the header with the date column and one column per
// country. Only the listed countries are kept. Rows with unparsable dates are
// dropped and the rest are sorted by date.
func Parse(data []byte, countries []types.Country) (*model.Dataset, error) {
	text, _ := Decode(data)

	// skip the title line
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		text = ""
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, goerr.New("header row is missing")
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read header row")
	}

	dateCol := -1
	columns := make(map[string]int)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == DateColumn {
			dateCol = i
		}
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}
	if dateCol < 0 {
		return nil, goerr.New("date column is missing", goerr.V("header", header))
	}

	ds := &model.Dataset{}
	for _, c := range countries {
		if _, ok := columns[c.String()]; ok {
			ds.Countries = append(ds.Countries, c)
		}
	}

	seen := make(map[types.Date]bool)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read row")
		}
		if dateCol >= len(record) {
			continue
		}

		date, err := ParseSpanishDate(record[dateCol])
		if err != nil || seen[date] {
			continue
		}
		seen[date] = true

		obs := model.NewObservation(date)
		for _, c := range ds.Countries {
			col := columns[c.String()]
			if col >= len(record) {
				continue
			}
			if v, ok := ParseValue(record[col]); ok {
				obs.Set(c, v)
			}
		}
		ds.Observations = append(ds.Observations, obs)
	}

	model.SortObservations(ds.Observations)
	return ds, nil
}

// Decode converts raw bytes to text. Valid UTF-8 is used as is; otherwise
// Windows-1252 and then ISO-8859-1 are tried. The name of the encoding used
// is returned.
func Decode(data []byte) (string, string) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), "utf-8"
	}

	if text, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil && !bytes.ContainsRune(text, utf8.RuneError) {
		return string(text), "windows-1252"
	}

	// ISO-8859-1 maps every byte
	text, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(text), "iso-8859-1"
}

// ParseSpanishDate parses dates such as "29-oct-07". Two-digit years up to 30
// are 20xx, the rest 19xx. Four-digit years are taken as is.
func ParseSpanishDate(s string) (types.Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return "", goerr.New("unexpected date format", goerr.V("date", s))
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", goerr.Wrap(err, "invalid day", goerr.V("date", s))
	}

	month, ok := spanishMonths[strings.ToLower(parts[1])]
	if !ok {
		return "", goerr.New("unknown month", goerr.V("date", s))
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 0 {
		return "", goerr.New("invalid year", goerr.V("date", s))
	}
	switch len(parts[2]) {
	case 1, 2:
		if year <= 30 {
			year += 2000
		} else {
			year += 1900
		}
	case 4:
	default:
		return "", goerr.New("invalid year", goerr.V("date", s))
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// reject overflow such as 31-feb
	if t.Day() != day || t.Month() != month {
		return "", goerr.New("day out of range", goerr.V("date", s))
	}
	return types.NewDate(t), nil
}

// ParseValue parses a spread that may use a decimal comma. Empty or
// unparsable cells are missing.
func ParseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
