package frontend_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/embiscope/frontend"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

func TestNewIndex(t *testing.T) {
	idx := frontend.NewIndex([]types.Date{"2023-01-01", "2023-03-15"}, []types.Country{"Chile"})
	gt.Equal(t, idx.Latest, types.Date("2023-03-15"))
	gt.Equal(t, idx.Labels, []string{"1 de enero de 2023", "15 de marzo de 2023"})
	gt.Equal(t, idx.LastIndex(), 1)

	empty := frontend.NewIndex(nil, nil)
	gt.Equal(t, empty.Latest, types.Date(""))
	gt.Equal(t, empty.LastIndex(), -1)
}

func TestHomeRender(t *testing.T) {
	home, err := frontend.NewHome()
	gt.NoError(t, err).Required()

	t.Run("With dates", func(t *testing.T) {
		var buf bytes.Buffer
		idx := frontend.NewIndex([]types.Date{"2023-01-01", "2023-01-02", "2023-01-03"}, []types.Country{"Chile", "REP DOM"})
		gt.NoError(t, home.Render(&buf, idx)).Required()

		html := buf.String()
		gt.S(t, html).Contains(`src="/api/map/2023-01-03"`)
		gt.S(t, html).Contains(`max="2" value="2"`)
		gt.S(t, html).Contains("1 de enero de 2023")
		gt.S(t, html).Contains(`min="2023-01-01"`)
		gt.S(t, html).Contains(`<option value="REP DOM">`)
		gt.S(t, html).Contains(`"2023-01-02"`)
		gt.S(t, html).NotContains("No data available")
	})

	t.Run("Without dates", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, home.Render(&buf, frontend.NewIndex(nil, nil))).Required()
		gt.S(t, buf.String()).Contains("No data available")
		gt.S(t, buf.String()).NotContains("slider")
	})
}
