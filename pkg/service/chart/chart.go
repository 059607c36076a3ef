package chart

import (
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotEnoughPoints is returned when a series is too short to draw
var ErrNotEnoughPoints = goerr.New("at least two points are required to draw a chart")

var (
	lineColor = drawing.Color{R: 231, G: 76, B: 60, A: 255}
	textColor = drawing.Color{R: 52, G: 58, B: 64, A: 255}
	gridColor = drawing.Color{R: 222, G: 226, B: 230, A: 255}
)

// LineHTML writes an interactive line chart page of a historical series
func LineHTML(w io.Writer, title string, series *model.HistoricalSeries) error {
	if err := series.Validate(); err != nil {
		return err
	}

	data := make([]opts.LineData, 0, series.Len())
	for _, v := range series.Values {
		data = append(data, opts.LineData{Value: v})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100%",
			Height:    "480px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "EMBI (%)",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
	)

	line.SetXAxis(series.Labels).
		AddSeries(series.Country.String(), data).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(false),
		}))

	if err := line.Render(w); err != nil {
		return goerr.Wrap(err, "failed to render line chart", goerr.V("country", series.Country))
	}
	return nil
}

// LinePNG writes a PNG line chart of a historical series
func LinePNG(w io.Writer, title string, series *model.HistoricalSeries) error {
	if err := series.Validate(); err != nil {
		return err
	}
	if series.Len() < 2 {
		return goerr.Wrap(ErrNotEnoughPoints, "cannot draw chart",
			goerr.V("country", series.Country),
			goerr.V("points", series.Len()))
	}

	xs := make([]time.Time, 0, series.Len())
	for _, label := range series.Labels {
		t, err := types.Date(label).Time()
		if err != nil {
			return goerr.Wrap(err, "invalid series label", goerr.V("country", series.Country))
		}
		xs = append(xs, t)
	}

	graph := gochart.Chart{
		Title: title,
		TitleStyle: gochart.Style{
			FontSize:  14,
			FontColor: textColor,
		},
		Width:  960,
		Height: 400,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeDateValueFormatter,
			Style: gochart.Style{
				FontColor: textColor,
			},
		},
		YAxis: gochart.YAxis{
			Name: "EMBI (%)",
			NameStyle: gochart.Style{
				FontColor: textColor,
			},
			Style: gochart.Style{
				FontColor: textColor,
			},
			GridMajorStyle: gochart.Style{
				StrokeColor: gridColor,
				StrokeWidth: 1,
			},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    series.Country.String(),
				XValues: xs,
				YValues: series.Values,
				Style: gochart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
				},
			},
		},
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return goerr.Wrap(err, "failed to render PNG chart", goerr.V("country", series.Country))
	}
	return nil
}
