package term_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	httpctrl "github.com/secmon-lab/embiscope/pkg/controller/http"
	"github.com/secmon-lab/embiscope/pkg/controller/term"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/repository"
	"github.com/secmon-lab/embiscope/pkg/service/embi"
	"github.com/secmon-lab/embiscope/pkg/service/embiapi"
	"github.com/secmon-lab/embiscope/pkg/service/mapview"
	"github.com/secmon-lab/embiscope/pkg/usecase"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return ctxlog.With(context.Background(), logger)
}

func waitUntil(cond func() bool) bool {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func fileExists(path string) func() bool {
	return func() bool {
		_, err := os.Stat(path)
		return err == nil
	}
}

// newAPI starts an EMBI server over an in-memory dataset
func newAPI(t *testing.T) *embiapi.Client {
	t.Helper()
	ctx := testContext()

	table, err := embi.DefaultCountries()
	gt.NoError(t, err).Required()
	renderer, err := mapview.New(table)
	gt.NoError(t, err).Required()
	uc := usecase.NewEMBI(repository.NewMemory(), renderer)

	var observations []*model.Observation
	for i, date := range []types.Date{"2023-01-01", "2023-01-02", "2023-01-03"} {
		obs := model.NewObservation(date)
		obs.Set("Chile", 1.2+float64(i)/10)
		obs.Set("Ecuador", 12.5+float64(i))
		observations = append(observations, obs)
	}
	single := model.NewObservation("2023-01-03")
	single.Set("Chile", 1.4)
	single.Set("Ecuador", 14.5)
	single.Set("Perú", 1.6)
	observations[2] = single

	gt.NoError(t, uc.Import(ctx, &model.Dataset{
		Countries:    []types.Country{"Chile", "Ecuador", "Perú"},
		Observations: observations,
	})).Required()

	server, err := httpctrl.NewServer(ctx, ":0", uc)
	gt.NoError(t, err).Required()
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	client, err := embiapi.New(ts.URL)
	gt.NoError(t, err).Required()
	return client
}

func newViewer(t *testing.T, opts ...term.Option) (*term.Viewer, *syncBuffer, string) {
	t.Helper()
	out := &syncBuffer{}
	dir := t.TempDir()

	opts = append([]term.Option{
		term.WithOutputDir(dir),
		term.WithDefaultCountry("", 0),
	}, opts...)
	return term.NewViewer(newAPI(t), out, opts...), out, dir
}

func TestViewerStart(t *testing.T) {
	v, out, dir := newViewer(t)
	ctx := testContext()

	gt.NoError(t, v.Start(ctx)).Required()

	index, ok := v.Dashboard().Index()
	gt.True(t, ok)
	gt.Equal(t, index, 2)
	gt.S(t, out.String()).Contains("Fecha: 3 de enero de 2023")
	gt.S(t, out.String()).Contains("Datos disponibles: 1 de enero de 2023 - 3 de enero de 2023")

	preview, err := os.ReadFile(filepath.Join(dir, term.PreviewFileName))
	gt.NoError(t, err).Required()
	gt.S(t, string(preview)).Contains("EMBI LATAM (%)")

	start, end := v.View().RangeInputs()
	gt.Equal(t, start, types.Date("2023-01-01"))
	gt.Equal(t, end, types.Date("2023-01-03"))
}

func TestViewerNavigation(t *testing.T) {
	v, out, _ := newViewer(t)
	ctx := testContext()
	gt.NoError(t, v.Start(ctx)).Required()

	for _, tc := range []struct {
		cmd   string
		index int
	}{
		{"prev", 1},
		{"h", 0},
		{"h", 0},
		{"l", 1},
		{"next", 2},
		{"next", 2},
		{"goto 99", 2},
		{"goto 2023-01-02", 1},
		{"goto 0", 0},
	} {
		quit, err := v.Execute(ctx, tc.cmd)
		gt.NoError(t, err)
		gt.False(t, quit)

		index, _ := v.Dashboard().Index()
		gt.Equal(t, index, tc.index)
	}
	gt.Equal(t, v.View().CurrentDate(), "1 de enero de 2023")
	gt.S(t, out.String()).Contains("[0/2]")

	_, err := v.Execute(ctx, "goto first")
	gt.Error(t, err)

	_, err = v.Execute(ctx, "goto 2020-01-01")
	gt.Error(t, err)
	index, _ := v.Dashboard().Index()
	gt.Equal(t, index, 0)
}

func TestViewerCountry(t *testing.T) {
	v, out, dir := newViewer(t)
	ctx := testContext()
	gt.NoError(t, v.Start(ctx)).Required()

	t.Run("Select by GeoJSON name", func(t *testing.T) {
		_, err := v.Execute(ctx, "country Chile")
		gt.NoError(t, err).Required()

		title, visible := v.View().Chart()
		gt.True(t, visible)
		gt.Equal(t, title, "Histórico EMBI: Chile")
		gt.S(t, out.String()).Contains("3 puntos")
		gt.True(t, waitUntil(fileExists(filepath.Join(dir, "EMBI_Chile.png"))))
	})

	t.Run("Close", func(t *testing.T) {
		_, err := v.Execute(ctx, "close")
		gt.NoError(t, err)
		_, visible := v.View().Chart()
		gt.False(t, visible)
		gt.Equal(t, v.Dashboard().SelectedCountry(), types.Country(""))
	})

	t.Run("Map message", func(t *testing.T) {
		_, err := v.Execute(ctx, `message {"type":"country_click","country":"Ecuador"}`)
		gt.NoError(t, err)
		title, _ := v.View().Chart()
		gt.Equal(t, title, "Histórico EMBI: Ecuador")
		gt.True(t, waitUntil(fileExists(filepath.Join(dir, "EMBI_Ecuador.png"))))

		_, err = v.Execute(ctx, `message {"type":"resize"}`)
		gt.NoError(t, err)
		title, _ = v.View().Chart()
		gt.Equal(t, title, "Histórico EMBI: Ecuador")
	})

	t.Run("Unknown country keeps the chart", func(t *testing.T) {
		_, err := v.Execute(ctx, "country Atlantis")
		gt.Error(t, err)
		title, visible := v.View().Chart()
		gt.True(t, visible)
		gt.Equal(t, title, "Histórico EMBI: Ecuador")
	})
}

func TestViewerDownload(t *testing.T) {
	v, out, dir := newViewer(t)
	ctx := testContext()
	gt.NoError(t, v.Start(ctx)).Required()

	t.Run("All countries on the current date", func(t *testing.T) {
		_, err := v.Execute(ctx, "mode all")
		gt.NoError(t, err).Required()
		gt.S(t, out.String()).Contains("Campos de descarga: país=no rango=no")

		_, err = v.Execute(ctx, "download")
		gt.NoError(t, err).Required()

		path := filepath.Join(dir, "EMBI_Todos_2023-01-03.csv")
		gt.True(t, waitUntil(fileExists(path)))
		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.S(t, string(data)).Contains("2023-01-03,Perú,1.6")
	})

	t.Run("Single country requires a country", func(t *testing.T) {
		_, err := v.Execute(ctx, "mode single")
		gt.NoError(t, err).Required()
		gt.S(t, out.String()).Contains("Campos de descarga: país=sí rango=no")

		_, err = v.Execute(ctx, "download")
		gt.Error(t, err)

		_, err = v.Execute(ctx, "country-field Perú")
		gt.NoError(t, err)
		_, err = v.Execute(ctx, "download")
		gt.NoError(t, err)
		gt.True(t, waitUntil(fileExists(filepath.Join(dir, "EMBI_Perú_2023-01-03.csv"))))
	})

	t.Run("Range defaults to the full catalog", func(t *testing.T) {
		_, err := v.Execute(ctx, "mode range_all")
		gt.NoError(t, err).Required()
		_, err = v.Execute(ctx, "download")
		gt.NoError(t, err)
		gt.True(t, waitUntil(fileExists(filepath.Join(dir, "EMBI_Todos_2023-01-01_to_2023-01-03.csv"))))
	})

	t.Run("Explicit range", func(t *testing.T) {
		_, err := v.Execute(ctx, "mode range_single")
		gt.NoError(t, err).Required()
		_, err = v.Execute(ctx, "country-field Chile")
		gt.NoError(t, err)
		_, err = v.Execute(ctx, "range 2023-01-02 2023-01-03")
		gt.NoError(t, err)
		_, err = v.Execute(ctx, "download")
		gt.NoError(t, err)
		gt.True(t, waitUntil(fileExists(filepath.Join(dir, "EMBI_Chile_2023-01-02_to_2023-01-03.csv"))))
	})

	t.Run("Missing data is reported", func(t *testing.T) {
		_, err := v.Execute(ctx, "range 2020-01-01 2020-02-01")
		gt.NoError(t, err)
		_, err = v.Execute(ctx, "download")
		gt.NoError(t, err)
		gt.True(t, waitUntil(func() bool {
			return strings.Contains(out.String(), "no hay datos")
		}))
	})

	t.Run("Invalid mode", func(t *testing.T) {
		_, err := v.Execute(ctx, "mode weekly")
		gt.Error(t, err)
	})
}

func TestViewerRun(t *testing.T) {
	v, out, _ := newViewer(t)

	input := strings.Join([]string{
		"help",
		"prev",
		"bogus",
		"status",
		"quit",
		"next",
	}, "\n")
	gt.NoError(t, v.Run(testContext(), term.NewLineReader(strings.NewReader(input))))

	index, _ := v.Dashboard().Index()
	gt.Equal(t, index, 1)
	gt.S(t, out.String()).Contains("Comandos:")
	gt.S(t, out.String()).Contains("Error: unknown command")
	gt.S(t, out.String()).Contains("Índice 1 de 2, fecha 2023-01-02")
}

func TestViewerRun_EndOfInput(t *testing.T) {
	v, _, _ := newViewer(t)
	gt.NoError(t, v.Run(testContext(), term.NewLineReader(strings.NewReader("next\n"))))
}

func TestViewerDefaultCountry(t *testing.T) {
	v, _, dir := newViewer(t, term.WithDefaultCountry("Ecuador", 10*time.Millisecond))
	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	gt.NoError(t, v.Start(ctx)).Required()
	gt.True(t, waitUntil(func() bool {
		_, visible := v.View().Chart()
		return visible
	}))
	gt.Equal(t, v.Dashboard().SelectedCountry(), types.Country("Ecuador"))
	gt.True(t, waitUntil(fileExists(filepath.Join(dir, "EMBI_Ecuador.png"))))
}
