package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/usecase"
	"github.com/secmon-lab/embiscope/pkg/utils/async"
)

// PreviewFileName is the map preview written into the output directory
const PreviewFileName = "embi_map.html"

// Client is the API surface used by the terminal viewer
type Client interface {
	interfaces.EMBIClient
	Download(ctx context.Context, ref string) (*model.Export, error)
	ChartPNG(ctx context.Context, country types.Country) ([]byte, error)
}

// LineReader reads one command line at a time. *term.Terminal satisfies it.
type LineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

// NewLineReader reads lines from a plain reader such as a pipe
func NewLineReader(r io.Reader) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (s *scannerReader) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// Viewer drives a Dashboard from text commands
type Viewer struct {
	client    Client
	view      *View
	dashboard *usecase.Dashboard
	outputDir string

	defaultCountry types.Country
	defaultDelay   time.Duration

	form model.DownloadSelection
}

// Option configures a Viewer
type Option func(*Viewer)

// WithOutputDir sets where the map preview, downloads and charts are saved
func WithOutputDir(dir string) Option {
	return func(v *Viewer) {
		v.outputDir = dir
	}
}

// WithDefaultCountry selects country after delay once the viewer starts.
// An empty country disables the selection.
func WithDefaultCountry(country types.Country, delay time.Duration) Option {
	return func(v *Viewer) {
		v.defaultCountry = country
		v.defaultDelay = delay
	}
}

// NewViewer creates a viewer printing to out
func NewViewer(client Client, out io.Writer, opts ...Option) *Viewer {
	v := &Viewer{
		client:         client,
		outputDir:      ".",
		defaultCountry: usecase.DefaultCountry,
		defaultDelay:   usecase.DefaultCountryDelay,
		form:           model.DownloadSelection{Mode: types.DownloadModeSingle},
	}
	for _, opt := range opts {
		opt(v)
	}

	v.view = NewView(out, filepath.Join(v.outputDir, PreviewFileName))
	v.dashboard = usecase.NewDashboard(client, v.view)
	return v
}

// View returns the view
func (v *Viewer) View() *View {
	return v.view
}

// Dashboard returns the dashboard driven by the viewer
func (v *Viewer) Dashboard() *usecase.Dashboard {
	return v.dashboard
}

// Start binds the view hooks to ctx, loads the catalog and schedules the
// default country
func (v *Viewer) Start(ctx context.Context) error {
	v.view.setHooks(
		func(url string) { v.download(ctx, url) },
		func(series *model.HistoricalSeries) { v.saveChart(ctx, series.Country) },
	)

	if err := v.dashboard.Initialize(ctx); err != nil {
		return err
	}
	v.dashboard.UpdateVisibility(v.form.Mode)

	if v.defaultCountry != "" {
		v.dashboard.ScheduleDefaultCountry(ctx, v.defaultCountry, v.defaultDelay)
	}
	return nil
}

// Run starts the viewer and executes commands until quit or end of input
func (v *Viewer) Run(ctx context.Context, rl LineReader) error {
	sessionID, err := types.NewSessionID()
	if err != nil {
		return goerr.Wrap(err, "failed to create session ID")
	}
	ctx = ctxlog.With(ctx, ctxlog.From(ctx).With("session_id", sessionID.String()))
	ctxlog.From(ctx).Info("Viewer session started", "output_dir", v.outputDir)

	if err := v.Start(ctx); err != nil {
		return err
	}
	v.view.Printf("Escribe 'help' para ver los comandos")

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "failed to read command")
		}

		quit, err := v.Execute(ctx, line)
		if err != nil {
			ctxlog.From(ctx).Debug("Command failed", "command", line, "error", err)
			v.view.Printf("Error: %s", err.Error())
		}
		if quit {
			return nil
		}
	}
}

const helpText = `Comandos:
  prev | next | h | l        fecha anterior / siguiente
  goto N | goto FECHA        ir al índice N o a la fecha (YYYY-MM-DD)
  country NAME               mostrar el histórico de un país
  hover NAME | unhover       pasar el cursor sobre un país
  close                      cerrar el gráfico
  message JSON               mensaje del mapa ({"type":"country_click","country":"Chile"})
  mode MODE                  single | all | range_single | range_all
  country-field NAME         país de la descarga
  range START END            fechas de la descarga (YYYY-MM-DD)
  download                   descargar CSV
  status                     estado actual
  quit                       salir`

// Execute runs one command line. quit is true when the viewer should stop.
func (v *Viewer) Execute(ctx context.Context, line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
		return false, nil

	case "quit", "exit", "q":
		return true, nil

	case "help", "?":
		v.view.Printf("%s", helpText)

	case "prev":
		_, err = v.dashboard.StepPrevious(ctx)
	case "next":
		_, err = v.dashboard.StepNext(ctx)
	case "h":
		_, err = v.dashboard.HandleKey(ctx, usecase.KeyLeft)
	case "l":
		_, err = v.dashboard.HandleKey(ctx, usecase.KeyRight)

	case "goto":
		if i, convErr := strconv.Atoi(arg); convErr == nil {
			_, err = v.dashboard.SetIndex(ctx, i)
			break
		}
		date := types.Date(arg)
		if date.Validate() != nil {
			return false, goerr.New("goto requires an index or a date", goerr.V("arg", arg))
		}
		_, err = v.dashboard.SetDate(ctx, date)

	case "country":
		if arg == "" {
			return false, goerr.New("country requires a name")
		}
		err = v.dashboard.HandleCountryClick(ctx, arg)
	case "hover":
		err = v.dashboard.HandleCountryHover(ctx, arg)
	case "unhover":
		v.dashboard.ClearCountryHover()
	case "close":
		v.dashboard.CloseChart()
	case "message":
		err = v.dashboard.HandleMessage(ctx, []byte(arg))

	case "mode":
		mode := types.DownloadMode(arg)
		if !mode.IsValid() {
			return false, goerr.Wrap(model.ErrInvalidMode, "unknown mode", goerr.V("mode", arg))
		}
		v.form.Mode = mode
		v.dashboard.UpdateVisibility(mode)
	case "country-field":
		v.form.Country = types.Country(arg)
	case "range":
		fields := strings.Fields(arg)
		if len(fields) != 2 {
			return false, goerr.New("range requires START and END")
		}
		v.form.StartDate, v.form.EndDate = types.Date(fields[0]), types.Date(fields[1])
	case "download":
		_, err = v.dashboard.Download(ctx, v.selection())

	case "status":
		v.printStatus()

	default:
		return false, goerr.New("unknown command, try 'help'", goerr.V("command", cmd))
	}

	return false, err
}

// selection fills unset range dates from the dashboard defaults
func (v *Viewer) selection() model.DownloadSelection {
	sel := v.form
	start, end := v.view.RangeInputs()
	if sel.StartDate == "" {
		sel.StartDate = start
	}
	if sel.EndDate == "" {
		sel.EndDate = end
	}
	return sel
}

func (v *Viewer) printStatus() {
	date, ok := v.dashboard.CurrentDate()
	if !ok {
		v.view.Printf("Sin fechas cargadas")
		return
	}
	index, _ := v.dashboard.Index()
	v.view.Printf("Índice %d de %d, fecha %s", index, v.dashboard.Catalog().LastIndex(), date)

	if title, visible := v.view.Chart(); visible {
		v.view.Printf("Gráfico: %s", title)
	}
	v.view.Printf("Descarga: modo=%s país=%s rango=%s..%s",
		v.form.Mode, v.form.Country, v.form.StartDate, v.form.EndDate)
}

func (v *Viewer) download(ctx context.Context, url string) {
	async.Dispatch(ctx, func(ctx context.Context) error {
		export, err := v.client.Download(ctx, url)
		if errors.Is(err, model.ErrNotFound) {
			v.view.Printf("Error: no hay datos para %s", url)
			return nil
		}
		if err != nil {
			v.view.Printf("Error: la descarga falló")
			return err
		}

		path := filepath.Join(v.outputDir, filepath.Base(export.FileName))
		if err := os.WriteFile(path, export.Data, 0o644); err != nil {
			return goerr.Wrap(err, "failed to save download", goerr.V("path", path))
		}
		v.view.Printf("Descargado: %s (%d bytes)", path, len(export.Data))
		return nil
	})
}

func (v *Viewer) saveChart(ctx context.Context, country types.Country) {
	async.Dispatch(ctx, func(ctx context.Context) error {
		png, err := v.client.ChartPNG(ctx, country)
		if errors.Is(err, model.ErrNotFound) {
			ctxlog.From(ctx).Debug("Not enough data for chart image", "country", country)
			return nil
		}
		if err != nil {
			return err
		}

		path := filepath.Join(v.outputDir, chartFileName(country))
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return goerr.Wrap(err, "failed to save chart", goerr.V("path", path))
		}
		v.view.Printf("Gráfico guardado: %s", path)
		return nil
	})
}

func chartFileName(country types.Country) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, country.String())
	return fmt.Sprintf("EMBI_%s.png", name)
}
