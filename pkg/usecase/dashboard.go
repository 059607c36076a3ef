package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/utils/apperr"
	"github.com/secmon-lab/embiscope/pkg/utils/async"
)

// User facing messages
const (
	MessageDatesError    = "Error al cargar las fechas disponibles"
	MessageMapError      = "Error al cargar el mapa"
	MessageRangeRequired = "Por favor selecciona las fechas de inicio y fin"
)

const (
	// DefaultMapTimeout is the soft timeout for frame based map loads
	DefaultMapTimeout = 10 * time.Second
	// DefaultCountry is selected shortly after startup so the chart has content
	DefaultCountry types.Country = "Ecuador"
	// DefaultCountryDelay is the delay before DefaultCountry is selected
	DefaultCountryDelay = time.Second
)

// MessageTypeCountryClick is the message type posted by embedded maps
const MessageTypeCountryClick = "country_click"

// MapStrategy selects how the map document reaches the view
type MapStrategy int

const (
	// MapStrategyFragment fetches the document and injects it into the view
	MapStrategyFragment MapStrategy = iota
	// MapStrategyFrame points an embedded frame at the map URL and waits for
	// the view to report the load
	MapStrategyFrame
)

// Key is a navigation key
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
)

// DashboardOption configures a Dashboard
type DashboardOption func(*Dashboard)

// WithMapStrategy sets the map loading strategy
func WithMapStrategy(s MapStrategy) DashboardOption {
	return func(d *Dashboard) {
		d.strategy = s
	}
}

// WithMapTimeout sets the soft timeout of frame loads
func WithMapTimeout(timeout time.Duration) DashboardOption {
	return func(d *Dashboard) {
		d.mapTimeout = timeout
	}
}

// CountryMessage is the structured message embedded maps post when a country
// is clicked and the direct call is not available
type CountryMessage struct {
	Type    string `json:"type"`
	Country string `json:"country"`
}

// Dashboard drives the EMBI map dashboard: date catalog, map view, time
// navigation, download form and historical chart. View updates are issued
// outside the lock; network calls never hold it.
type Dashboard struct {
	client     interfaces.EMBIClient
	view       interfaces.View
	strategy   MapStrategy
	mapTimeout time.Duration

	mu       sync.Mutex
	catalog  *model.DateCatalog
	index    int
	mapSeq   uint64
	frame    pendingFrame
	selected types.Country
	chartSeq uint64
}

type pendingFrame struct {
	seq  uint64
	url  string
	date types.Date
}

// NewDashboard creates a dashboard bound to an API client and a view
func NewDashboard(client interfaces.EMBIClient, view interfaces.View, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		client:     client,
		view:       view,
		strategy:   MapStrategyFragment,
		mapTimeout: DefaultMapTimeout,
		index:      -1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Initialize loads the date catalog, configures the slider, labels and range
// inputs, and loads the map of the most recent date. On failure the error
// state is shown and navigation stays uninitialised.
func (d *Dashboard) Initialize(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	dates, err := d.client.Dates(ctx)
	if err != nil {
		d.view.ShowError(MessageDatesError)
		return goerr.Wrap(err, "failed to load date catalog")
	}

	catalog, err := model.NewDateCatalog(dates)
	if err != nil {
		d.view.ShowError(MessageDatesError)
		return goerr.Wrap(err, "failed to load date catalog")
	}

	d.mu.Lock()
	d.catalog = catalog
	d.index = catalog.LastIndex()
	d.mu.Unlock()

	first, last := catalog.First(), catalog.Last()
	d.view.SetSliderBounds(0, catalog.LastIndex())
	d.view.SetSliderValue(catalog.LastIndex())
	d.view.SetDateLabels(model.LongDate(first), model.LongDate(last))
	d.view.SetRangeInputs(first, last, first, last)

	logger.Info("Date catalog loaded",
		"count", catalog.Len(),
		"first", first,
		"last", last,
	)

	if err := d.LoadMap(ctx, last); err != nil {
		apperr.Warn(ctx, "Initial map load failed", err, "date", last)
	}
	return nil
}

// Index returns the current index. ok is false before the catalog is loaded.
func (d *Dashboard) Index() (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.catalog == nil {
		return -1, false
	}
	return d.index, true
}

// CurrentDate returns the date at the current index
func (d *Dashboard) CurrentDate() (types.Date, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.catalog == nil {
		return "", false
	}
	return d.catalog.At(d.index)
}

// Catalog returns the loaded catalog, or nil
func (d *Dashboard) Catalog() *model.DateCatalog {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.catalog
}

// LoadMap shows the loading placeholder and loads the map of date. Only the
// most recently issued load may update the view; older responses are dropped.
func (d *Dashboard) LoadMap(ctx context.Context, date types.Date) error {
	d.mu.Lock()
	d.mapSeq++
	seq := d.mapSeq
	d.mu.Unlock()

	d.view.ShowLoading()

	if d.strategy == MapStrategyFrame {
		d.loadFrame(ctx, seq, date)
		return nil
	}

	content, err := d.client.Map(ctx, date)
	if !d.isLatestMap(seq) {
		ctxlog.From(ctx).Debug("Discarding stale map response",
			"date", date,
			"seq", seq,
		)
		return nil
	}

	if err != nil {
		d.view.ShowError(MessageMapError)
		return goerr.Wrap(err, "failed to load map", goerr.V("date", date))
	}

	d.view.ShowMap(content)
	d.view.SetCurrentDate(model.LongDate(date))
	return nil
}

func (d *Dashboard) isLatestMap(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return seq == d.mapSeq
}

func (d *Dashboard) loadFrame(ctx context.Context, seq uint64, date types.Date) {
	url := d.client.MapURL(date)

	d.mu.Lock()
	d.frame = pendingFrame{seq: seq, url: url, date: date}
	d.mu.Unlock()

	d.view.SetMapFrame(url)

	timeout := d.mapTimeout
	async.DispatchAfter(ctx, timeout, func(ctx context.Context) error {
		d.mu.Lock()
		stillPending := d.frame.seq == seq
		d.mu.Unlock()

		if stillPending {
			ctxlog.From(ctx).Warn("Map frame is taking longer than expected",
				"date", date,
				"timeout", timeout,
			)
		}
		return nil
	})
}

// MapFrameLoaded is called by the view when the frame finished loading url.
// Loads for anything but the latest requested URL are ignored.
func (d *Dashboard) MapFrameLoaded(ctx context.Context, url string) {
	frame, ok := d.takeFrame(url)
	if !ok {
		ctxlog.From(ctx).Debug("Ignoring stale frame load", "url", url)
		return
	}

	d.view.RevealMap()
	d.view.SetCurrentDate(model.LongDate(frame.date))
}

// MapFrameFailed is called by the view when the frame could not load url
func (d *Dashboard) MapFrameFailed(ctx context.Context, url string) {
	frame, ok := d.takeFrame(url)
	if !ok {
		return
	}

	ctxlog.From(ctx).Warn("Map frame failed to load", "date", frame.date, "url", url)
	d.view.ShowError(MessageMapError)
}

func (d *Dashboard) takeFrame(url string) (pendingFrame, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.frame.seq == 0 || d.frame.seq != d.mapSeq || d.frame.url != url {
		return pendingFrame{}, false
	}
	frame := d.frame
	d.frame = pendingFrame{}
	return frame, true
}

// SetIndex moves to index i, clamped to the catalog bounds. It reports
// whether the index changed.
func (d *Dashboard) SetIndex(ctx context.Context, i int) (bool, error) {
	return d.move(ctx, func(c *model.DateCatalog, _ int) int {
		return c.Clamp(i)
	})
}

// SetDate moves to the index of date. Dates outside the catalog are an error.
func (d *Dashboard) SetDate(ctx context.Context, date types.Date) (bool, error) {
	d.mu.Lock()
	i := -1
	if d.catalog != nil {
		i = d.catalog.IndexOf(date)
	}
	d.mu.Unlock()

	if i < 0 {
		return false, goerr.Wrap(model.ErrNotFound, "date is not in the catalog", goerr.V("date", date))
	}
	return d.SetIndex(ctx, i)
}

// StepPrevious moves one date back. It is a no-op at the first date.
func (d *Dashboard) StepPrevious(ctx context.Context) (bool, error) {
	return d.move(ctx, func(c *model.DateCatalog, cur int) int {
		return c.Clamp(cur - 1)
	})
}

// StepNext moves one date forward. It is a no-op at the last date.
func (d *Dashboard) StepNext(ctx context.Context) (bool, error) {
	return d.move(ctx, func(c *model.DateCatalog, cur int) int {
		return c.Clamp(cur + 1)
	})
}

// HandleKey maps arrow keys to StepPrevious and StepNext
func (d *Dashboard) HandleKey(ctx context.Context, key Key) (bool, error) {
	switch key {
	case KeyLeft:
		return d.StepPrevious(ctx)
	case KeyRight:
		return d.StepNext(ctx)
	default:
		return false, nil
	}
}

func (d *Dashboard) move(ctx context.Context, next func(c *model.DateCatalog, cur int) int) (bool, error) {
	d.mu.Lock()
	if d.catalog == nil {
		d.mu.Unlock()
		return false, nil
	}

	target := next(d.catalog, d.index)
	if target == d.index {
		d.mu.Unlock()
		return false, nil
	}
	d.index = target
	date, _ := d.catalog.At(target)
	d.mu.Unlock()

	d.view.SetSliderValue(target)
	return true, d.LoadMap(ctx, date)
}

// UpdateVisibility shows the form groups relevant to mode
func (d *Dashboard) UpdateVisibility(mode types.DownloadMode) model.FieldVisibility {
	v := model.Visibility(mode)
	d.view.SetDownloadFields(v)
	return v
}

// Download builds the export URL for sel and navigates the view to it. For
// single-date modes the date is the one currently displayed. Range modes
// without both dates prompt the user and do not navigate.
func (d *Dashboard) Download(ctx context.Context, sel model.DownloadSelection) (string, error) {
	if !sel.Mode.IsRange() {
		if date, ok := d.CurrentDate(); ok {
			sel.Date = date
		}
	}

	url, err := model.BuildDownloadURL(sel)
	if err != nil {
		if errors.Is(err, model.ErrIncompleteRange) {
			d.view.Prompt(MessageRangeRequired)
		}
		return "", err
	}

	ctxlog.From(ctx).Info("Starting download", "mode", sel.Mode, "url", url)
	d.view.Navigate(url)
	return url, nil
}

// SelectedCountry returns the country whose chart is displayed or being fetched
func (d *Dashboard) SelectedCountry() types.Country {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selected
}

// SelectCountry fetches the history of country and redraws the chart.
// Selecting the remembered country again does nothing, even after a failed
// fetch; CloseChart or ClearCountryHover resets the selection. On fetch
// failure the previous chart stays in place.
func (d *Dashboard) SelectCountry(ctx context.Context, country types.Country) error {
	if country == "" {
		return nil
	}

	d.mu.Lock()
	if d.selected == country {
		d.mu.Unlock()
		return nil
	}
	d.selected = country
	d.chartSeq++
	seq := d.chartSeq
	d.mu.Unlock()

	series, err := d.client.Historical(ctx, country)

	d.mu.Lock()
	stale := seq != d.chartSeq
	d.mu.Unlock()

	if stale {
		ctxlog.From(ctx).Debug("Discarding stale historical response", "country", country)
		return nil
	}
	if err != nil {
		apperr.Warn(ctx, "Failed to load historical series", err, "country", country)
		return goerr.Wrap(err, "failed to load historical series", goerr.V("country", country))
	}

	d.view.SetChart(ChartTitle(country), series)
	d.view.ShowChart()
	return nil
}

// ChartTitle returns the chart title of a country
func ChartTitle(country types.Country) string {
	return fmt.Sprintf("Histórico EMBI: %s", country)
}

// CloseChart hides the chart panel and forgets the selection so the next
// selection of the same country fetches again
func (d *Dashboard) CloseChart() {
	d.mu.Lock()
	d.selected = ""
	d.chartSeq++
	d.mu.Unlock()

	d.view.HideChart()
}

// HandleCountryClick is the direct-call entry point used by embedded maps
func (d *Dashboard) HandleCountryClick(ctx context.Context, country string) error {
	return d.SelectCountry(ctx, types.Country(country))
}

// HandleCountryHover is the hover variant of HandleCountryClick
func (d *Dashboard) HandleCountryHover(ctx context.Context, country string) error {
	return d.SelectCountry(ctx, types.Country(country))
}

// ClearCountryHover forgets the hovered country without touching the chart
func (d *Dashboard) ClearCountryHover() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = ""
}

// HandleMessage decodes a structured message from an embedded map. Only
// country_click messages are acted on; other types are ignored.
func (d *Dashboard) HandleMessage(ctx context.Context, raw []byte) error {
	var msg CountryMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return goerr.Wrap(err, "invalid map message")
	}

	if msg.Type != MessageTypeCountryClick || msg.Country == "" {
		ctxlog.From(ctx).Debug("Ignoring map message", "type", msg.Type)
		return nil
	}
	return d.SelectCountry(ctx, types.Country(msg.Country))
}

// ScheduleDefaultCountry selects country after delay unless ctx ends first
func (d *Dashboard) ScheduleDefaultCountry(ctx context.Context, country types.Country, delay time.Duration) {
	async.DispatchAfter(ctx, delay, func(ctx context.Context) error {
		// failures are already logged by SelectCountry
		_ = d.SelectCountry(ctx, country)
		return nil
	})
}
