package term

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

var _ interfaces.View = (*View)(nil)

// View prints dashboard state as text lines. Map documents are written to a
// preview file that can be opened in a browser.
type View struct {
	mu  sync.Mutex
	out io.Writer

	previewPath string
	onNavigate  func(url string)
	onChart     func(series *model.HistoricalSeries)

	minIndex, maxIndex int
	index              int
	currentDate        string
	rangeStart         types.Date
	rangeEnd           types.Date
	chartTitle         string
	chartVisible       bool
}

// NewView creates a view writing to out. An empty previewPath keeps map
// documents in memory only.
func NewView(out io.Writer, previewPath string) *View {
	return &View{
		out:         out,
		previewPath: previewPath,
	}
}

// Printf writes one line to the output
func (v *View) Printf(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.printf(format, args...)
}

func (v *View) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(v.out, format+"\n", args...)
}

// ShowLoading implements interfaces.View
func (v *View) ShowLoading() {
	v.Printf("Cargando mapa...")
}

// ShowMap implements interfaces.View
func (v *View) ShowMap(content string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.previewPath == "" {
		v.printf("Mapa recibido (%d bytes)", len(content))
		return
	}
	if err := os.WriteFile(v.previewPath, []byte(content), 0o644); err != nil {
		v.printf("Error: no se pudo guardar el mapa: %v", err)
		return
	}
	v.printf("Mapa actualizado: %s", v.previewPath)
}

// SetMapFrame implements interfaces.View
func (v *View) SetMapFrame(url string) {
	v.Printf("Mapa: %s", url)
}

// RevealMap implements interfaces.View
func (v *View) RevealMap() {}

// ShowError implements interfaces.View
func (v *View) ShowError(message string) {
	v.Printf("Error: %s", message)
}

// SetSliderBounds implements interfaces.View
func (v *View) SetSliderBounds(minIndex, maxIndex int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.minIndex, v.maxIndex = minIndex, maxIndex
}

// SetSliderValue implements interfaces.View
func (v *View) SetSliderValue(index int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.index = index
	v.printf("[%d/%d]", index, v.maxIndex)
}

// SetDateLabels implements interfaces.View
func (v *View) SetDateLabels(start, end string) {
	v.Printf("Datos disponibles: %s - %s", start, end)
}

// SetCurrentDate implements interfaces.View
func (v *View) SetCurrentDate(label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.currentDate = label
	v.printf("Fecha: %s", label)
}

// SetRangeInputs implements interfaces.View. The bounds are informational;
// only the initial values are kept as the default download range.
func (v *View) SetRangeInputs(minDate, maxDate, start, end types.Date) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rangeStart, v.rangeEnd = start, end
}

// SetDownloadFields implements interfaces.View
func (v *View) SetDownloadFields(visibility model.FieldVisibility) {
	v.Printf("Campos de descarga: país=%s rango=%s", onOff(visibility.Country), onOff(visibility.Range))
}

// Prompt implements interfaces.View
func (v *View) Prompt(message string) {
	v.Printf("! %s", message)
}

// Navigate implements interfaces.View
func (v *View) Navigate(url string) {
	v.mu.Lock()
	fn := v.onNavigate
	v.mu.Unlock()

	if fn == nil {
		v.Printf("Descarga: %s", url)
		return
	}
	fn(url)
}

// SetChart implements interfaces.View
func (v *View) SetChart(title string, series *model.HistoricalSeries) {
	v.mu.Lock()
	v.chartTitle = title
	fn := v.onChart
	if n := series.Len(); n > 0 {
		v.printf("%s: %d puntos, último %s = %.2f%%", title, n, series.Labels[n-1], series.Values[n-1])
	} else {
		v.printf("%s: sin datos", title)
	}
	v.mu.Unlock()

	if fn != nil {
		fn(series)
	}
}

// ShowChart implements interfaces.View
func (v *View) ShowChart() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.chartVisible = true
}

// HideChart implements interfaces.View
func (v *View) HideChart() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.chartVisible {
		v.printf("Gráfico cerrado")
	}
	v.chartVisible = false
	v.chartTitle = ""
}

// RangeInputs returns the default download range set by the dashboard
func (v *View) RangeInputs() (types.Date, types.Date) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rangeStart, v.rangeEnd
}

// Chart returns the title of the visible chart
func (v *View) Chart() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.chartTitle, v.chartVisible
}

// CurrentDate returns the label of the displayed date
func (v *View) CurrentDate() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentDate
}

func (v *View) setHooks(onNavigate func(string), onChart func(*model.HistoricalSeries)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onNavigate = onNavigate
	v.onChart = onChart
}

func onOff(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}
