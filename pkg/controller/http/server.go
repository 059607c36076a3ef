package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/frontend"
	slackCtrl "github.com/secmon-lab/embiscope/pkg/controller/slack"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/service/chart"
	"github.com/secmon-lab/embiscope/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
	embi   *usecase.EMBI
	home   *frontend.Home

	slackHandler *slackCtrl.Handler
}

// Option configures a Server
type Option func(*Server)

// WithSlackHandler mounts the slash command endpoint
func WithSlackHandler(h *slackCtrl.Handler) Option {
	return func(s *Server) {
		s.slackHandler = h
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, embi *usecase.EMBI, opts ...Option) (*Server, error) {
	if embi == nil {
		return nil, goerr.New("EMBI use case is required")
	}

	home, err := frontend.NewHome()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	s := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
		embi:   embi,
		home:   home,
	}
	for _, opt := range opts {
		opt(s)
	}

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/dates", s.handleDates)
		r.Get("/map/{date}", s.handleMap)
		r.Get("/debug/map/{date}", s.handleDebugMap)
		r.Get("/historical/{country}", s.handleHistorical)
		r.Get("/chart/{country}.png", s.handleChartPNG)

		r.Route("/download", func(r chi.Router) {
			r.Get("/country/{country}/{date}", s.handleDownloadCountryDate)
			r.Get("/all/{date}", s.handleDownloadAllDate)
			r.Get("/range/all/{start}/{end}", s.handleDownloadRangeAll)
			r.Get("/range/{country}/{start}/{end}", s.handleDownloadRangeCountry)
		})
	})

	if s.slackHandler != nil {
		router.Post("/hooks/slack/command", s.slackHandler.HandleCommand)
	}

	router.Get("/chart/{country}", s.handleChartPage)
	router.Get("/", s.handleHome)

	return s, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "embiscope",
	})
}

type datesResponse struct {
	Dates []types.Date `json:"dates"`
	Count int          `json:"count"`
}

func (s *Server) handleDates(w http.ResponseWriter, r *http.Request) {
	dates, err := s.embi.Dates(r.Context())
	if err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, err, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, datesResponse{Dates: dates, Count: len(dates)})
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	date := types.Date(chi.URLParam(r, "date"))

	doc, err := s.embi.MapHTML(r.Context(), date)
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to render map", "error", err, "date", date)
		writeHTML(w, r, http.StatusInternalServerError,
			[]byte("<html><body><h2>Error generating map</h2></body></html>"))
		return
	}
	writeHTML(w, r, http.StatusOK, doc)
}

var debugErrorTemplate = template.Must(template.New("debug").Parse(
	`<h1>Debug Error</h1><pre>{{ . }}</pre>`))

func (s *Server) handleDebugMap(w http.ResponseWriter, r *http.Request) {
	date := types.Date(chi.URLParam(r, "date"))

	doc, err := s.embi.MapHTML(r.Context(), date)
	if err != nil {
		var buf bytes.Buffer
		if err := debugErrorTemplate.Execute(&buf, fmt.Sprintf("%+v", err)); err != nil {
			ctxlog.From(r.Context()).Error("Failed to render debug error", "error", err)
		}
		writeHTML(w, r, http.StatusInternalServerError, buf.Bytes())
		return
	}
	writeHTML(w, r, http.StatusOK, doc)
}

func (s *Server) handleHistorical(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "country")

	series, err := s.embi.Historical(r.Context(), name)
	if errors.Is(err, model.ErrCountryNotFound) {
		writeJSONError(w, r, http.StatusNotFound, err, fmt.Sprintf("Country %s not found", name))
		return
	}
	if err != nil {
		writeJSONError(w, r, http.StatusInternalServerError, err, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, series)
}

func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	series, ok := s.chartSeries(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := chart.LinePNG(&buf, usecase.ChartTitle(series.Country), series); err != nil {
		s.chartError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write chart", "error", err)
	}
}

func (s *Server) handleChartPage(w http.ResponseWriter, r *http.Request) {
	series, ok := s.chartSeries(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := chart.LineHTML(&buf, usecase.ChartTitle(series.Country), series); err != nil {
		s.chartError(w, r, err)
		return
	}
	writeHTML(w, r, http.StatusOK, buf.Bytes())
}

func (s *Server) chartSeries(w http.ResponseWriter, r *http.Request) (*model.HistoricalSeries, bool) {
	name := chi.URLParam(r, "country")

	series, err := s.embi.Historical(r.Context(), name)
	if errors.Is(err, model.ErrCountryNotFound) {
		writeText(w, r, http.StatusNotFound, fmt.Sprintf("Country %s not found", name))
		return nil, false
	}
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to get series", "error", err, "country", name)
		writeText(w, r, http.StatusInternalServerError, "Error: "+err.Error())
		return nil, false
	}
	return series, true
}

func (s *Server) chartError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, chart.ErrNotEnoughPoints) {
		writeText(w, r, http.StatusNotFound, "Data not found")
		return
	}
	ctxlog.From(r.Context()).Error("Failed to render chart", "error", err)
	writeText(w, r, http.StatusInternalServerError, "Error: "+err.Error())
}

func (s *Server) handleDownloadCountryDate(w http.ResponseWriter, r *http.Request) {
	export, err := s.embi.ExportCountryDate(r.Context(),
		chi.URLParam(r, "country"),
		types.Date(chi.URLParam(r, "date")))
	writeExport(w, r, export, err)
}

func (s *Server) handleDownloadAllDate(w http.ResponseWriter, r *http.Request) {
	export, err := s.embi.ExportAllDate(r.Context(), types.Date(chi.URLParam(r, "date")))
	writeExport(w, r, export, err)
}

func (s *Server) handleDownloadRangeCountry(w http.ResponseWriter, r *http.Request) {
	export, err := s.embi.ExportRangeCountry(r.Context(),
		chi.URLParam(r, "country"),
		types.Date(chi.URLParam(r, "start")),
		types.Date(chi.URLParam(r, "end")))
	writeExport(w, r, export, err)
}

func (s *Server) handleDownloadRangeAll(w http.ResponseWriter, r *http.Request) {
	export, err := s.embi.ExportRangeAll(r.Context(),
		types.Date(chi.URLParam(r, "start")),
		types.Date(chi.URLParam(r, "end")))
	writeExport(w, r, export, err)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	dates, err := s.embi.Dates(r.Context())
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to list dates for home page", "error", err)
		dates = nil
	}

	page := frontend.NewIndex(dates, s.embi.Countries().Names())

	var buf bytes.Buffer
	if err := s.home.Render(&buf, page); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render home page", "error", err)
		writeText(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeHTML(w, r, http.StatusOK, buf.Bytes())
}

func writeExport(w http.ResponseWriter, r *http.Request, export *model.Export, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		ctxlog.From(r.Context()).Debug("Export not found", "error", err)
		writeText(w, r, http.StatusNotFound, "Data not found")
		return
	case errors.Is(err, model.ErrInvalidDate):
		ctxlog.From(r.Context()).Debug("Export with invalid date", "error", err)
		writeText(w, r, http.StatusBadRequest, "Invalid date")
		return
	case err != nil:
		ctxlog.From(r.Context()).Error("Failed to build export", "error", err)
		writeText(w, r, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": export.FileName}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Data); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write export", "error", err, "file", export.FileName)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, err error, msg string) {
	if status >= http.StatusInternalServerError {
		ctxlog.From(r.Context()).Error("Request failed", "error", err)
	}
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func writeHTML(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write response", "error", err)
	}
}

func writeText(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write response", "error", err)
	}
}
