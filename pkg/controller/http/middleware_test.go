package http_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/embiscope/pkg/controller/http"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	var handlerHasLogger bool
	handler := middleware.RequestID(controller.LoggingMiddleware(ctx)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxlog.From(r.Context()).Info("inside handler")
			handlerHasLogger = true
			w.WriteHeader(http.StatusTeapot)
		}),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/dates", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.True(t, handlerHasLogger)
	gt.Equal(t, w.Code, http.StatusTeapot)

	logs := buf.String()
	gt.S(t, logs).Contains("inside handler")
	gt.S(t, logs).Contains("HTTP request")
	gt.S(t, logs).Contains(`"path":"/api/dates"`)
	gt.S(t, logs).Contains(`"status":418`)
	gt.S(t, logs).Contains("request_id")
}

func TestLoggingMiddleware_ServerError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	handler := controller.LoggingMiddleware(ctx)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}),
	)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	gt.S(t, buf.String()).Contains(`"level":"WARN"`)
}
