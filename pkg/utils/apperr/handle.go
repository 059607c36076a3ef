package apperr

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that cannot be returned to a caller
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	ctxlog.From(ctx).Error("application error", "error", err)
}

// Warn logs a recoverable error that leaves the previous state in place
func Warn(ctx context.Context, msg string, err error, attrs ...any) {
	if err == nil {
		return
	}
	ctxlog.From(ctx).Warn(msg, append([]any{slog.Any("error", err)}, attrs...)...)
}
