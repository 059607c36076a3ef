package async

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch executes a handler asynchronously with panic recovery. The handler
// gets a fresh context that keeps the caller's logger but not its cancellation,
// so work outlives the event that triggered it.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)
	go run(newCtx, handler)
}

// DispatchAfter runs handler once after delay unless ctx is cancelled first.
// Unlike Dispatch, the handler runs under ctx so shutdown stops it.
func DispatchAfter(ctx context.Context, delay time.Duration, handler func(ctx context.Context) error) {
	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			run(ctx, handler)
		}
	}()
}

func run(ctx context.Context, handler func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.From(ctx).Error("Panic in async handler",
				"recover", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	if err := handler(ctx); err != nil {
		ctxlog.From(ctx).Error("Error in async handler",
			"error", err,
		)
	}
}

func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}
	return newCtx
}
