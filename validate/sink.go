package validate

import (
	"context"

	"github.com/amp-labs/amp-varcheck/logger"
)

// Sink receives formatted diagnostics. A Sink shared between goroutines must
// be safe for concurrent use.
type Sink interface {
	Error(ctx context.Context, msg string)
	Warn(ctx context.Context, msg string)
}

// LogSink writes diagnostics through logger.Get, so they carry the owner and
// variable attributes the pipeline puts on the context.
type LogSink struct{}

var _ Sink = LogSink{}

func (LogSink) Error(ctx context.Context, msg string) {
	logger.Get(ctx).ErrorContext(ctx, msg)
}

func (LogSink) Warn(ctx context.Context, msg string) {
	logger.Get(ctx).WarnContext(ctx, msg)
}
