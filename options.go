package chash

import (
	"log/slog"
	"os"

	"github.com/valyala/bytebufferpool"
)

type options struct {
	logger  *slog.Logger
	keyPool *bytebufferpool.Pool
}

// Option configures a Table at construction.
type Option func(*options)

// WithLogger sets the logger used for diagnostic records.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithKeyPool sets the buffer pool that owned key copies are drawn from and
// returned to. Tables sharing a pool recycle each other's buffers.
//
// If nil is passed, the table uses a private pool.
func WithKeyPool(p *bytebufferpool.Pool) Option {
	return func(o *options) {
		if p != nil {
			o.keyPool = p
		}
	}
}

func defaultOptions() options {
	return options{
		logger:  noopLogger(),
		keyPool: new(bytebufferpool.Pool),
	}
}

// noopLogger discards all records.
func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}
