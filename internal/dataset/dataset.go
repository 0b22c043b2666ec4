// Package dataset assembles synthesized profiles into an immutable table.
package dataset

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/geoprofile-cli/internal/model"
)

// Generator produces one profile per call.
type Generator interface {
	Generate() model.Profile
}

// ProgressFunc is notified once for every 10% step crossed while building.
type ProgressFunc func(done, total, percent int)

// LogProgress reports progress through the global zap logger.
func LogProgress(done, total, percent int) {
	zap.L().Info("dataset: progress",
		zap.Int("done", done),
		zap.Int("total", total),
		zap.Int("percent", percent),
	)
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	progress ProgressFunc
}

// WithProgress replaces the default zap progress reporter. A nil func
// disables reporting.
func WithProgress(fn ProgressFunc) Option {
	return func(o *buildOptions) {
		o.progress = fn
	}
}

// Build calls gen n times and returns the rows as a Table. Rows are kept in
// generation order.
func Build(ctx context.Context, gen Generator, n int, opts ...Option) (*Table, error) {
	if n <= 0 {
		return nil, eris.Wrapf(model.ErrInvalidArgument, "dataset: num_profiles must be positive, got %d", n)
	}

	o := buildOptions{progress: LogProgress}
	for _, opt := range opts {
		opt(&o)
	}

	rows := make([]model.Profile, n)
	next := 1 // next 10% step to report
	for i := range rows {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrapf(err, "dataset: cancelled after %d of %d profiles", i, n)
		}
		rows[i] = gen.Generate()

		done := i + 1
		for next <= 10 && done*10 >= next*n {
			if o.progress != nil {
				o.progress(done, n, next*10)
			}
			next++
		}
	}

	return newTable(rows), nil
}
