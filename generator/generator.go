// Package generator drives operation projection over every operation of a document.
package generator

import (
	"context"
	"log/slog"

	"github.com/speakeasy-api/openapi-clientgen/logging"
	"github.com/speakeasy-api/openapi-clientgen/operation"
	"github.com/speakeasy-api/openapi-clientgen/settings"
	"github.com/speakeasy-api/openapi/errors"
	"golang.org/x/sync/errgroup"
)

// Option configures a Generator.
type Option func(g *Generator)

// WithLogger sets the logger used to report progress and skipped operations.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator projects operation sources into descriptors.
type Generator struct {
	settings *settings.Settings
	logger   *slog.Logger
}

// Failure records an operation that was skipped because it could not be projected.
type Failure struct {
	Source operation.Source
	Err    error
}

// Result holds the descriptors of a run in input order.
type Result struct {
	Descriptors []*operation.Descriptor
	Failures    []Failure
}

// New creates a Generator. A nil settings value behaves like settings.Default().
func New(s *settings.Settings, opts ...Option) *Generator {
	if s == nil {
		s = settings.Default()
	}

	g := &Generator{
		settings: s,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run projects every source concurrently. Descriptors keep the order of sources.
// Unless ContinueOnError is set, the first malformed operation aborts the run.
func (g *Generator) Run(ctx context.Context, sources []operation.Source) (*Result, error) {
	descriptors := make([]*operation.Descriptor, len(sources))
	errs := make([]error, len(sources))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.settings.GetConcurrency())

	for i, src := range sources {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			d, err := src.Project(g.settings)
			if err != nil {
				if g.settings.GetContinueOnError() && errors.Is(err, operation.ErrMalformedOperation) {
					errs[i] = err
					return nil
				}
				return err
			}

			g.logger.DebugContext(egCtx, "projected operation",
				slog.String("method", d.HTTPMethodUpper()),
				slog.String("path", d.Path()),
				slog.String("name", d.OperationName()),
			)
			descriptors[i] = d
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Descriptors: make([]*operation.Descriptor, 0, len(sources)),
		Failures:    []Failure{},
	}
	for i, d := range descriptors {
		if errs[i] != nil {
			g.logger.WarnContext(ctx, "skipping malformed operation", slog.Any("error", errs[i]))
			result.Failures = append(result.Failures, Failure{Source: sources[i], Err: errs[i]})
			continue
		}
		result.Descriptors = append(result.Descriptors, d)
	}

	g.logger.InfoContext(ctx, "projected operations",
		slog.Int("operations", len(result.Descriptors)),
		slog.Int("skipped", len(result.Failures)),
	)

	return result, nil
}
