package operations

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/speakeasy-api/openapi-clientgen/generator"
	"github.com/speakeasy-api/openapi-clientgen/loader"
	"github.com/speakeasy-api/openapi-clientgen/logging"
	"github.com/speakeasy-api/openapi-clientgen/render"
	"github.com/speakeasy-api/openapi-clientgen/settings"
	"github.com/speakeasy-api/openapi/errors"
	"github.com/speakeasy-api/openapi/swagger"
)

// ErrValidationFailed is returned by Validate when the document has malformed operations.
const ErrValidationFailed = errors.Error("operation validation failed")

// Processor loads a Swagger document and projects its operations.
type Processor struct {
	InputFile string
	Settings  *settings.Settings
	Logger    *slog.Logger

	// Optional overrides for testing, when nil os.Stdin/os.Stdout are used.
	Stdin  io.Reader
	Stdout io.Writer
}

func (p *Processor) stdin() io.Reader {
	if p.Stdin != nil {
		return p.Stdin
	}
	return os.Stdin
}

func (p *Processor) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

// LoadDocument loads the input document, from stdin when the input file is "-".
func (p *Processor) LoadDocument(ctx context.Context) (*swagger.Swagger, error) {
	var (
		doc            *swagger.Swagger
		validationErrs []error
		err            error
	)
	if readsStdin(p.InputFile) {
		doc, validationErrs, err = loader.Load(ctx, p.stdin())
	} else {
		doc, validationErrs, err = loader.LoadFile(ctx, p.InputFile)
	}
	if err != nil {
		return nil, err
	}

	for _, validationErr := range validationErrs {
		p.logger().WarnContext(ctx, "document validation issue", slog.String("issue", validationErr.Error()))
	}

	return doc, nil
}

// Project loads the document and projects all of its operations.
func (p *Processor) Project(ctx context.Context) (*generator.Result, error) {
	doc, err := p.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}

	sources, err := loader.Sources(doc, p.Settings)
	if err != nil {
		return nil, err
	}

	return generator.New(p.Settings, generator.WithLogger(p.logger())).Run(ctx, sources)
}

// WriteOperations projects the document and writes the descriptors to stdout.
func (p *Processor) WriteOperations(ctx context.Context, format render.Format) error {
	result, err := p.Project(ctx)
	if err != nil {
		return err
	}

	return render.Write(p.stdout(), result.Descriptors, format)
}

// Validate projects every operation of the document and reports the malformed ones.
func (p *Processor) Validate(ctx context.Context) error {
	s := settings.Default()
	if p.Settings != nil {
		*s = *p.Settings
	}
	s.ContinueOnError = true

	validating := *p
	validating.Settings = s

	result, err := validating.Project(ctx)
	if err != nil {
		return err
	}

	out := p.stdout()
	if len(result.Failures) == 0 {
		fmt.Fprintf(out, "All %d operations are valid\n", len(result.Descriptors))
		return nil
	}

	fmt.Fprintf(out, "%d of %d operations are malformed:\n\n", len(result.Failures), len(result.Failures)+len(result.Descriptors))
	for i, failure := range result.Failures {
		fmt.Fprintf(out, "%d. %s\n", i+1, failure.Err.Error())
	}

	return ErrValidationFailed.Wrap(fmt.Errorf("%d malformed operations", len(result.Failures)))
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return logging.Discard()
}
