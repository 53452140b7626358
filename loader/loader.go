// Package loader reads Swagger 2.0 documents and turns their operations into projection sources.
package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/speakeasy-api/openapi-clientgen/internal/version"
	"github.com/speakeasy-api/openapi/errors"
	"github.com/speakeasy-api/openapi/swagger"
)

const (
	// ErrInvalidDocument is returned when a document cannot be turned into projection sources.
	ErrInvalidDocument = errors.Error("invalid swagger document")

	// StdinIndicator is the conventional path used to read from stdin.
	StdinIndicator = "-"
)

var supportedVersion = version.New(2, 0, 0)

// Load unmarshals a Swagger 2.0 document. Validation errors are returned alongside the document
// and do not prevent loading.
func Load(ctx context.Context, r io.Reader) (*swagger.Swagger, []error, error) {
	doc, validationErrs, err := swagger.Unmarshal(ctx, r)
	if err != nil {
		return nil, nil, ErrInvalidDocument.Wrap(fmt.Errorf("failed to unmarshal: %w", err))
	}
	if doc == nil {
		return nil, nil, ErrInvalidDocument.Wrap(errors.New("document is nil"))
	}

	declared, err := version.Parse(doc.GetSwagger())
	if err != nil {
		return nil, nil, ErrInvalidDocument.Wrap(err)
	}
	if !declared.SameMajor(*supportedVersion) {
		return nil, nil, ErrInvalidDocument.Wrap(fmt.Errorf("unsupported swagger version `%s`, expected %s", doc.GetSwagger(), swagger.Version))
	}

	return doc, validationErrs, nil
}

// LoadFile loads the document at path, reading stdin when path is StdinIndicator.
func LoadFile(ctx context.Context, path string) (*swagger.Swagger, []error, error) {
	if path == StdinIndicator {
		return Load(ctx, os.Stdin)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return Load(ctx, f)
}
