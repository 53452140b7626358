package operation

import (
	"fmt"
	"strings"

	"github.com/speakeasy-api/openapi/errors"
)

// ErrMalformedOperation is matched by every error reporting an inconsistent upstream operation.
const ErrMalformedOperation = errors.Error("malformed operation")

// MalformedOperationError reports a structural invariant violation in the projection inputs.
type MalformedOperationError struct {
	OperationID string
	Method      HTTPMethod
	Path        string
	// Reason describes the violated invariant.
	Reason string
	// Parameters names the offending parameters, if any.
	Parameters []string
}

var _ error = (*MalformedOperationError)(nil)

func (e *MalformedOperationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s `%s %s`", ErrMalformedOperation, e.Method, e.Path)
	if e.OperationID != "" {
		fmt.Fprintf(&sb, " (operationId: %s)", e.OperationID)
	}
	sb.WriteString(errors.ErrSeparator)
	sb.WriteString(e.Reason)
	if len(e.Parameters) > 0 {
		sb.WriteString(": ")
		sb.WriteString(strings.Join(e.Parameters, ", "))
	}
	return sb.String()
}

func (e *MalformedOperationError) Unwrap() error {
	return ErrMalformedOperation
}

func newMalformedOperationError(raw *RawOperation, reason string, parameters ...string) *MalformedOperationError {
	return &MalformedOperationError{
		OperationID: raw.ID,
		Method:      raw.Method,
		Path:        raw.Path,
		Reason:      reason,
		Parameters:  parameters,
	}
}
