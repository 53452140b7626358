// Package operation projects a parsed API operation into the immutable descriptor consumed by templates.
//
// Projection is a pure function of its inputs: it performs no I/O, never modifies the raw operation and
// can be run concurrently for distinct operations.
package operation

import (
	"slices"

	"github.com/speakeasy-api/openapi-clientgen/casing"
	"github.com/speakeasy-api/openapi-clientgen/internal/sliceutil"
	"github.com/speakeasy-api/openapi-clientgen/settings"
	"github.com/speakeasy-api/openapi/errors"
)

type Option[T any] func(o *T)

type ProjectOptions struct {
	operationName     *string
	resultDescription *string
	exceptionType     *string
}

// WithOperationName sets the generation facing name of the operation. Defaults to the operation id.
func WithOperationName(name string) Option[ProjectOptions] {
	return func(o *ProjectOptions) {
		o.operationName = &name
	}
}

// WithResultDescription sets the result documentation. Defaults to the description of the first success response.
func WithResultDescription(description string) Option[ProjectOptions] {
	return func(o *ProjectOptions) {
		o.resultDescription = &description
	}
}

// WithExceptionType sets the exception type of the operation. Defaults to the exception type of the settings.
func WithExceptionType(exceptionType string) Option[ProjectOptions] {
	return func(o *ProjectOptions) {
		o.exceptionType = &exceptionType
	}
}

// Project builds the descriptor of a single operation.
//
// An empty unwrappedResultType is treated as VoidType. A *MalformedOperationError is returned when the
// inputs violate a structural invariant, such as more than one body parameter.
func Project(raw *RawOperation, s *settings.Settings, unwrappedResultType string, parameters []*Parameter, responses Responses, opts ...Option[ProjectOptions]) (*Descriptor, error) {
	if raw == nil {
		return nil, ErrMalformedOperation.Wrap(errors.New("raw operation is nil"))
	}
	if !raw.Method.IsValid() {
		return nil, newMalformedOperationError(raw, "unsupported HTTP method `"+raw.Method.String()+"`")
	}

	o := ProjectOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if unwrappedResultType == "" {
		unwrappedResultType = VoidType
	}

	if err := checkParameters(raw, parameters); err != nil {
		return nil, err
	}
	params := cloneAll(parameters)

	d := &Descriptor{
		id:                  raw.ID,
		path:                raw.Path,
		method:              raw.Method,
		operationName:       raw.ID,
		unwrappedResultType: unwrappedResultType,
		resultType:          WrapResultType(unwrappedResultType, s.GetProfile(), s),
		exceptionType:       s.GetExceptionType(),
		responses:           cloneAll(responses.Items),
		defaultResponse:     clone(responses.Default),
		parameters:          params,
		summary:             casing.TrimWhiteSpaces(raw.Summary),
		description:         casing.TrimWhiteSpaces(raw.Description),
		deprecated:          raw.Deprecated,
		consumes:            ResolveContentType(raw.Consumes),
		produces:            ResolveContentType(raw.Produces),
	}
	if o.operationName != nil {
		d.operationName = *o.operationName
	}
	if o.exceptionType != nil {
		d.exceptionType = *o.exceptionType
	}
	if o.resultDescription != nil {
		d.resultDescription = casing.TrimWhiteSpaces(*o.resultDescription)
	} else if success := firstSuccessResponse(d.responses); success != nil {
		d.resultDescription = casing.TrimWhiteSpaces(success.Description)
	}

	d.httpMethodUpper = casing.ConvertToUpperCamelCase(raw.Method.String(), false)
	d.httpMethodLower = casing.ConvertToLowerCamelCase(raw.Method.String(), false)
	d.operationNameUpper = casing.ConvertToUpperCamelCase(d.operationName, false)
	d.operationNameLower = casing.ConvertToLowerCamelCase(d.operationName, false)

	d.pathParameters = sliceutil.Filter(params, ofKind(ParameterKindPath))
	d.queryParameters = sliceutil.Filter(params, ofKind(ParameterKindQuery, ParameterKindModelBinding))
	d.headerParameters = sliceutil.Filter(params, ofKind(ParameterKindHeader))
	d.formParameters = sliceutil.Filter(params, ofKind(ParameterKindFormData))
	if bodies := sliceutil.Filter(params, ofKind(ParameterKindBody)); len(bodies) == 1 {
		d.contentParameter = bodies[0]
	}

	d.hasSuccessResponse = firstSuccessResponse(d.responses) != nil
	d.hasXMLBodyParameter = sliceutil.Any(raw.Parameters, func(p RawParameter) bool {
		return p.XMLBody
	}) || (d.contentParameter != nil && d.contentParameter.IsXMLBodyParameter)
	d.hasDocumentation = d.summary != "" ||
		d.resultDescription != "" ||
		sliceutil.Any(params, (*Parameter).HasDescription) ||
		d.deprecated

	return d, nil
}

// Source bundles the upstream inputs of a single projection.
type Source struct {
	Raw                 *RawOperation
	UnwrappedResultType string
	Parameters          []*Parameter
	Responses           Responses
	// OperationName is the generation facing name, the operation id is used when empty.
	OperationName string
	// ResultDescription overrides the description derived from the success response when not empty.
	ResultDescription string
	// ExceptionType overrides the exception type of the settings when not empty.
	ExceptionType string
}

// Project builds the descriptor of the source operation.
func (src Source) Project(s *settings.Settings) (*Descriptor, error) {
	opts := []Option[ProjectOptions]{}
	if src.OperationName != "" {
		opts = append(opts, WithOperationName(src.OperationName))
	}
	if src.ResultDescription != "" {
		opts = append(opts, WithResultDescription(src.ResultDescription))
	}
	if src.ExceptionType != "" {
		opts = append(opts, WithExceptionType(src.ExceptionType))
	}

	return Project(src.Raw, s, src.UnwrappedResultType, src.Parameters, src.Responses, opts...)
}

func checkParameters(raw *RawOperation, params []*Parameter) error {
	bodies := []string{}
	for _, p := range params {
		if p == nil {
			return newMalformedOperationError(raw, "parameter list contains a nil parameter")
		}
		if !p.Kind.IsValid() {
			return newMalformedOperationError(raw, "parameter has unknown kind `"+string(p.Kind)+"`", p.Name)
		}
		if p.Kind == ParameterKindBody {
			bodies = append(bodies, p.Name)
		}
	}

	if len(bodies) > 1 {
		return newMalformedOperationError(raw, "more than one body parameter", bodies...)
	}
	return nil
}

func ofKind(kinds ...ParameterKind) func(*Parameter) bool {
	return func(p *Parameter) bool {
		return slices.Contains(kinds, p.Kind)
	}
}

func firstSuccessResponse(responses []*Response) *Response {
	for _, r := range responses {
		if r != nil && r.IsSuccess {
			return r
		}
	}
	return nil
}
