package operation

import "github.com/speakeasy-api/openapi-clientgen/internal/sliceutil"

// Descriptor is the template facing view of a single operation.
// It is built by Project and cannot be modified afterwards: it owns copies of its parameters and responses
// and every accessor returns fresh copies of them.
type Descriptor struct {
	id            string
	path          string
	method        HTTPMethod
	operationName string

	httpMethodUpper    string
	httpMethodLower    string
	operationNameUpper string
	operationNameLower string

	unwrappedResultType string
	resultType          string
	resultDescription   string
	exceptionType       string

	responses          []*Response
	defaultResponse    *Response
	hasSuccessResponse bool

	parameters       []*Parameter
	pathParameters   []*Parameter
	queryParameters  []*Parameter
	headerParameters []*Parameter
	formParameters   []*Parameter
	contentParameter *Parameter

	summary             string
	description         string
	deprecated          bool
	hasDocumentation    bool
	hasXMLBodyParameter bool

	consumes string
	produces string
}

// ID returns the operation id.
func (d *Descriptor) ID() string { return d.id }

// Path returns the path template of the operation.
func (d *Descriptor) Path() string { return d.path }

// Method returns the HTTP method of the operation.
func (d *Descriptor) Method() HTTPMethod { return d.method }

// OperationName returns the generation facing name of the operation.
func (d *Descriptor) OperationName() string { return d.operationName }

// HTTPMethodUpper returns the HTTP method in upper camel case, e.g. Get.
func (d *Descriptor) HTTPMethodUpper() string { return d.httpMethodUpper }

// HTTPMethodLower returns the HTTP method in lower camel case, e.g. get.
func (d *Descriptor) HTTPMethodLower() string { return d.httpMethodLower }

// OperationNameUpper returns the operation name in upper camel case.
func (d *Descriptor) OperationNameUpper() string { return d.operationNameUpper }

// OperationNameLower returns the operation name in lower camel case.
func (d *Descriptor) OperationNameLower() string { return d.operationNameLower }

// IsGetOrDelete reports whether the HTTP method is GET or DELETE.
func (d *Descriptor) IsGetOrDelete() bool {
	return d.method == HTTPMethodGet || d.method == HTTPMethodDelete
}

// IsGetOrHead reports whether the HTTP method is GET or HEAD.
func (d *Descriptor) IsGetOrHead() bool {
	return d.method == HTTPMethodGet || d.method == HTTPMethodHead
}

// UnwrappedResultType returns the result type without any wrapper.
func (d *Descriptor) UnwrappedResultType() string { return d.unwrappedResultType }

// ResultType returns the result type after the profile wrapping policy.
func (d *Descriptor) ResultType() string { return d.resultType }

// HasResultType reports whether the operation returns a body.
func (d *Descriptor) HasResultType() bool { return d.unwrappedResultType != VoidType }

// ResultDescription returns the documentation of the result.
func (d *Descriptor) ResultDescription() string { return d.resultDescription }

// HasResultDescription reports whether the result is documented.
func (d *Descriptor) HasResultDescription() bool { return d.resultDescription != "" }

// ExceptionType returns the type raised by the generated method for error responses.
func (d *Descriptor) ExceptionType() string { return d.exceptionType }

// Responses returns the status specific responses in declaration order.
func (d *Descriptor) Responses() []*Response { return cloneAll(d.responses) }

// DefaultResponse returns the default response, nil if there is none.
func (d *Descriptor) DefaultResponse() *Response { return clone(d.defaultResponse) }

// HasDefaultResponse reports whether a default response is declared.
func (d *Descriptor) HasDefaultResponse() bool { return d.defaultResponse != nil }

// HasOnlyDefaultResponse reports whether the default response is the only declared response.
func (d *Descriptor) HasOnlyDefaultResponse() bool {
	return len(d.responses) == 0 && d.HasDefaultResponse()
}

// HasSuccessResponse reports whether an explicit 2xx response is declared.
func (d *Descriptor) HasSuccessResponse() bool { return d.hasSuccessResponse }

// Parameters returns every parameter in declaration order.
func (d *Descriptor) Parameters() []*Parameter { return cloneAll(d.parameters) }

// PathParameters returns the parameters of kind path.
func (d *Descriptor) PathParameters() []*Parameter { return cloneAll(d.pathParameters) }

// QueryParameters returns the parameters of kind query and modelBinding.
func (d *Descriptor) QueryParameters() []*Parameter { return cloneAll(d.queryParameters) }

// HeaderParameters returns the parameters of kind header.
func (d *Descriptor) HeaderParameters() []*Parameter { return cloneAll(d.headerParameters) }

// FormParameters returns the parameters of kind formData.
func (d *Descriptor) FormParameters() []*Parameter { return cloneAll(d.formParameters) }

// HasFormParameters reports whether any formData parameter is declared.
func (d *Descriptor) HasFormParameters() bool { return len(d.formParameters) > 0 }

// ContentParameter returns the body parameter, nil if there is none.
func (d *Descriptor) ContentParameter() *Parameter { return clone(d.contentParameter) }

// HasContent reports whether the operation has a body parameter.
func (d *Descriptor) HasContent() bool { return d.contentParameter != nil }

// Summary returns the trimmed summary.
func (d *Descriptor) Summary() string { return d.summary }

// HasSummary reports whether the summary is non empty after trimming.
func (d *Descriptor) HasSummary() bool { return d.summary != "" }

// Description returns the trimmed description.
func (d *Descriptor) Description() string { return d.description }

// HasDocumentation reports whether the summary, the result, any parameter is documented or the operation is deprecated.
func (d *Descriptor) HasDocumentation() bool { return d.hasDocumentation }

// IsDeprecated reports whether the operation is deprecated.
func (d *Descriptor) IsDeprecated() bool { return d.deprecated }

// HasXMLBodyParameter reports whether the body is sent as an XML string.
func (d *Descriptor) HasXMLBodyParameter() bool { return d.hasXMLBodyParameter }

// Consumes returns the resolved request MIME type.
func (d *Descriptor) Consumes() string { return d.consumes }

// Produces returns the resolved response MIME type.
func (d *Descriptor) Produces() string { return d.produces }

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// cloneAll copies every element of s. The result is never nil.
func cloneAll[T any](s []*T) []*T {
	return sliceutil.Map(s, clone[T])
}
