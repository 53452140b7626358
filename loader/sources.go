package loader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/speakeasy-api/openapi-clientgen/casing"
	"github.com/speakeasy-api/openapi-clientgen/operation"
	"github.com/speakeasy-api/openapi-clientgen/settings"
	"github.com/speakeasy-api/openapi/errors"
	"github.com/speakeasy-api/openapi/swagger"
)

const (
	parametersRef = "#/parameters/"
	responsesRef  = "#/responses/"

	defaultCollectionFormat = string(swagger.CollectionFormatCSV)
)

var xmlContentTypes = []string{"application/xml", "text/xml"}

type builder struct {
	doc      *swagger.Swagger
	settings *settings.Settings
	namer    typeNamer
}

// Sources returns the projection sources of every operation in the document, in document order.
// Only local references to #/parameters/ and #/responses/ are followed; any other reference fails with ErrInvalidDocument.
func Sources(doc *swagger.Swagger, s *settings.Settings) ([]operation.Source, error) {
	if doc == nil {
		return nil, ErrInvalidDocument.Wrap(errors.New("document is nil"))
	}

	b := &builder{
		doc:      doc,
		settings: s,
		namer:    newTypeNamer(s.GetProfile()),
	}

	sources := []operation.Source{}
	paths := doc.GetPaths()
	if paths == nil {
		return sources, nil
	}

	for path, pathItem := range paths.All() {
		if pathItem == nil {
			continue
		}

		for method, op := range pathItem.All() {
			if op == nil {
				continue
			}

			src, err := b.source(path, operation.HTTPMethod(method), pathItem, op)
			if err != nil {
				return nil, ErrInvalidDocument.Wrap(fmt.Errorf("%s %s: %w", method, path, err))
			}
			sources = append(sources, src)
		}
	}

	return sources, nil
}

func (b *builder) source(path string, method operation.HTTPMethod, pathItem *swagger.PathItem, op *swagger.Operation) (operation.Source, error) {
	consumes := op.Consumes
	if consumes == nil {
		consumes = b.doc.GetConsumes()
	}
	produces := op.Produces
	if produces == nil {
		produces = b.doc.GetProduces()
	}

	declared, err := b.mergeParameters(pathItem.GetParameters(), op.GetParameters())
	if err != nil {
		return operation.Source{}, err
	}

	raw := &operation.RawOperation{
		ID:          op.GetOperationID(),
		Method:      method,
		Path:        path,
		Summary:     op.GetSummary(),
		Description: op.GetDescription(),
		Deprecated:  op.GetDeprecated(),
		Consumes:    slices.Clone(consumes),
		Produces:    slices.Clone(produces),
		Parameters:  make([]operation.RawParameter, 0, len(declared)),
	}

	acceptsXML := slices.ContainsFunc(consumes, func(c string) bool {
		return slices.Contains(xmlContentTypes, c)
	})

	params := make([]*operation.Parameter, 0, len(declared))
	for _, p := range declared {
		param := b.parameter(p, acceptsXML)
		params = append(params, param)
		raw.Parameters = append(raw.Parameters, operation.RawParameter{
			Name:        p.GetName(),
			Kind:        param.Kind,
			Description: p.GetDescription(),
			Required:    p.GetRequired(),
			XMLBody:     param.IsXMLBodyParameter,
		})
	}

	responses, err := b.responses(op.GetResponses())
	if err != nil {
		return operation.Source{}, err
	}

	return operation.Source{
		Raw:                 raw,
		UnwrappedResultType: unwrappedResultType(responses),
		Parameters:          params,
		Responses:           responses,
		OperationName:       OperationName(b.settings.GetOperationNaming(), raw.ID, path, method),
		ExceptionType:       exceptionType(responses),
	}, nil
}

// mergeParameters returns the path item parameters overridden in place by operation parameters
// with the same name and location, followed by the remaining operation parameters.
func (b *builder) mergeParameters(pathLevel, operationLevel []*swagger.ReferencedParameter) ([]*swagger.Parameter, error) {
	merged := []*swagger.Parameter{}

	for _, ref := range pathLevel {
		p, err := b.resolveParameter(ref)
		if err != nil {
			return nil, err
		}
		merged = append(merged, p)
	}

	for _, ref := range operationLevel {
		p, err := b.resolveParameter(ref)
		if err != nil {
			return nil, err
		}

		idx := slices.IndexFunc(merged, func(existing *swagger.Parameter) bool {
			return existing.GetName() == p.GetName() && existing.GetIn() == p.GetIn()
		})
		if idx >= 0 {
			merged[idx] = p
			continue
		}
		merged = append(merged, p)
	}

	return merged, nil
}

func (b *builder) resolveParameter(ref *swagger.ReferencedParameter) (*swagger.Parameter, error) {
	if ref == nil {
		return nil, errors.New("parameter is nil")
	}
	if !ref.IsReference() {
		if obj := ref.GetObject(); obj != nil {
			return obj, nil
		}
		return nil, errors.New("parameter is empty")
	}

	target := string(ref.GetReference())
	name, ok := strings.CutPrefix(target, parametersRef)
	if !ok {
		return nil, fmt.Errorf("unsupported parameter reference `%s`", target)
	}

	p, ok := b.doc.GetParameters().Get(unescapePointerToken(name))
	if !ok || p == nil {
		return nil, fmt.Errorf("parameter reference `%s` not found", target)
	}
	return p, nil
}

func (b *builder) parameter(p *swagger.Parameter, acceptsXML bool) *operation.Parameter {
	param := &operation.Parameter{
		Name:         p.GetName(),
		VariableName: variableName(p.GetName()),
		Kind:         parameterKind(p.GetIn()),
		Description:  casing.TrimWhiteSpaces(p.GetDescription()),
		IsRequired:   p.GetRequired() || p.GetIn() == swagger.ParameterInPath,
	}

	if p.GetIn() == swagger.ParameterInBody {
		param.Type = b.schemaType(p.GetSchema())
		param.IsXMLBodyParameter = acceptsXML && isStringSchema(p.GetSchema())
		return param
	}

	param.Type = b.parameterType(p)
	param.IsArray = p.GetType() == "array"
	param.IsFile = p.GetType() == schemaTypeFile
	if param.IsArray {
		param.CollectionFormat = defaultCollectionFormat
		if p.CollectionFormat != nil {
			param.CollectionFormat = string(*p.CollectionFormat)
		}
	}

	return param
}

func parameterKind(in swagger.ParameterIn) operation.ParameterKind {
	switch in {
	case swagger.ParameterInPath:
		return operation.ParameterKindPath
	case swagger.ParameterInQuery:
		return operation.ParameterKindQuery
	case swagger.ParameterInHeader:
		return operation.ParameterKindHeader
	case swagger.ParameterInFormData:
		return operation.ParameterKindFormData
	case swagger.ParameterInBody:
		return operation.ParameterKindBody
	default:
		// Unknown locations are passed through so projection reports them as malformed.
		return operation.ParameterKind(in)
	}
}

func (b *builder) responses(responses *swagger.Responses) (operation.Responses, error) {
	result := operation.Responses{Items: []*operation.Response{}}
	if responses == nil {
		return result, nil
	}

	for code, ref := range responses.All() {
		if code == "default" {
			continue
		}
		r, err := b.response(code, ref)
		if err != nil {
			return operation.Responses{}, err
		}
		result.Items = append(result.Items, r)
	}

	if def := responses.GetDefault(); def != nil {
		r, err := b.response("default", def)
		if err != nil {
			return operation.Responses{}, err
		}
		result.Default = r
	}

	return result, nil
}

func (b *builder) response(code string, ref *swagger.ReferencedResponse) (*operation.Response, error) {
	resp, err := b.resolveResponse(ref)
	if err != nil {
		return nil, fmt.Errorf("response %s: %w", code, err)
	}

	r := &operation.Response{
		StatusCode:  code,
		Type:        b.schemaType(resp.GetSchema()),
		Description: casing.TrimWhiteSpaces(resp.GetDescription()),
		IsSuccess:   isSuccessStatusCode(code),
	}
	r.IsFile = isFileSchema(resp.GetSchema()) || operation.IsFileResponse(r.Type, b.settings)

	return r, nil
}

func (b *builder) resolveResponse(ref *swagger.ReferencedResponse) (*swagger.Response, error) {
	if ref == nil {
		return nil, errors.New("response is nil")
	}
	if !ref.IsReference() {
		if obj := ref.GetObject(); obj != nil {
			return obj, nil
		}
		return nil, errors.New("response is empty")
	}

	target := string(ref.GetReference())
	name, ok := strings.CutPrefix(target, responsesRef)
	if !ok {
		return nil, fmt.Errorf("unsupported response reference `%s`", target)
	}

	resp, ok := b.doc.GetResponses().Get(unescapePointerToken(name))
	if !ok || resp == nil {
		return nil, fmt.Errorf("response reference `%s` not found", target)
	}
	return resp, nil
}

func isSuccessStatusCode(code string) bool {
	return len(code) == 3 && code[0] == '2'
}

// unwrappedResultType picks the type of the 200 response, else of the first success response.
// An operation declaring only a default response returns the default's type.
func unwrappedResultType(responses operation.Responses) string {
	var success *operation.Response
	for _, r := range responses.Items {
		if !r.IsSuccess {
			continue
		}
		if r.StatusCode == "200" {
			success = r
			break
		}
		if success == nil {
			success = r
		}
	}

	switch {
	case success != nil:
		return success.Type
	case len(responses.Items) == 0 && responses.Default != nil:
		return responses.Default.Type
	default:
		return operation.VoidType
	}
}

// exceptionType returns the body type shared by every typed error response, or "" if there is no single one.
func exceptionType(responses operation.Responses) string {
	errorTypes := []string{}

	candidates := slices.Clone(responses.Items)
	if responses.Default != nil && len(responses.Items) > 0 {
		candidates = append(candidates, responses.Default)
	}

	for _, r := range candidates {
		if r.IsSuccess || !r.HasType() {
			continue
		}
		if !slices.Contains(errorTypes, r.Type) {
			errorTypes = append(errorTypes, r.Type)
		}
	}

	if len(errorTypes) == 1 {
		return errorTypes[0]
	}
	return ""
}
