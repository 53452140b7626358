// Package render exposes operation descriptors in the shape consumed by code templates.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/speakeasy-api/openapi-clientgen/internal/sliceutil"
	"github.com/speakeasy-api/openapi-clientgen/operation"
	"github.com/speakeasy-api/openapi/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Write for unknown output formats.
const ErrUnsupportedFormat = errors.Error("unsupported output format")

// Format is the serialization format of Write.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParameterView is the template facing shape of a parameter.
type ParameterView struct {
	Name               string `yaml:"name" json:"name"`
	VariableName       string `yaml:"variableName" json:"variableName"`
	Kind               string `yaml:"kind" json:"kind"`
	Type               string `yaml:"type" json:"type"`
	Description        string `yaml:"description,omitempty" json:"description,omitempty"`
	HasDescription     bool   `yaml:"hasDescription" json:"hasDescription"`
	IsRequired         bool   `yaml:"isRequired" json:"isRequired"`
	IsArray            bool   `yaml:"isArray" json:"isArray"`
	IsFile             bool   `yaml:"isFile" json:"isFile"`
	IsXMLBodyParameter bool   `yaml:"isXmlBodyParameter" json:"isXmlBodyParameter"`
	CollectionFormat   string `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
}

// ResponseView is the template facing shape of a response.
type ResponseView struct {
	StatusCode  string `yaml:"statusCode" json:"statusCode"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	IsSuccess   bool   `yaml:"isSuccess" json:"isSuccess"`
	IsFile      bool   `yaml:"isFile" json:"isFile"`
}

// View is the template facing shape of an operation descriptor.
type View struct {
	ID                     string          `yaml:"id" json:"id"`
	Path                   string          `yaml:"path" json:"path"`
	HTTPMethodUpper        string          `yaml:"httpMethodUpper" json:"httpMethodUpper"`
	HTTPMethodLower        string          `yaml:"httpMethodLower" json:"httpMethodLower"`
	OperationName          string          `yaml:"operationName" json:"operationName"`
	OperationNameUpper     string          `yaml:"operationNameUpper" json:"operationNameUpper"`
	OperationNameLower     string          `yaml:"operationNameLower" json:"operationNameLower"`
	IsGetOrDelete          bool            `yaml:"isGetOrDelete" json:"isGetOrDelete"`
	IsGetOrHead            bool            `yaml:"isGetOrHead" json:"isGetOrHead"`
	ResultType             string          `yaml:"resultType" json:"resultType"`
	UnwrappedResultType    string          `yaml:"unwrappedResultType" json:"unwrappedResultType"`
	HasResultType          bool            `yaml:"hasResultType" json:"hasResultType"`
	ResultDescription      string          `yaml:"resultDescription,omitempty" json:"resultDescription,omitempty"`
	HasResultDescription   bool            `yaml:"hasResultDescription" json:"hasResultDescription"`
	ExceptionType          string          `yaml:"exceptionType" json:"exceptionType"`
	Responses              []ResponseView  `yaml:"responses" json:"responses"`
	DefaultResponse        *ResponseView   `yaml:"defaultResponse,omitempty" json:"defaultResponse,omitempty"`
	HasDefaultResponse     bool            `yaml:"hasDefaultResponse" json:"hasDefaultResponse"`
	HasOnlyDefaultResponse bool            `yaml:"hasOnlyDefaultResponse" json:"hasOnlyDefaultResponse"`
	HasSuccessResponse     bool            `yaml:"hasSuccessResponse" json:"hasSuccessResponse"`
	Parameters             []ParameterView `yaml:"parameters" json:"parameters"`
	PathParameters         []ParameterView `yaml:"pathParameters" json:"pathParameters"`
	QueryParameters        []ParameterView `yaml:"queryParameters" json:"queryParameters"`
	HeaderParameters       []ParameterView `yaml:"headerParameters" json:"headerParameters"`
	FormParameters         []ParameterView `yaml:"formParameters" json:"formParameters"`
	HasFormParameters      bool            `yaml:"hasFormParameters" json:"hasFormParameters"`
	ContentParameter       *ParameterView  `yaml:"contentParameter,omitempty" json:"contentParameter,omitempty"`
	HasContent             bool            `yaml:"hasContent" json:"hasContent"`
	HasXMLBodyParameter    bool            `yaml:"hasXmlBodyParameter" json:"hasXmlBodyParameter"`
	Consumes               string          `yaml:"consumes" json:"consumes"`
	Produces               string          `yaml:"produces" json:"produces"`
	Summary                string          `yaml:"summary,omitempty" json:"summary,omitempty"`
	HasSummary             bool            `yaml:"hasSummary" json:"hasSummary"`
	Description            string          `yaml:"description,omitempty" json:"description,omitempty"`
	HasDocumentation       bool            `yaml:"hasDocumentation" json:"hasDocumentation"`
	IsDeprecated           bool            `yaml:"isDeprecated" json:"isDeprecated"`
}

// NewView copies the getters of d into a View.
func NewView(d *operation.Descriptor) View {
	v := View{
		ID:                     d.ID(),
		Path:                   d.Path(),
		HTTPMethodUpper:        d.HTTPMethodUpper(),
		HTTPMethodLower:        d.HTTPMethodLower(),
		OperationName:          d.OperationName(),
		OperationNameUpper:     d.OperationNameUpper(),
		OperationNameLower:     d.OperationNameLower(),
		IsGetOrDelete:          d.IsGetOrDelete(),
		IsGetOrHead:            d.IsGetOrHead(),
		ResultType:             d.ResultType(),
		UnwrappedResultType:    d.UnwrappedResultType(),
		HasResultType:          d.HasResultType(),
		ResultDescription:      d.ResultDescription(),
		HasResultDescription:   d.HasResultDescription(),
		ExceptionType:          d.ExceptionType(),
		Responses:              sliceutil.Map(d.Responses(), newResponseView),
		HasDefaultResponse:     d.HasDefaultResponse(),
		HasOnlyDefaultResponse: d.HasOnlyDefaultResponse(),
		HasSuccessResponse:     d.HasSuccessResponse(),
		Parameters:             sliceutil.Map(d.Parameters(), newParameterView),
		PathParameters:         sliceutil.Map(d.PathParameters(), newParameterView),
		QueryParameters:        sliceutil.Map(d.QueryParameters(), newParameterView),
		HeaderParameters:       sliceutil.Map(d.HeaderParameters(), newParameterView),
		FormParameters:         sliceutil.Map(d.FormParameters(), newParameterView),
		HasFormParameters:      d.HasFormParameters(),
		HasContent:             d.HasContent(),
		HasXMLBodyParameter:    d.HasXMLBodyParameter(),
		Consumes:               d.Consumes(),
		Produces:               d.Produces(),
		Summary:                d.Summary(),
		HasSummary:             d.HasSummary(),
		Description:            d.Description(),
		HasDocumentation:       d.HasDocumentation(),
		IsDeprecated:           d.IsDeprecated(),
	}

	if r := d.DefaultResponse(); r != nil {
		def := newResponseView(r)
		v.DefaultResponse = &def
	}
	if p := d.ContentParameter(); p != nil {
		content := newParameterView(p)
		v.ContentParameter = &content
	}

	return v
}

func newParameterView(p *operation.Parameter) ParameterView {
	return ParameterView{
		Name:               p.Name,
		VariableName:       p.VariableName,
		Kind:               string(p.GetKind()),
		Type:               p.Type,
		Description:        p.Description,
		HasDescription:     p.HasDescription(),
		IsRequired:         p.IsRequired,
		IsArray:            p.IsArray,
		IsFile:             p.IsFile,
		IsXMLBodyParameter: p.IsXMLBodyParameter,
		CollectionFormat:   p.CollectionFormat,
	}
}

func newResponseView(r *operation.Response) ResponseView {
	return ResponseView{
		StatusCode:  r.StatusCode,
		Type:        r.Type,
		Description: r.Description,
		IsSuccess:   r.IsSuccess,
		IsFile:      r.IsFile,
	}
}

// Write serializes the views of descriptors to w.
func Write(w io.Writer, descriptors []*operation.Descriptor, format Format) error {
	views := sliceutil.Map(descriptors, NewView)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("failed to encode operations as yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("failed to encode operations as json: %w", err)
		}
		return nil
	default:
		return ErrUnsupportedFormat.Wrap(fmt.Errorf("format `%s`", format))
	}
}
