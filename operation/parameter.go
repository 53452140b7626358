package operation

import "strings"

// ParameterKind classifies where a parameter is transmitted.
type ParameterKind string

const (
	// ParameterKindPath is a path template segment.
	ParameterKindPath ParameterKind = "path"
	// ParameterKindQuery is a query string value.
	ParameterKindQuery ParameterKind = "query"
	// ParameterKindHeader is a request header.
	ParameterKindHeader ParameterKind = "header"
	// ParameterKindFormData is a form field.
	ParameterKindFormData ParameterKind = "formData"
	// ParameterKindBody is the request body.
	ParameterKindBody ParameterKind = "body"
	// ParameterKindModelBinding is bound from the query string as a complex object.
	ParameterKindModelBinding ParameterKind = "modelBinding"
)

// IsValid reports whether k is a known parameter kind.
func (k ParameterKind) IsValid() bool {
	switch k {
	case ParameterKindPath, ParameterKindQuery, ParameterKindHeader, ParameterKindFormData, ParameterKindBody, ParameterKindModelBinding:
		return true
	default:
		return false
	}
}

// RawParameter is a parameter entity as declared in the API description.
type RawParameter struct {
	Name        string
	Kind        ParameterKind
	Description string
	Required    bool
	// XMLBody is set for body parameters sent as an XML string.
	XMLBody bool
}

// Parameter is a classified parameter descriptor produced by the parameter projection stage.
type Parameter struct {
	// Name is the name of the parameter on the wire.
	Name string
	// VariableName is the identifier used for the parameter in generated code.
	VariableName string
	// Kind is the location of the parameter.
	Kind ParameterKind
	// Type is the target language type name of the parameter.
	Type string
	// Description is the documentation of the parameter.
	Description string
	// IsRequired determines whether the parameter is mandatory.
	IsRequired bool
	// IsArray is set for collection parameters.
	IsArray bool
	// IsFile is set for file upload parameters.
	IsFile bool
	// IsXMLBodyParameter is set for body parameters sent as an XML string.
	IsXMLBodyParameter bool
	// CollectionFormat is the serialization of array parameters, empty if not an array.
	CollectionFormat string
}

// HasDescription reports whether the parameter has non blank documentation.
func (p *Parameter) HasDescription() bool {
	if p == nil {
		return false
	}
	return strings.TrimSpace(p.Description) != ""
}

// GetKind returns the value of the Kind field. Returns an empty kind if p is nil.
func (p *Parameter) GetKind() ParameterKind {
	if p == nil {
		return ""
	}
	return p.Kind
}
