package loader

import (
	"strings"

	"github.com/speakeasy-api/openapi-clientgen/casing"
	"github.com/speakeasy-api/openapi-clientgen/operation"
	"github.com/speakeasy-api/openapi-clientgen/settings"
	"github.com/speakeasy-api/openapi/jsonschema/oas3"
	"github.com/speakeasy-api/openapi/pointer"
	"github.com/speakeasy-api/openapi/references"
	"github.com/speakeasy-api/openapi/swagger"
)

const (
	// FileParameterType is the type of file upload parameters.
	FileParameterType = "FileParameter"

	schemaTypeFile = "file"
	definitionsRef = "#/definitions/"
)

// typeNamer renders schema facts as target language type names.
type typeNamer interface {
	primitive(typ, format string) string
	array(item string) string
	dictionary(value string) string
	anyType() string
}

func newTypeNamer(profile settings.Profile) typeNamer {
	switch profile {
	case settings.ProfileTypeScript:
		return typescriptNamer{}
	default:
		return csharpNamer{}
	}
}

type csharpNamer struct{}

func (csharpNamer) primitive(typ, format string) string {
	switch typ {
	case "integer":
		if format == "int64" {
			return "long"
		}
		return "int"
	case "number":
		switch format {
		case "float":
			return "float"
		case "decimal":
			return "decimal"
		default:
			return "double"
		}
	case "boolean":
		return "bool"
	case "string":
		switch format {
		case "date", "date-time":
			return "System.DateTimeOffset"
		case "uuid", "guid":
			return "System.Guid"
		case "byte", "binary":
			return "byte[]"
		default:
			return "string"
		}
	default:
		return "object"
	}
}

func (csharpNamer) array(item string) string {
	return "System.Collections.Generic.ICollection<" + item + ">"
}

func (csharpNamer) dictionary(value string) string {
	return "System.Collections.Generic.IDictionary<string, " + value + ">"
}

func (csharpNamer) anyType() string {
	return "object"
}

type typescriptNamer struct{}

func (typescriptNamer) primitive(typ, format string) string {
	switch typ {
	case "integer", "number":
		return "number"
	case "boolean":
		return "boolean"
	case "string":
		if format == "date" || format == "date-time" {
			return "Date"
		}
		return "string"
	default:
		return "any"
	}
}

func (typescriptNamer) array(item string) string {
	return item + "[]"
}

func (typescriptNamer) dictionary(value string) string {
	return "{ [key: string]: " + value + "; }"
}

func (typescriptNamer) anyType() string {
	return "any"
}

// schemaType returns the type name of a body schema. A nil schema has no type and yields VoidType.
func (b *builder) schemaType(js *oas3.JSONSchema[oas3.Referenceable]) string {
	if js == nil {
		return operation.VoidType
	}

	schema := js.GetLeft()
	if schema == nil {
		return b.namer.anyType()
	}
	if schema.IsReference() {
		return definitionName(schema.GetRef())
	}

	switch primaryType(schema) {
	case "array":
		item := schema.GetItems()
		if item == nil {
			return b.namer.array(b.namer.anyType())
		}
		return b.namer.array(b.schemaType(item))
	case "object", "":
		if ap := schema.GetAdditionalProperties(); ap != nil && ap.GetLeft() != nil {
			return b.namer.dictionary(b.schemaType(ap))
		}
		return b.namer.anyType()
	case schemaTypeFile:
		return b.settings.FileResponseType()
	default:
		return b.namer.primitive(primaryType(schema), schema.GetFormat())
	}
}

// parameterType returns the type name of a non body parameter.
func (b *builder) parameterType(p *swagger.Parameter) string {
	switch p.GetType() {
	case "array":
		return b.namer.array(b.itemsType(p.Items))
	case schemaTypeFile:
		return FileParameterType
	default:
		return b.namer.primitive(p.GetType(), pointer.Value(p.Format))
	}
}

func (b *builder) itemsType(items *swagger.Items) string {
	if items == nil {
		return b.namer.anyType()
	}
	if items.GetType() == "array" {
		return b.namer.array(b.itemsType(items.Items))
	}

	return b.namer.primitive(items.GetType(), pointer.Value(items.Format))
}

func isStringSchema(js *oas3.JSONSchema[oas3.Referenceable]) bool {
	if js == nil {
		return false
	}
	schema := js.GetLeft()
	return schema != nil && !schema.IsReference() && primaryType(schema) == string(oas3.SchemaTypeString)
}

func isFileSchema(js *oas3.JSONSchema[oas3.Referenceable]) bool {
	if js == nil {
		return false
	}
	schema := js.GetLeft()
	return schema != nil && !schema.IsReference() && primaryType(schema) == schemaTypeFile
}

func primaryType(schema *oas3.Schema) string {
	for _, t := range schema.GetType() {
		if t != oas3.SchemaTypeNull {
			return string(t)
		}
	}
	return ""
}

// definitionName returns the type name of a definition reference, e.g. #/definitions/customer -> Customer.
func definitionName(ref references.Reference) string {
	name := string(ref)
	if idx := strings.Index(name, "#"); idx >= 0 {
		name = name[idx:]
	}
	name = strings.TrimPrefix(name, definitionsRef)
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return casing.ConvertToUpperCamelCase(identifier(unescapePointerToken(name)), true)
}

func unescapePointerToken(token string) string {
	return strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
}
