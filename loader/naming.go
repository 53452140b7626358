package loader

import (
	"strings"
	"unicode"

	"github.com/speakeasy-api/openapi-clientgen/casing"
	"github.com/speakeasy-api/openapi-clientgen/operation"
	"github.com/speakeasy-api/openapi-clientgen/settings"
)

// OperationName derives the generation facing name of an operation for the given naming mode.
// Operations without an id fall back to a name built from the path and method.
func OperationName(naming settings.OperationNaming, operationID, path string, method operation.HTTPMethod) string {
	switch naming {
	case settings.OperationNamingOperationIDSuffix:
		if operationID != "" {
			if idx := strings.LastIndex(operationID, "_"); idx >= 0 && idx < len(operationID)-1 {
				return operationID[idx+1:]
			}
			return operationID
		}
	case settings.OperationNamingPathAndMethod:
		return pathAndMethodName(path, method)
	default:
		if operationID != "" {
			return operationID
		}
	}

	return pathAndMethodName(path, method)
}

// pathAndMethodName builds names such as GetCustomersOrders for GET /customers/{id}/orders.
func pathAndMethodName(path string, method operation.HTTPMethod) string {
	var sb strings.Builder
	sb.WriteString(casing.ConvertToUpperCamelCase(method.String(), false))

	for segment := range strings.SplitSeq(path, "/") {
		if segment == "" || strings.HasPrefix(segment, "{") {
			continue
		}
		sb.WriteString(casing.ConvertToUpperCamelCase(identifier(segment), false))
	}

	return sb.String()
}

// variableName returns the identifier of a parameter in generated code, e.g. X-Request-Id -> xRequestId.
func variableName(name string) string {
	return casing.ConvertToLowerCamelCase(identifier(name), true)
}

// identifier replaces characters that cannot appear in identifiers by word separators.
func identifier(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, name)
}
