package operation

import "slices"

// JSONContentType is the preferred and default MIME type of request and response bodies.
const JSONContentType = "application/json"

// ResolveContentType picks the MIME type used by generated call sites.
// JSON wins whenever it is listed, otherwise the first listed type is used.
// An empty or absent list resolves to JSON.
func ResolveContentType(types []string) string {
	if slices.Contains(types, JSONContentType) {
		return JSONContentType
	}
	if len(types) > 0 {
		return types[0]
	}
	return JSONContentType
}
