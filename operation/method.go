package operation

import "slices"

// HTTPMethod is an enum representing the HTTP methods an operation can be bound to.
type HTTPMethod string

const (
	// HTTPMethodGet represents the HTTP GET method.
	HTTPMethodGet HTTPMethod = "get"
	// HTTPMethodPut represents the HTTP PUT method.
	HTTPMethodPut HTTPMethod = "put"
	// HTTPMethodPost represents the HTTP POST method.
	HTTPMethodPost HTTPMethod = "post"
	// HTTPMethodDelete represents the HTTP DELETE method.
	HTTPMethodDelete HTTPMethod = "delete"
	// HTTPMethodOptions represents the HTTP OPTIONS method.
	HTTPMethodOptions HTTPMethod = "options"
	// HTTPMethodHead represents the HTTP HEAD method.
	HTTPMethodHead HTTPMethod = "head"
	// HTTPMethodPatch represents the HTTP PATCH method.
	HTTPMethodPatch HTTPMethod = "patch"
)

// HTTPMethods lists every supported method in declaration order.
var HTTPMethods = []HTTPMethod{
	HTTPMethodGet,
	HTTPMethodPut,
	HTTPMethodPost,
	HTTPMethodDelete,
	HTTPMethodOptions,
	HTTPMethodHead,
	HTTPMethodPatch,
}

// IsValid reports whether m is one of the supported methods.
func (m HTTPMethod) IsValid() bool {
	return slices.Contains(HTTPMethods, m)
}

func (m HTTPMethod) String() string {
	return string(m)
}
