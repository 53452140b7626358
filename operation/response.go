package operation

// Response is a status keyed response descriptor produced upstream.
type Response struct {
	// StatusCode is the HTTP status code the response is declared for, or "default".
	StatusCode string
	// Type is the target language type of the response body, VoidType if it has none.
	Type string
	// Description is the documentation of the response.
	Description string
	// IsSuccess is set for 2xx responses.
	IsSuccess bool
	// IsFile is set for binary responses.
	IsFile bool
}

// HasType reports whether the response carries a body.
func (r *Response) HasType() bool {
	return r != nil && r.Type != "" && r.Type != VoidType
}

// Responses is the response set of an operation.
type Responses struct {
	// Items are the status specific responses in declaration order.
	Items []*Response
	// Default is the response used when no status specific entry matches.
	Default *Response
}
