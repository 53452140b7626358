package operation

// RawOperation is a single parsed operation of an API description. It is never modified by projection.
type RawOperation struct {
	// ID is the operation identifier.
	ID string
	// Method is the HTTP method the operation is bound to.
	Method HTTPMethod
	// Path is the path template of the operation.
	Path string
	// Summary is a short summary of what the operation does.
	Summary string
	// Description is a verbose explanation of the operation behavior.
	Description string
	// Deprecated declares this operation to be deprecated.
	Deprecated bool
	// Consumes is the list of accepted MIME types, nil when absent.
	Consumes []string
	// Produces is the list of produced MIME types, nil when absent.
	Produces []string
	// Parameters are the parameter entities of the operation.
	Parameters []RawParameter
}
