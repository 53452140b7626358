package operation

import "github.com/speakeasy-api/openapi-clientgen/settings"

const (
	// VoidType is the result type sentinel of operations without a response body.
	VoidType = "void"

	// TaskType is the awaitable result wrapper of the csharp profile.
	TaskType = "System.Threading.Tasks.Task"
	// EnvelopeType is the success envelope carrying status code, headers and payload.
	EnvelopeType = "SwaggerResponse"
)

// WrapResultType returns the type a generated client method returns for the unwrapped result type.
//
// Only the csharp profile wraps results. For it the rules are evaluated in order:
//  1. FileResponse, or the configured ResultTypeOverride, is always wrapped as Task<T>, ignoring WrapSuccessResponses;
//  2. with WrapSuccessResponses the result is Task<SwaggerResponse<T>>, or Task<SwaggerResponse> for void;
//  3. otherwise the result is Task<T>, or the non generic Task for void.
//
// Every other profile returns unwrapped verbatim.
func WrapResultType(unwrapped string, profile settings.Profile, s *settings.Settings) string {
	switch profile {
	case settings.ProfileCSharp:
		return wrapTask(unwrapped, s)
	default:
		return unwrapped
	}
}

func wrapTask(unwrapped string, s *settings.Settings) string {
	if IsFileResponse(unwrapped, s) {
		return generic(TaskType, unwrapped)
	}

	if s.GetWrapSuccessResponses() {
		if unwrapped == VoidType {
			return generic(TaskType, EnvelopeType)
		}
		return generic(TaskType, generic(EnvelopeType, unwrapped))
	}

	if unwrapped == VoidType {
		return TaskType
	}
	return generic(TaskType, unwrapped)
}

func generic(typeName, argument string) string {
	return typeName + "<" + argument + ">"
}

// IsFileResponse reports whether unwrapped names a binary response.
// FileResponse stays a file sentinel when an override adds another name.
func IsFileResponse(unwrapped string, s *settings.Settings) bool {
	return unwrapped == settings.DefaultFileResponseType || unwrapped == s.FileResponseType()
}
