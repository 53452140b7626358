// Package settings holds the generator settings that drive operation projection.
package settings

import (
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/speakeasy-api/openapi/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrInvalidSettings is returned when settings contain unsupported values.
	ErrInvalidSettings = errors.Error("invalid generator settings")

	// DefaultFileResponseType is the result type name used for binary responses when no override is configured.
	DefaultFileResponseType = "FileResponse"
	// DefaultExceptionType is the exception type used when error responses do not share a single type.
	DefaultExceptionType = "SwaggerException"

	// EnvPrefix is the prefix of every environment variable read by FromEnv.
	EnvPrefix = "CLIENTGEN_"
)

// Profile selects the target language policy applied during projection.
type Profile string

const (
	// ProfileCSharp wraps results in awaitable task types.
	ProfileCSharp Profile = "csharp"
	// ProfileTypeScript passes result types through unchanged.
	ProfileTypeScript Profile = "typescript"
)

// IsValid reports whether the profile is known.
func (p Profile) IsValid() bool {
	switch p {
	case ProfileCSharp, ProfileTypeScript:
		return true
	default:
		return false
	}
}

// OperationNaming selects how the generation facing operation name is derived.
type OperationNaming string

const (
	// OperationNamingOperationID uses the operation id verbatim.
	OperationNamingOperationID OperationNaming = "operationId"
	// OperationNamingOperationIDSuffix uses the part of the operation id after the last underscore.
	OperationNamingOperationIDSuffix OperationNaming = "operationIdSuffix"
	// OperationNamingPathAndMethod builds the name from the path segments and the HTTP method.
	OperationNamingPathAndMethod OperationNaming = "pathAndMethod"
)

// IsValid reports whether the naming mode is known.
func (n OperationNaming) IsValid() bool {
	switch n {
	case OperationNamingOperationID, OperationNamingOperationIDSuffix, OperationNamingPathAndMethod:
		return true
	default:
		return false
	}
}

// Settings is the configuration bag read by the loader, the projector and the generation loop.
type Settings struct {
	// Profile is the target profile discriminator.
	Profile Profile `yaml:"profile" env:"PROFILE"`
	// WrapSuccessResponses wraps non-void results in a success envelope carrying status and headers.
	WrapSuccessResponses bool `yaml:"wrapSuccessResponses" env:"WRAP_SUCCESS_RESPONSES"`
	// ResultTypeOverride replaces the type name given to binary responses.
	ResultTypeOverride *string `yaml:"resultTypeOverride,omitempty" env:"RESULT_TYPE_OVERRIDE"`
	// ExceptionType is the fallback exception type of generated operations.
	ExceptionType string `yaml:"exceptionType" env:"EXCEPTION_TYPE"`
	// OperationNaming selects how operation names are derived.
	OperationNaming OperationNaming `yaml:"operationNaming" env:"OPERATION_NAMING"`
	// Concurrency limits the number of operations projected in parallel.
	Concurrency int `yaml:"concurrency" env:"CONCURRENCY"`
	// ContinueOnError skips malformed operations instead of aborting the run.
	ContinueOnError bool `yaml:"continueOnError" env:"CONTINUE_ON_ERROR"`
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	return &Settings{
		Profile:         ProfileCSharp,
		ExceptionType:   DefaultExceptionType,
		OperationNaming: OperationNamingOperationID,
		Concurrency:     runtime.GOMAXPROCS(0),
	}
}

// Load reads settings from a YAML file on top of the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return s, nil
}

// FromEnv applies CLIENTGEN_ prefixed environment variables on top of s.
func FromEnv(s *Settings) error {
	return FromEnvironment(s, nil)
}

// FromEnvironment is FromEnv reading from the provided environment instead of the process one.
// A nil environment reads the process environment.
func FromEnvironment(s *Settings, environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}

	if err := env.ParseWithOptions(s, opts); err != nil {
		return fmt.Errorf("failed to read settings from environment: %w", err)
	}
	return nil
}

// Validate checks the settings for unsupported values.
func (s *Settings) Validate() error {
	if s == nil {
		return ErrInvalidSettings.Wrap(errors.New("settings are nil"))
	}

	errs := []error{}
	if !s.Profile.IsValid() {
		errs = append(errs, fmt.Errorf("unknown profile `%s`", s.Profile))
	}
	if !s.OperationNaming.IsValid() {
		errs = append(errs, fmt.Errorf("unknown operation naming `%s`", s.OperationNaming))
	}
	if s.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative, got %d", s.Concurrency))
	}
	if s.ResultTypeOverride != nil && *s.ResultTypeOverride == "" {
		errs = append(errs, errors.New("resultTypeOverride must not be empty when set"))
	}

	if len(errs) > 0 {
		return ErrInvalidSettings.Wrap(errors.Join(errs...))
	}
	return nil
}

// GetProfile returns the configured profile. Returns ProfileCSharp if s is nil or the profile is unset.
func (s *Settings) GetProfile() Profile {
	if s == nil || s.Profile == "" {
		return ProfileCSharp
	}
	return s.Profile
}

// GetWrapSuccessResponses returns the value of WrapSuccessResponses. False by default if not set.
func (s *Settings) GetWrapSuccessResponses() bool {
	if s == nil {
		return false
	}
	return s.WrapSuccessResponses
}

// FileResponseType returns the result type name that marks a binary response.
func (s *Settings) FileResponseType() string {
	if s == nil || s.ResultTypeOverride == nil || *s.ResultTypeOverride == "" {
		return DefaultFileResponseType
	}
	return *s.ResultTypeOverride
}

// GetExceptionType returns the configured exception type. Returns DefaultExceptionType if not set.
func (s *Settings) GetExceptionType() string {
	if s == nil || s.ExceptionType == "" {
		return DefaultExceptionType
	}
	return s.ExceptionType
}

// GetOperationNaming returns the configured naming mode. Returns OperationNamingOperationID if not set.
func (s *Settings) GetOperationNaming() OperationNaming {
	if s == nil || s.OperationNaming == "" {
		return OperationNamingOperationID
	}
	return s.OperationNaming
}

// GetConcurrency returns the parallelism of the generation loop, at least 1.
func (s *Settings) GetConcurrency() int {
	if s == nil || s.Concurrency <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return s.Concurrency
}

// GetContinueOnError returns the value of ContinueOnError. False by default if not set.
func (s *Settings) GetContinueOnError() bool {
	if s == nil {
		return false
	}
	return s.ContinueOnError
}
