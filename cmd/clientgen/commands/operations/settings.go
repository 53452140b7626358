package operations

import (
	"github.com/speakeasy-api/openapi-clientgen/settings"
)

// Overrides holds the settings given on the command line. Nil fields keep the configured value.
type Overrides struct {
	Profile              *settings.Profile
	WrapSuccessResponses *bool
	ContinueOnError      *bool
}

// ResolveSettings layers the defaults, the optional settings file, the CLIENTGEN_ environment
// and the command line overrides, in that order, and validates the result.
// A nil environment reads the process environment.
func ResolveSettings(configFile string, environment map[string]string, o Overrides) (*settings.Settings, error) {
	s := settings.Default()
	if configFile != "" {
		loaded, err := settings.Load(configFile)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	if err := settings.FromEnvironment(s, environment); err != nil {
		return nil, err
	}

	if o.Profile != nil {
		s.Profile = *o.Profile
	}
	if o.WrapSuccessResponses != nil {
		s.WrapSuccessResponses = *o.WrapSuccessResponses
	}
	if o.ContinueOnError != nil {
		s.ContinueOnError = *o.ContinueOnError
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
