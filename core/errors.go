// errors.go defines configuration errors with actionable instructions.
package core

import "fmt"

// ConfigError represents a configuration-related error with an
// actionable remediation instruction.
type ConfigError struct {
	Code    string // Error code for programmatic handling
	Message string // Human-readable error message
	Action  string // Actionable instruction for resolution
}

func (e *ConfigError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Action)
	}
	return e.Message
}

// Error codes for configuration errors.
const (
	ErrCodeMissingAuth   = "MISSING_AUTH"
	ErrCodeInvalidOption = "INVALID_OPTION"
	ErrCodeMissingInput  = "MISSING_INPUT"
)

// ErrMissingAuth returns an error for missing API credentials.
func ErrMissingAuth(service string) *ConfigError {
	var action string
	switch service {
	case "replicate":
		action = "Set REPLICATE_API_TOKEN in your environment or .env file"
	case "openai":
		action = "Set OPENAI_API_KEY in your environment or .env file"
	default:
		action = fmt.Sprintf("Set the required API key for %s", service)
	}
	return &ConfigError{
		Code:    ErrCodeMissingAuth,
		Message: fmt.Sprintf("Missing authentication credentials for %s", service),
		Action:  action,
	}
}

// ErrInvalidOption returns an error for an option value that fails
// validation.
func ErrInvalidOption(name, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidOption,
		Message: fmt.Sprintf("Invalid value for %s: %s", name, reason),
		Action:  fmt.Sprintf("Adjust the --%s flag and retry", name),
	}
}

// ErrMissingInput returns an error for a required input file that
// could not be read.
func ErrMissingInput(path, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeMissingInput,
		Message: fmt.Sprintf("Cannot read input file %s: %s", path, reason),
		Action:  "Check the path exists and is readable",
	}
}
