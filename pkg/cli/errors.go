package cli

import "fmt"

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationFailedError is returned when at least one validated document
// had errors.
type ValidationFailedError struct {
	Failed int
	Total  int
	Errors int
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %d of %d file(s) invalid, %d error(s)", e.Failed, e.Total, e.Errors)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// NewValidationFailedError creates a ValidationFailedError from a summary.
func NewValidationFailedError(s Summary) *ValidationFailedError {
	return &ValidationFailedError{
		Failed: s.Failed,
		Total:  s.Total,
		Errors: s.Errors,
	}
}
