package errors

import "fmt"

// FoodError is the structured error type for foodindex.
// It provides rich context for error handling, logging, and user presentation.
type FoodError struct {
	// Code is the unique error code (e.g., "ERR_402_UNKNOWN_LANGUAGE").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Dependency, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Retryable indicates if the operation can be retried.
	Retryable bool

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *FoodError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *FoodError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with FoodError.
func (e *FoodError) Is(target error) bool {
	if t, ok := target.(*FoodError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *FoodError) WithDetail(key, value string) *FoodError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *FoodError) WithSuggestion(suggestion string) *FoodError {
	e.Suggestion = suggestion
	return e
}

// New creates a new FoodError with the given code and message.
// Category, severity, and retryable flag are derived from the code.
func New(code string, message string, cause error) *FoodError {
	return &FoodError{
		Code:      code,
		Message:   message,
		Category:  categoryFromCode(code),
		Severity:  severityFromCode(code),
		Cause:     cause,
		Retryable: isRetryableCode(code),
	}
}

// Wrap creates a FoodError from an existing error.
// The error's message becomes the FoodError message.
func Wrap(code string, err error) *FoodError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *FoodError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// DependencyError creates an error for a failed external collaborator.
func DependencyError(message string, cause error) *FoodError {
	return New(ErrCodeDependencyUnavailable, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *FoodError {
	return New(ErrCodeInvalidInput, message, cause)
}

// UnknownLanguage reports a language code with no registered backend.
func UnknownLanguage(code string) *FoodError {
	return New(ErrCodeUnknownLanguage, fmt.Sprintf("no language backend registered for %q", code), nil).
		WithDetail("language", code).
		WithSuggestion("fall back to a registered language such as \"en\"")
}

// StageFailed reports a failed variant-generation or normalization stage.
func StageFailed(stage string, cause error) *FoodError {
	return New(ErrCodeStageFailed, fmt.Sprintf("stage %s failed", stage), cause).
		WithDetail("stage", stage)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *FoodError {
	return New(ErrCodeInternal, message, cause)
}

// IsRetryable checks if an error is retryable.
// Returns true if the error chain contains a FoodError with Retryable flag set.
func IsRetryable(err error) bool {
	fe, ok := asFoodError(err)
	return ok && fe.Retryable
}

// GetCode extracts the error code from a FoodError.
// Returns empty string if not a FoodError.
func GetCode(err error) string {
	if fe, ok := asFoodError(err); ok {
		return fe.Code
	}
	return ""
}
