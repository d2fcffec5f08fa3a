package scheduling

import "fmt"

// ValidationError reports user-correctable input problems (contact form,
// ineligible date, unknown time slot). The message is safe to show verbatim.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// StateError reports an operation that is not legal in the wizard's current
// state: a closed forward gate, a step mismatch, or month navigation outside
// the allowed window.
type StateError struct {
	Code    string
	Message string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewStateError(msg string) error {
	return &StateError{
		Code:    "stateError",
		Message: msg,
	}
}

// SessionError reports a wizard session that does not exist or has expired.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionError(msg string) error {
	return &SessionError{
		Code:    "sessionError",
		Message: msg,
	}
}
