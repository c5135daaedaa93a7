package question

import (
	"errors"
	"fmt"
)

// ErrorType is the category of a question definition problem.
type ErrorType int

const (
	// ErrTypeMissingField indicates a required key (name, type, mask) is absent
	ErrTypeMissingField ErrorType = iota
	// ErrTypeUnknownType indicates the question type is not registered
	ErrTypeUnknownType
	// ErrTypeInvalidValues indicates malformed or empty choices
	ErrTypeInvalidValues
	// ErrTypeInvalidDisabled indicates a disabled flag that is not a boolean
	ErrTypeInvalidDisabled
	// ErrTypeInvalidValidator indicates a validator list or descriptor problem
	ErrTypeInvalidValidator
	// ErrTypeDuplicateName indicates two questions share a name
	ErrTypeDuplicateName
	// ErrTypeInvalidField indicates a field of the wrong shape
	ErrTypeInvalidField
	// ErrTypeInvalidMask indicates a mask without placeholders
	ErrTypeInvalidMask
	// ErrTypeInvalidDefault indicates a default the widget cannot hold
	ErrTypeInvalidDefault
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeMissingField:
		return "Missing Field"
	case ErrTypeUnknownType:
		return "Unknown Type"
	case ErrTypeInvalidValues:
		return "Invalid Values"
	case ErrTypeInvalidDisabled:
		return "Invalid Disabled Flag"
	case ErrTypeInvalidValidator:
		return "Invalid Validator"
	case ErrTypeDuplicateName:
		return "Duplicate Name"
	case ErrTypeInvalidField:
		return "Invalid Field"
	case ErrTypeInvalidMask:
		return "Invalid Mask"
	case ErrTypeInvalidDefault:
		return "Invalid Default"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DefinitionError reports a malformed question. It is raised before any
// form is shown.
type DefinitionError struct {
	Type     ErrorType
	Question string // question name, when known
	Index    int    // position in the question list
	Message  string
	Err      error
}

// Error implements the error interface
func (e *DefinitionError) Error() string {
	where := fmt.Sprintf("question #%d", e.Index+1)
	if e.Question != "" {
		where = fmt.Sprintf("question %q", e.Question)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s (caused by: %v)", where, e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", where, e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DefinitionError) Unwrap() error {
	return e.Err
}

func newDefinitionError(t ErrorType, index int, name, msg string, err error) *DefinitionError {
	return &DefinitionError{Type: t, Index: index, Question: name, Message: msg, Err: err}
}

// Errorf builds a DefinitionError for question q. Type checkers use it to
// report handler specific problems.
func Errorf(t ErrorType, q *Question, format string, args ...any) error {
	name := ""
	if q != nil {
		name = q.Name
	}
	return &DefinitionError{Type: t, Question: name, Message: fmt.Sprintf(format, args...)}
}

// IsDefinitionError checks if an error is a question definition error
func IsDefinitionError(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de)
}

// IsUnknownTypeError checks if an error reports an unregistered question type
func IsUnknownTypeError(err error) bool {
	var de *DefinitionError
	if errors.As(err, &de) {
		return de.Type == ErrTypeUnknownType
	}
	return false
}

// IsDuplicateNameError checks if an error reports a repeated question name
func IsDuplicateNameError(err error) bool {
	var de *DefinitionError
	if errors.As(err, &de) {
		return de.Type == ErrTypeDuplicateName
	}
	return false
}
