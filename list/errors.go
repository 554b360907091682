package list

import "errors"

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("not found")
)

// User-facing messages.
const (
	MsgListNameLength = "List name must be between 1 and 100 characters."
	MsgListNameUnique = "List name must be unique."
	MsgTodoNameLength = "Todo name must be between 1 and 100 characters."
	MsgListNotFound   = "The specified list was not found."
	MsgTodoNotFound   = "The specified todo was not found."
)

// ValidationError is returned when user input fails a length or uniqueness rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned when a referenced list or todo does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func listNotFound() error {
	return &NotFoundError{Message: MsgListNotFound}
}

func todoNotFound() error {
	return &NotFoundError{Message: MsgTodoNotFound}
}
