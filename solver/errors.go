package solver

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyLevel is returned when no level number was given. No request is
// made in that case.
var ErrEmptyLevel = errors.New("level number is required")

// Category is the user-facing class of a transport failure.
type Category string

const (
	CategoryConnection  Category = "connection"
	CategoryNotFound    Category = "not_found"
	CategoryServerError Category = "server_error"
	CategoryGeneric     Category = "generic"
)

// categoryForStatus maps the relay's HTTP status to a Category.
func categoryForStatus(status int) Category {
	switch status {
	case http.StatusNotFound:
		return CategoryNotFound
	case http.StatusInternalServerError:
		return CategoryServerError
	default:
		return CategoryGeneric
	}
}

// TransportError is a failure to obtain HTML through the relay.
// Status is the relay response status and is zero when the relay was
// unreachable.
type TransportError struct {
	Category Category
	Status   int
	Message  string
	Err      error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
