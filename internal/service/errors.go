package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrInvalidPayload     = errors.New("invalid payload")
)

// RestaurantNotFoundError names the missing restaurant and matches
// ErrRestaurantNotFound under errors.Is.
type RestaurantNotFoundError struct {
	ID string
}

func (e *RestaurantNotFoundError) Error() string {
	return fmt.Sprintf("Restaurant %s not found", e.ID)
}

func (e *RestaurantNotFoundError) Is(target error) bool {
	return target == ErrRestaurantNotFound
}

// ValidationError lists every token of a field that fell outside its
// vocabulary.
type ValidationError struct {
	Field   string
	Invalid []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Field, strings.Join(e.Invalid, ", "))
}

func invalidPayload(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPayload, fmt.Sprintf(format, args...))
}
