// Package errors provides standardized error handling for configuration
// loading and validation. It includes the configuration error taxonomy,
// standard error variables, and helper functions for consistent wrapping
// and classification across the module.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error variables for configuration failures
var (
	// ErrMissingProperty indicates a required property with no default is
	// absent from the source.
	ErrMissingProperty = errors.New("missing required property")

	// ErrInvalidPropertyFormat indicates a present value could not be
	// parsed as the required type.
	ErrInvalidPropertyFormat = errors.New("invalid property format")

	// ErrConstraintViolation indicates a resolved value, or a relationship
	// between resolved values, violates a configuration invariant.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidConfig is the generic umbrella for configuration that
	// cannot be used as supplied.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PropertyError carries the offending property name(s) alongside the
// classifying sentinel error. Related is set for relationship constraints
// (e.g. a minimum exceeding its maximum), Value for format failures.
type PropertyError struct {
	Property string
	Related  string
	Value    string
	Err      error
	Message  string
}

// Error implements the error interface
func (pe *PropertyError) Error() string {
	if pe.Message != "" {
		return pe.Message
	}
	return fmt.Sprintf("property '%s': %v", pe.Property, pe.Err)
}

// Unwrap returns the classifying sentinel error
func (pe *PropertyError) Unwrap() error {
	return pe.Err
}

// NewMissingProperty creates an error for a required property absent from
// the source.
func NewMissingProperty(property string) error {
	return &PropertyError{
		Property: property,
		Err:      ErrMissingProperty,
		Message:  fmt.Sprintf("property '%s' is required but was not found", property),
	}
}

// NewInvalidPropertyFormat creates an error for a value that cannot be
// parsed as its required type. The cause (typically a strconv error) is
// recorded in the message; the error classifies as ErrInvalidPropertyFormat
// for errors.Is checks.
func NewInvalidPropertyFormat(property, value string, cause error) error {
	msg := fmt.Sprintf("property '%s' has value '%s' which cannot be parsed", property, value)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &PropertyError{
		Property: property,
		Value:    value,
		Err:      ErrInvalidPropertyFormat,
		Message:  msg,
	}
}

// NewConstraintViolation creates an error for a violated invariant. The
// message must identify the offending property name(s) and the rule; the
// property names are also carried structurally for callers that inspect
// rather than print.
func NewConstraintViolation(message, property string, related ...string) error {
	pe := &PropertyError{
		Property: property,
		Err:      ErrConstraintViolation,
		Message:  message,
	}
	if len(related) > 0 {
		pe.Related = strings.Join(related, ",")
	}
	return pe
}

// IsMissingProperty checks if an error is a missing required property
func IsMissingProperty(err error) bool {
	return errors.Is(err, ErrMissingProperty)
}

// IsInvalidPropertyFormat checks if an error is a property parse failure
func IsInvalidPropertyFormat(err error) bool {
	return errors.Is(err, ErrInvalidPropertyFormat)
}

// IsConstraintViolation checks if an error is a violated invariant
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}

// Property extracts the offending property name from a configuration
// error, or "" when the error carries none.
func Property(err error) string {
	var pe *PropertyError
	if errors.As(err, &pe) {
		return pe.Property
	}
	return ""
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}
