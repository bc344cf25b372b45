package rantsoen

import "fmt"

// ValidationError reports malformed or out-of-range input. It aborts a
// calculation before any computation runs; there are no partial results.
// Physical infeasibility (an over-saturated or structure-poor ration) is
// never a ValidationError; it is returned as data on the result.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

func validationErr(field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
