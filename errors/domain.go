package errors

import "fmt"

// DefaultIBANField names the field when an IBAN error carries no field path.
const DefaultIBANField = "iban"

// FieldError attaches a field path to a validation failure. Err, when set,
// is the underlying cause (for example *iban.Error).
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	reason := e.Reason
	if reason == "" && e.Err != nil {
		reason = e.Err.Error()
	}
	if e.Field == "" {
		return reason
	}
	return fmt.Sprintf("%s: %s", e.Field, reason)
}

func (e *FieldError) Unwrap() error { return e.Err }

// InField scopes err to field. A nil err stays nil.
func InField(field string, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Field: field, Err: err}
}
