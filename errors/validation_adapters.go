package errors

import (
	"fmt"
	"strings"

	play "github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/go-iban/iban"
)

// FromPlayground adapts go-playground/validator errors into InvalidArgument
// with one violation per field. reasonFor maps a field error to its reason
// code; an empty result falls back to "invalid".
func FromPlayground(err play.ValidationErrors, reasonFor func(play.FieldError) string) ErrorResponse {
	violations := make([]FieldViolation, 0, len(err))
	for _, fe := range err {
		reason := ""
		if reasonFor != nil {
			reason = reasonFor(fe)
		}
		if reason == "" {
			reason = "invalid"
		}

		field := fieldPath(fe)
		violations = append(violations, FieldViolation{
			Field:       field,
			Reason:      reason,
			Description: fmt.Sprintf("%s validation failed (%s)", field, fe.Tag()),
		})
	}
	return ValidationViolations(violations)
}

// fieldPath prefers the struct namespace without its root type, for example
// "Payout.Account.IBAN" -> "Account.IBAN".
func fieldPath(fe play.FieldError) string {
	ns := fe.StructNamespace()
	if ns == "" {
		ns = fe.Namespace()
	}
	if i := strings.Index(ns, "."); i >= 0 && i+1 < len(ns) {
		return ns[i+1:]
	}
	if ns != "" {
		return ns
	}
	return fe.Field()
}

// FromIBAN maps a validation result onto a field error. It reports ok=false
// for a valid result, which has nothing to report.
func FromIBAN(field string, res iban.Result) (ErrorResponse, bool) {
	if field == "" {
		field = DefaultIBANField
	}
	switch res.Status {
	case iban.StatusValid:
		return ErrorResponse{}, false
	case iban.StatusInvalid:
		return ToValidation(field, string(res.Reason)).
			WithDetail("iban_invalid", "true"), true
	default:
		return MissingValue(field), true
	}
}
