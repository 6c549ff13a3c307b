package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"

	"github.com/vortex-fintech/go-iban/iban"
)

// ToErrorResponse converts any error into an ErrorResponse.
// Supported inputs:
// - ErrorResponse / *ErrorResponse (passthrough)
// - context.Canceled / context.DeadlineExceeded
// - *FieldError (field-scoped domain failures)
// - *iban.Error and iban.ErrNotEvaluated (reported against field "iban")
func ToErrorResponse(err error) ErrorResponse {
	if err == nil {
		return Internal().WithReason("unexpected_error")
	}

	if errors.Is(err, context.Canceled) {
		return Canceled()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return DeadlineExceeded()
	}

	if e, ok := err.(ErrorResponse); ok {
		return e
	}
	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	field := DefaultIBANField
	var fe *FieldError
	if errors.As(err, &fe) {
		if fe.Field != "" {
			field = fe.Field
		}
		if fe.Err == nil {
			return ToValidation(field, reasonOr(fe.Reason, "invalid"))
		}
		err = fe.Err
	}

	if errors.Is(err, iban.ErrNotEvaluated) {
		return MissingValue(field)
	}
	var ie *iban.Error
	if errors.As(err, &ie) {
		return ToValidation(field, string(ie.Reason))
	}
	if fe != nil && fe.Reason != "" {
		return ToValidation(field, fe.Reason)
	}

	return Internal().WithReason("unexpected_error")
}

func ToValidation(field, reason string) ErrorResponse {
	return ValidationFields(map[string]string{field: reason})
}

func To(code codes.Code, reason, msg string) ErrorResponse {
	return New(msg, code, nil).WithReason(reason)
}

func reasonOr(r, fallback string) string {
	if r == "" {
		return fallback
	}
	return r
}
