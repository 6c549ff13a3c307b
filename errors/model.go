package errors

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"google.golang.org/grpc/codes"
)

// Reason is a stable machine-readable code, for example "validation_failed"
// or "code_length_invalid".
type Reason string

type FieldViolation struct {
	Field       string `json:"field"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the transport-agnostic error shared by the HTTP and gRPC
// surfaces and by logs. Builders return modified copies; maps and slices are
// never shared between copies.
type ErrorResponse struct {
	Code       codes.Code        `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Domain     string            `json:"domain,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

func New(message string, code codes.Code, details map[string]string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, Details: cloneDetails(details)}
}

func (e ErrorResponse) WithReason(r string) ErrorResponse { e.Reason = Reason(r); return e }
func (e ErrorResponse) WithDomain(d string) ErrorResponse { e.Domain = d; return e }

func (e ErrorResponse) WithDetail(k, v string) ErrorResponse {
	return e.WithDetails(map[string]string{k: v})
}

func (e ErrorResponse) WithDetails(m map[string]string) ErrorResponse {
	if len(m) == 0 {
		return e
	}
	merged := make(map[string]string, len(e.Details)+len(m))
	maps.Copy(merged, e.Details)
	maps.Copy(merged, m)
	e.Details = merged
	return e
}

func (e ErrorResponse) WithViolations(v []FieldViolation) ErrorResponse {
	if len(v) > 0 {
		e.Violations = slices.Clone(v)
	}
	return e
}

// wireError is the JSON rendering used by ToString and ToHTTP. The code is
// written by name ("InvalidArgument") rather than number.
type wireError struct {
	Code       string            `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Domain     string            `json:"domain,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

func (e ErrorResponse) wire() wireError {
	return wireError{
		Code:       e.Code.String(),
		Reason:     e.Reason,
		Domain:     e.Domain,
		Message:    e.Message,
		Details:    e.Details,
		Violations: e.Violations,
	}
}

func (e ErrorResponse) ToString() string {
	b, _ := json.Marshal(e.wire())
	return string(b)
}

func (e ErrorResponse) Error() string { return e.ToString() }

// ViolationsFromMap builds one violation per field, ordered by field name.
func ViolationsFromMap(m map[string]string) []FieldViolation {
	if len(m) == 0 {
		return nil
	}
	out := make([]FieldViolation, 0, len(m))
	for _, f := range slices.Sorted(maps.Keys(m)) {
		out = append(out, FieldViolation{Field: f, Reason: m[f]})
	}
	return out
}

func cloneDetails(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	return maps.Clone(in)
}

// HasViolation reports whether field was rejected, optionally with reason.
func (e ErrorResponse) HasViolation(field, reason string) bool {
	return slices.ContainsFunc(e.Violations, func(v FieldViolation) bool {
		return strings.EqualFold(v.Field, field) && (reason == "" || v.Reason == reason)
	})
}
