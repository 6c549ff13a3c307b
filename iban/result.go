package iban

import (
	"encoding/json"
	"errors"
)

// Reason is a stable machine-readable code for a rejected IBAN.
type Reason string

const (
	ReasonCountryUnsupported Reason = "country_unsupported"
	ReasonCodeLengthInvalid  Reason = "code_length_invalid"
	ReasonPatternInvalid     Reason = "pattern_invalid"
)

type Status uint8

const (
	// StatusNotEvaluated means there was no value to check. It is not a pass.
	StatusNotEvaluated Status = iota
	StatusValid
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "not_evaluated"
	}
}

var (
	ErrInvalid      = errors.New("iban: invalid")
	ErrNotEvaluated = errors.New("iban: no value to validate")
)

// Result is the outcome of one validation call. Reason is set only when
// Status is StatusInvalid.
type Result struct {
	Status Status
	Reason Reason
}

var (
	Valid        = Result{Status: StatusValid}
	NotEvaluated = Result{Status: StatusNotEvaluated}
)

func invalid(r Reason) Result { return Result{Status: StatusInvalid, Reason: r} }

func (r Result) Valid() bool     { return r.Status == StatusValid }
func (r Result) Invalid() bool   { return r.Status == StatusInvalid }
func (r Result) Evaluated() bool { return r.Status != StatusNotEvaluated }

// Flags is the per-reason view used by form bindings. At most one flag is set.
type Flags struct {
	CountryUnsupported bool `json:"countryUnsupported"`
	CodeLengthInvalid  bool `json:"codeLengthInvalid"`
	PatternInvalid     bool `json:"patternInvalid"`
}

func (r Result) Flags() Flags {
	if r.Status != StatusInvalid {
		return Flags{}
	}
	return Flags{
		CountryUnsupported: r.Reason == ReasonCountryUnsupported,
		CodeLengthInvalid:  r.Reason == ReasonCodeLengthInvalid,
		PatternInvalid:     r.Reason == ReasonPatternInvalid,
	}
}

// Err returns nil only for a valid result. Absent input yields
// ErrNotEvaluated; a rejected IBAN yields *Error.
func (r Result) Err() error {
	switch r.Status {
	case StatusValid:
		return nil
	case StatusInvalid:
		return &Error{Reason: r.Reason}
	default:
		return ErrNotEvaluated
	}
}

func (r Result) String() string {
	if r.Status == StatusInvalid {
		return "invalid: " + string(r.Reason)
	}
	return r.Status.String()
}

type wireResult struct {
	IBANInvalid bool   `json:"ibanInvalid"`
	Error       *Flags `json:"error"`
}

// MarshalJSON renders {"ibanInvalid":true,"error":{...}} for a rejected IBAN,
// {"ibanInvalid":false,"error":null} for a valid one and null when nothing
// was evaluated.
func (r Result) MarshalJSON() ([]byte, error) {
	switch r.Status {
	case StatusValid:
		return json.Marshal(wireResult{})
	case StatusInvalid:
		f := r.Flags()
		return json.Marshal(wireResult{IBANInvalid: true, Error: &f})
	default:
		return []byte("null"), nil
	}
}

// Error is the error form of a rejected IBAN.
type Error struct {
	Reason Reason
}

func (e *Error) Error() string { return "iban: " + string(e.Reason) }

// Is makes every *Error match ErrInvalid.
func (e *Error) Is(target error) bool { return target == ErrInvalid }
