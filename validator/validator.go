package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/go-iban/errors"
	"github.com/vortex-fintech/go-iban/iban"
)

const (
	TagIBAN        = "iban"
	TagIBANCountry = "iban_country"
)

// ReasonCountryMismatch is reported by iban_country when the IBAN is valid but
// issued by another country.
const ReasonCountryMismatch = "iban_country_mismatch"

var (
	v     *validator.Validate
	ibans = iban.New()
)

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(TagIBAN, isIBAN); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(TagIBANCountry, isIBANFromCountry); err != nil {
		panic(err)
	}
}

func Instance() *validator.Validate {
	return v
}

// Validate returns field -> reason code for every failed rule, or nil.
// IBAN rules report the failing gate ("country_unsupported",
// "code_length_invalid", "pattern_invalid").
func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string, len(errs))
			for _, e := range errs {
				out[e.Field()] = reasonFor(e)
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}

// ValidateStruct is Validate in ErrorResponse form with nested field paths.
func ValidateStruct(i any) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok {
		return errors.FromPlayground(errs, reasonFor)
	}
	return errors.InvalidArgument().WithReason("validation_failed")
}

func isIBAN(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl.Field().Interface())
	return ok && ibans.ValidateText(s).Valid()
}

func isIBANFromCountry(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl.Field().Interface())
	if !ok || !ibans.ValidateText(s).Valid() {
		return false
	}
	cc, _ := ibans.Country(s)
	return strings.EqualFold(cc, strings.TrimSpace(fl.Param()))
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case TagIBAN, TagIBANCountry:
		s, _ := stringValue(fe.Value())
		res := ibans.ValidateText(s)
		switch res.Status {
		case iban.StatusInvalid:
			return string(res.Reason)
		case iban.StatusNotEvaluated:
			return mapTagToCode("required")
		default:
			if fe.Tag() == TagIBANCountry {
				return ReasonCountryMismatch
			}
		}
	}
	return mapTagToCode(fe.Tag())
}

func stringValue(x any) (string, bool) {
	switch s := x.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	default:
		return "", false
	}
}
