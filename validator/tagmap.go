package validator

var tagMap = map[string]string{
	"required":     "required",
	"omitempty":    "optional",
	"eqfield":      "field_mismatch",
	"nefield":      "field_should_differ",
	"max":          "too_long",
	"min":          "too_short",
	"len":          "invalid_length",
	"oneof":        "invalid_choice",
	"alpha":        "only_letters_allowed",
	"alphanum":     "only_letters_and_digits_allowed",
	"numeric":      "only_numbers_allowed",
	"iso4217":      "invalid_currency",
	"bic":          "invalid_bic",
	"iban":         "invalid_iban",
	"iban_country": "invalid_iban",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
