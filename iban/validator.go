package iban

import "strings"

// Field is a record-shaped input such as a form control. A nil *Field or an
// empty Value is treated as absent.
type Field struct {
	Value string `json:"value"`
}

// Validator checks IBANs against a country table. The zero value is not
// usable; construct with New.
type Validator struct {
	table *Table
}

type Option func(*Validator)

// WithTable replaces the built-in registry. A nil table is ignored.
func WithTable(t *Table) Option {
	return func(v *Validator) {
		if t != nil {
			v.table = t
		}
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{table: DefaultTable()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Table() *Table { return v.table }

// ValidateText validates a bare string. Blank input is NotEvaluated.
func (v *Validator) ValidateText(s string) Result {
	if strings.TrimSpace(s) == "" {
		return NotEvaluated
	}
	return v.validate(Normalize(s))
}

// ValidateField validates the Value of a record-shaped input.
func (v *Validator) ValidateField(f *Field) Result {
	if f == nil {
		return NotEvaluated
	}
	return v.ValidateText(f.Value)
}

// Country returns the normalized country prefix of s when the table
// supports it.
func (v *Validator) Country(s string) (string, bool) {
	cc := countryPrefix(Normalize(s))
	if _, ok := v.table.LengthFor(cc); !ok {
		return "", false
	}
	return cc, true
}

// validate runs the gates in order; the first failure is the result.
func (v *Validator) validate(s string) Result {
	p, parsed := Parse(s)

	want, supported := v.table.LengthFor(countryPrefix(s))
	if !supported {
		return invalid(ReasonCountryUnsupported)
	}
	if !parsed || len(s) != want {
		return invalid(ReasonCodeLengthInvalid)
	}
	if !patternRe.MatchString(s) {
		return invalid(ReasonPatternInvalid)
	}
	if !checksumOK(p) {
		return invalid(ReasonPatternInvalid)
	}
	return Valid
}

var std = New()

// ValidateText validates s against the built-in registry.
func ValidateText(s string) Result { return std.ValidateText(s) }

// ValidateField validates f against the built-in registry.
func ValidateField(f *Field) Result { return std.ValidateField(f) }
