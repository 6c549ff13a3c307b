package iban

import (
	"regexp"
	"strings"
)

var (
	structureRe = regexp.MustCompile(`^([A-Z]{2})(\d{2})([A-Z0-9]+)$`)
	patternRe   = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{1,30}$`)
)

// Parsed is an IBAN split into its fixed fields.
type Parsed struct {
	CountryCode string
	CheckDigits string
	BBAN        string
}

// Normalize upper-cases s and drops every character outside A-Z and 0-9,
// which removes the spaces and hyphens used in printed IBANs. Upper-casing
// uses full Unicode case mapping, so a dotless ı becomes I before the filter.
func Normalize(s string) string {
	s = strings.ToUpper(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; isUpperASCII(c) || isDigitASCII(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Parse splits a normalized IBAN into country code, check digits and BBAN.
// It either fills all three fields or reports false.
func Parse(normalized string) (Parsed, bool) {
	m := structureRe.FindStringSubmatch(normalized)
	if m == nil {
		return Parsed{}, false
	}
	return Parsed{CountryCode: m[1], CheckDigits: m[2], BBAN: m[3]}, true
}

// String reassembles the electronic form.
func (p Parsed) String() string {
	return p.CountryCode + p.CheckDigits + p.BBAN
}

func countryPrefix(normalized string) string {
	if len(normalized) < 2 {
		return normalized
	}
	return normalized[:2]
}

func isUpperASCII(b byte) bool { return b >= 'A' && b <= 'Z' }

func isDigitASCII(b byte) bool { return b >= '0' && b <= '9' }

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
