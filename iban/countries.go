package iban

import (
	"errors"
	"fmt"
	"slices"
)

// minLength is the shortest IBAN the structure allows: country code, check
// digits and a single BBAN character.
const minLength = 5

var (
	ErrInvalidCountryCode = errors.New("iban: country code must be two ASCII letters")
	ErrDuplicateCountry   = errors.New("iban: duplicate country code")
	ErrInvalidLength      = errors.New("iban: expected length too short")
)

// Country is one entry of the IBAN registry.
type Country struct {
	Code   string
	Name   string
	Length int
}

// Table maps an issuing country code to the exact total length of its IBANs.
// A Table is immutable once built and safe for concurrent reads.
type Table struct {
	byCode map[string]Country
	codes  []string
}

var registry = []Country{
	{Code: "AD", Name: "Andorra", Length: 24},
	{Code: "AE", Name: "United Arab Emirates", Length: 23},
	{Code: "AL", Name: "Albania", Length: 28},
	{Code: "AO", Name: "Angola", Length: 25},
	{Code: "AT", Name: "Austria", Length: 20},
	{Code: "AZ", Name: "Azerbaijan", Length: 28},
	{Code: "BA", Name: "Bosnia and Herzegovina", Length: 20},
	{Code: "BE", Name: "Belgium", Length: 16},
	{Code: "BF", Name: "Burkina Faso", Length: 28},
	{Code: "BG", Name: "Bulgaria", Length: 22},
	{Code: "BH", Name: "Bahrain", Length: 22},
	{Code: "BI", Name: "Burundi", Length: 27},
	{Code: "BJ", Name: "Benin", Length: 28},
	{Code: "BR", Name: "Brazil", Length: 29},
	{Code: "BY", Name: "Belarus", Length: 28},
	{Code: "CF", Name: "Central African Republic", Length: 27},
	{Code: "CG", Name: "Congo", Length: 27},
	{Code: "CH", Name: "Switzerland", Length: 21},
	{Code: "CI", Name: "Côte d'Ivoire", Length: 28},
	{Code: "CM", Name: "Cameroon", Length: 27},
	{Code: "CR", Name: "Costa Rica", Length: 22},
	{Code: "CV", Name: "Cape Verde", Length: 25},
	{Code: "CY", Name: "Cyprus", Length: 28},
	{Code: "CZ", Name: "Czech Republic", Length: 24},
	{Code: "DE", Name: "Germany", Length: 22},
	{Code: "DJ", Name: "Djibouti", Length: 27},
	{Code: "DK", Name: "Denmark", Length: 18},
	{Code: "DO", Name: "Dominican Republic", Length: 28},
	{Code: "DZ", Name: "Algeria", Length: 26},
	{Code: "EE", Name: "Estonia", Length: 20},
	{Code: "EG", Name: "Egypt", Length: 29},
	{Code: "ES", Name: "Spain", Length: 24},
	{Code: "FI", Name: "Finland", Length: 18},
	{Code: "FK", Name: "Falkland Islands", Length: 18},
	{Code: "FO", Name: "Faroe Islands", Length: 18},
	{Code: "FR", Name: "France", Length: 27},
	{Code: "GA", Name: "Gabon", Length: 27},
	{Code: "GB", Name: "United Kingdom", Length: 22},
	{Code: "GE", Name: "Georgia", Length: 22},
	{Code: "GI", Name: "Gibraltar", Length: 23},
	{Code: "GL", Name: "Greenland", Length: 18},
	{Code: "GQ", Name: "Equatorial Guinea", Length: 27},
	{Code: "GR", Name: "Greece", Length: 27},
	{Code: "GT", Name: "Guatemala", Length: 28},
	{Code: "GW", Name: "Guinea-Bissau", Length: 25},
	{Code: "HN", Name: "Honduras", Length: 28},
	{Code: "HR", Name: "Croatia", Length: 21},
	{Code: "HU", Name: "Hungary", Length: 28},
	{Code: "IE", Name: "Ireland", Length: 22},
	{Code: "IL", Name: "Israel", Length: 23},
	{Code: "IQ", Name: "Iraq", Length: 23},
	{Code: "IR", Name: "Iran", Length: 26},
	{Code: "IS", Name: "Iceland", Length: 26},
	{Code: "IT", Name: "Italy", Length: 27},
	{Code: "JO", Name: "Jordan", Length: 30},
	{Code: "KM", Name: "Comoros", Length: 27},
	{Code: "KW", Name: "Kuwait", Length: 30},
	{Code: "KZ", Name: "Kazakhstan", Length: 20},
	{Code: "LB", Name: "Lebanon", Length: 28},
	{Code: "LC", Name: "Saint Lucia", Length: 32},
	{Code: "LI", Name: "Liechtenstein", Length: 21},
	{Code: "LT", Name: "Lithuania", Length: 20},
	{Code: "LU", Name: "Luxembourg", Length: 20},
	{Code: "LV", Name: "Latvia", Length: 21},
	{Code: "LY", Name: "Libya", Length: 25},
	{Code: "MA", Name: "Morocco", Length: 28},
	{Code: "MC", Name: "Monaco", Length: 27},
	{Code: "MD", Name: "Moldova", Length: 24},
	{Code: "ME", Name: "Montenegro", Length: 22},
	{Code: "MG", Name: "Madagascar", Length: 27},
	{Code: "MK", Name: "North Macedonia", Length: 19},
	{Code: "ML", Name: "Mali", Length: 28},
	{Code: "MN", Name: "Mongolia", Length: 20},
	{Code: "MR", Name: "Mauritania", Length: 27},
	{Code: "MT", Name: "Malta", Length: 31},
	{Code: "MU", Name: "Mauritius", Length: 30},
	{Code: "MZ", Name: "Mozambique", Length: 25},
	{Code: "NE", Name: "Niger", Length: 28},
	{Code: "NI", Name: "Nicaragua", Length: 28},
	{Code: "NL", Name: "Netherlands", Length: 18},
	{Code: "NO", Name: "Norway", Length: 15},
	{Code: "OM", Name: "Oman", Length: 23},
	{Code: "PK", Name: "Pakistan", Length: 24},
	{Code: "PL", Name: "Poland", Length: 28},
	{Code: "PS", Name: "Palestine", Length: 29},
	{Code: "PT", Name: "Portugal", Length: 25},
	{Code: "QA", Name: "Qatar", Length: 29},
	{Code: "RO", Name: "Romania", Length: 24},
	{Code: "RS", Name: "Serbia", Length: 22},
	{Code: "RU", Name: "Russia", Length: 33},
	{Code: "SA", Name: "Saudi Arabia", Length: 24},
	{Code: "SC", Name: "Seychelles", Length: 31},
	{Code: "SD", Name: "Sudan", Length: 18},
	{Code: "SE", Name: "Sweden", Length: 24},
	{Code: "SI", Name: "Slovenia", Length: 19},
	{Code: "SK", Name: "Slovak Republic", Length: 24},
	{Code: "SM", Name: "San Marino", Length: 27},
	{Code: "SN", Name: "Senegal", Length: 28},
	{Code: "SO", Name: "Somalia", Length: 23},
	{Code: "ST", Name: "São Tomé and Príncipe", Length: 25},
	{Code: "SV", Name: "El Salvador", Length: 28},
	{Code: "TD", Name: "Chad", Length: 27},
	{Code: "TG", Name: "Togo", Length: 28},
	{Code: "TL", Name: "Timor-Leste", Length: 23},
	{Code: "TN", Name: "Tunisia", Length: 24},
	{Code: "TR", Name: "Turkey", Length: 26},
	{Code: "UA", Name: "Ukraine", Length: 29},
	{Code: "VA", Name: "Vatican City", Length: 22},
	{Code: "VG", Name: "British Virgin Islands", Length: 24},
	{Code: "XK", Name: "Kosovo", Length: 20},
	{Code: "YE", Name: "Yemen", Length: 30},
}

var defaultTable = mustTable(registry)

// DefaultTable returns the built-in registry of IBAN-issuing countries.
func DefaultTable() *Table { return defaultTable }

// NewTable builds a table from the given entries. Codes are upper-cased;
// malformed codes, duplicates and lengths below the structural minimum are
// rejected.
func NewTable(entries []Country) (*Table, error) {
	t := &Table{
		byCode: make(map[string]Country, len(entries)),
		codes:  make([]string, 0, len(entries)),
	}
	for _, c := range entries {
		code, ok := normalizeCode(c.Code)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCountryCode, c.Code)
		}
		if _, dup := t.byCode[code]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCountry, code)
		}
		if c.Length < minLength {
			return nil, fmt.Errorf("%w: %s=%d", ErrInvalidLength, code, c.Length)
		}
		c.Code = code
		t.byCode[code] = c
		t.codes = append(t.codes, code)
	}
	slices.Sort(t.codes)
	return t, nil
}

func mustTable(entries []Country) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// LengthFor reports the expected IBAN length for an uppercase country code.
// The boolean is false when the country does not issue IBANs.
func (t *Table) LengthFor(code string) (int, bool) {
	c, ok := t.byCode[code]
	return c.Length, ok
}

func (t *Table) Lookup(code string) (Country, bool) {
	c, ok := t.byCode[code]
	return c, ok
}

// Codes returns the supported country codes in ascending order.
func (t *Table) Codes() []string { return slices.Clone(t.codes) }

func (t *Table) Len() int { return len(t.codes) }

func normalizeCode(code string) (string, bool) {
	if len(code) != 2 {
		return "", false
	}
	b := []byte{toUpperASCII(code[0]), toUpperASCII(code[1])}
	if !isUpperASCII(b[0]) || !isUpperASCII(b[1]) {
		return "", false
	}
	return string(b), true
}
