package iban

import (
	"errors"
	"strconv"
	"strings"
)

// chunkSize keeps every intermediate value (two remainder digits plus the
// chunk) within nine decimal digits.
const chunkSize = 7

var ErrInvalidBBAN = errors.New("iban: bban must be 1-30 characters of A-Z or 0-9")

// ValidChecksum reports whether a normalized IBAN passes ISO 7064 MOD 97-10.
func ValidChecksum(normalized string) bool {
	p, ok := Parse(normalized)
	if !ok {
		return false
	}
	return checksumOK(p)
}

// CheckDigits computes the two check digits for a country code and BBAN.
// Both are normalized first.
func CheckDigits(countryCode, bban string) (string, error) {
	code, ok := normalizeCode(countryCode)
	if !ok {
		return "", ErrInvalidCountryCode
	}
	bban = Normalize(bban)
	if bban == "" || len(bban) > 30 {
		return "", ErrInvalidBBAN
	}
	cd := 98 - mod97(toDigits(bban+code+"00"))
	if cd < 10 {
		return "0" + strconv.Itoa(cd), nil
	}
	return strconv.Itoa(cd), nil
}

func checksumOK(p Parsed) bool {
	return mod97(toDigits(p.BBAN+p.CountryCode+p.CheckDigits)) == 1
}

// toDigits replaces every letter with its two-digit value, A=10 through Z=35.
func toDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUpperASCII(c) {
			b.WriteString(strconv.Itoa(int(c) - 55))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// mod97 reduces a decimal string of any length modulo 97. The first two
// digits seed the remainder; each step appends up to seven more digits to it
// and reduces again, so no step leaves native int range.
func mod97(digits string) int {
	if len(digits) <= 2 {
		n, _ := strconv.Atoi(digits)
		return n % 97
	}
	rem, _ := strconv.Atoi(digits[:2])
	for off := 2; off < len(digits); off += chunkSize {
		end := min(off+chunkSize, len(digits))
		n, _ := strconv.Atoi(strconv.Itoa(rem) + digits[off:end])
		rem = n % 97
	}
	return rem
}
