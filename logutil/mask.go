package logutil

import "github.com/vortex-fintech/go-iban/iban"

const maskRune = '*'

// MaskIBAN renders an account number safe for logs. The normalized value
// keeps its country code and check digits plus the last four characters;
// short values keep only the first two.
func MaskIBAN(s string) string {
	n := iban.Normalize(s)
	switch {
	case n == "":
		return ""
	case len(n) <= 8:
		return keep(n, min(2, len(n)), 0)
	default:
		return keep(n, 4, 4)
	}
}

func keep(s string, head, tail int) string {
	b := []byte(s)
	for i := head; i < len(b)-tail; i++ {
		b[i] = maskRune
	}
	return string(b)
}
