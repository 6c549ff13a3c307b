// Package iban validates International Bank Account Numbers.
//
// Validation normalizes the input (upper-case, only A-Z and 0-9 kept) and
// then applies four gates in order: country support, total length for that
// country, the IBAN character pattern and the ISO 7064 MOD 97-10 checksum.
// The first gate that fails decides the Reason; checksum failures are
// reported as ReasonPatternInvalid.
//
//	res := iban.ValidateText("DE75 5121 0800 1245 1261 99")
//	if err := res.Err(); err != nil {
//		// res.Reason holds the failing gate
//	}
//
// All functions are pure and safe for concurrent use.
package iban
