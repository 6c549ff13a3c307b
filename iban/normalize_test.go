package iban

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"DE75 5121 0800 1245 1261 99", "DE75512108001245126199"},
		{"de75-5121-0800", "DE7551210800"},
		{"\tfr76 3000\n", "FR763000"},
		{"ÄT61", "T61"},
		{"äT61", "T61"},
		{"ıT61 1904", "IT611904"},
		{"ſE", "SE"},
		{"", ""},
		{"--//..", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestParse(t *testing.T) {
	p, ok := Parse("GB33BUKB20201555555555")
	assert.True(t, ok)
	assert.Equal(t, Parsed{CountryCode: "GB", CheckDigits: "33", BBAN: "BUKB20201555555555"}, p)
	assert.Equal(t, "GB33BUKB20201555555555", p.String())

	for _, in := range []string{"", "GB", "GB33", "G133BUKB", "GB3XBUKB", "gb33bukb", "GB33BUKB-1"} {
		_, ok := Parse(in)
		assert.False(t, ok, in)
	}
}

func TestCountryPrefix(t *testing.T) {
	assert.Equal(t, "DE", countryPrefix("DE75"))
	assert.Equal(t, "D", countryPrefix("D"))
	assert.Equal(t, "", countryPrefix(""))
}
