package iban_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/go-iban/iban"
)

func TestDefaultTable(t *testing.T) {
	tbl := iban.DefaultTable()
	require.Equal(t, 111, tbl.Len())

	tests := []struct {
		code string
		want int
	}{
		{"AT", 20}, {"DE", 22}, {"GB", 22}, {"FR", 27},
		{"NO", 15}, {"RU", 33}, {"LC", 32}, {"SC", 31},
		{"BI", 27}, {"CR", 22}, {"SO", 23},
	}
	for _, tt := range tests {
		got, ok := tbl.LengthFor(tt.code)
		assert.True(t, ok, tt.code)
		assert.Equal(t, tt.want, got, tt.code)
	}

	for _, code := range []string{"ZZ", "US", "de", "", "D", "DEU"} {
		_, ok := tbl.LengthFor(code)
		assert.False(t, ok, code)
	}
}

func TestDefaultTable_LengthRange(t *testing.T) {
	tbl := iban.DefaultTable()
	for _, code := range tbl.Codes() {
		n, _ := tbl.LengthFor(code)
		assert.GreaterOrEqual(t, n, 15, code)
		assert.LessOrEqual(t, n, 34, code)
	}
}

func TestTable_Lookup(t *testing.T) {
	c, ok := iban.DefaultTable().Lookup("CH")
	require.True(t, ok)
	assert.Equal(t, iban.Country{Code: "CH", Name: "Switzerland", Length: 21}, c)
}

func TestTable_CodesSortedAndCopied(t *testing.T) {
	tbl := iban.DefaultTable()
	codes := tbl.Codes()
	assert.IsIncreasing(t, codes)

	codes[0] = "ZZ"
	assert.NotEqual(t, "ZZ", tbl.Codes()[0])
}

func TestNewTable(t *testing.T) {
	tbl, err := iban.NewTable([]iban.Country{
		{Code: "xk", Name: "Kosovo", Length: 20},
		{Code: "AL", Name: "Albania", Length: 28},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"AL", "XK"}, tbl.Codes())

	n, ok := tbl.LengthFor("XK")
	assert.True(t, ok)
	assert.Equal(t, 20, n)
}

func TestNewTable_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []iban.Country
		wantErr error
	}{
		{"digit in code", []iban.Country{{Code: "D1", Length: 22}}, iban.ErrInvalidCountryCode},
		{"three letters", []iban.Country{{Code: "DEU", Length: 22}}, iban.ErrInvalidCountryCode},
		{"empty code", []iban.Country{{Code: "", Length: 22}}, iban.ErrInvalidCountryCode},
		{"duplicate after upper-casing", []iban.Country{{Code: "DE", Length: 22}, {Code: "de", Length: 22}}, iban.ErrDuplicateCountry},
		{"length too short", []iban.Country{{Code: "DE", Length: 4}}, iban.ErrInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := iban.NewTable(tt.entries)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
