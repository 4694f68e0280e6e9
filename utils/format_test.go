package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2", "(2"},
		{"234", "(234"},
		{"2345", "(234) 5"},
		{"234555", "(234) 555"},
		{"2345550", "(234) 555-0"},
		{"2345550123", "(234) 555-0123"},
		{"2345550123456", "(234) 555-0123456"},
		{"(234) 555-0123", "(234) 555-0123"},
		{"23x45-5.50123", "(234) 555-0123"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPhone(tc.in), "input %q", tc.in)
	}
}

func TestFormatPhoneFullInputShape(t *testing.T) {
	full := regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{1,7}$`)
	assert.Regexp(t, full, FormatPhone("2345550123456"))
	assert.Regexp(t, full, FormatPhone("23455501234567890"), "overlong input is truncated")
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "", FormatCardNumber(""))
	assert.Equal(t, "4242", FormatCardNumber("4242"))
	assert.Equal(t, "4242 42", FormatCardNumber("424242"))
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242424242424242"))
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242-4242-4242-4242-99"))
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "", FormatExpiry(""))
	assert.Equal(t, "1", FormatExpiry("1"))
	assert.Equal(t, "12", FormatExpiry("12"))
	assert.Equal(t, "12/2", FormatExpiry("122"))
	assert.Equal(t, "12/26", FormatExpiry("1226"))
	assert.Equal(t, "12/26", FormatExpiry("12/26/99"))
}
