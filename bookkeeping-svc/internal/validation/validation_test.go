package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "valid price", raw: "10.99", want: "10.99"},
		{name: "surrounding spaces", raw: "  12.5 ", want: "12.50"},
		{name: "zero is allowed", raw: "0", want: "0.00"},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "not a number", raw: "ten", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			price, err := ParsePrice(testCase.raw)
			if testCase.wantErr {
				var validationErr ValidationError
				assert.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "price", validationErr.Field)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.want, price.StringFixed(2))
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "valid", value: "Burger", want: "Burger"},
		{name: "trimmed", value: "  Pasta  ", want: "Pasta"},
		{name: "blank", value: "   ", wantErr: true},
		{name: "too long", value: strings.Repeat("a", 101), wantErr: true},
		{name: "multibyte within limit", value: strings.Repeat("Б", 40), want: strings.Repeat("Б", 40)},
		{name: "multibyte at limit", value: strings.Repeat("ж", 100), want: strings.Repeat("ж", 100)},
		{name: "multibyte over limit", value: strings.Repeat("ж", 101), wantErr: true},
		{name: "invalid UTF-8", value: "Bur\xffger", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := ValidateName("name", testCase.value)
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	n, err := ParsePositiveInt("table_number", " 4 ")
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = ParsePositiveInt("table_number", "0")
	assert.EqualError(t, err, "table_number: must be greater than zero")

	_, err = ParsePositiveInt("seats", "two")
	assert.EqualError(t, err, "seats: must be a whole number")
}

func TestParseReservationTime(t *testing.T) {
	at, err := ParseReservationTime("2026-10-18 19:30:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 18, 19, 30, 0, 0, time.Local), at)

	at, err = ParseReservationTime("  ")
	assert.NoError(t, err)
	assert.True(t, at.IsZero())

	_, err = ParseReservationTime("18/10/2026 19:30")
	assert.EqualError(t, err, "reservation_time: expected format YYYY-MM-DD HH:MM:SS")
}
