package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"restaurant-bookkeeping/bookkeeping-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const maxNameLength = 100

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateName(field, value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", ValidationError{Field: field, Message: "value is required"}
	}
	if !utf8.ValidString(name) {
		return "", ValidationError{Field: field, Message: "must be valid UTF-8 text"}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxNameLength)}
	}
	return name, nil
}

func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ValidationError{Field: "price", Message: "must be a decimal number"}
	}
	return price, ValidatePrice(price)
}

func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ValidationError{Field: "price", Message: "must not be negative"}
	}
	return nil
}

func ParsePositiveInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ValidationError{Field: field, Message: "must be a whole number"}
	}
	return n, ValidatePositive(field, n)
}

func ValidatePositive(field string, n int) error {
	if n <= 0 {
		return ValidationError{Field: field, Message: "must be greater than zero"}
	}
	return nil
}

// ParseReservationTime reads domain.TimeLayout in the local zone. Blank input
// yields the zero time, which the domain treats as "now".
func ParseReservationTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	at, err := time.ParseInLocation(domain.TimeLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, ValidationError{Field: "reservation_time", Message: "expected format YYYY-MM-DD HH:MM:SS"}
	}
	return at, nil
}
