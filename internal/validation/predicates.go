package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	emailPattern      = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	datePattern       = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	timePattern       = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)
	urlPattern        = regexp.MustCompile(`^(http|https)://[^\s/$.?#].[^\s]*$`)
	phonePattern      = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	postalCodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	creditCardPattern = regexp.MustCompile(`^\d{4}-?\d{4}-?\d{4}-?\d{4}$`)
)

// NotEmpty rejects the empty string.
func NotEmpty(s string) bool {
	return s != ""
}

// ValidName rejects names containing numeric characters.
func ValidName(s string) bool {
	return !strings.ContainsFunc(s, unicode.IsNumber)
}

// Email accepts local@domain.tld style addresses.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// MinLength returns a predicate accepting strings of at least n characters.
func MinLength(n int) Predicate {
	return func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	}
}

// MaxLength returns a predicate accepting strings of at most n characters.
func MaxLength(n int) Predicate {
	return func(s string) bool {
		return utf8.RuneCountInString(s) <= n
	}
}

// IsAlpha accepts strings made only of letters.
func IsAlpha(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
}

// IsInteger accepts strings that parse as a 32-bit signed integer.
func IsInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 32)
	return err == nil
}

// IsFloat accepts strings that parse as a 64-bit float.
func IsFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsDate accepts YYYY-MM-DD dates.
func IsDate(s string) bool {
	return datePattern.MatchString(s)
}

// IsTime accepts 24h HH:MM:SS times.
func IsTime(s string) bool {
	return timePattern.MatchString(s)
}

// IsURL accepts http and https URLs.
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}

// IsPhoneNumber accepts E.164 style numbers with an optional leading '+'.
func IsPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// IsPostalCode accepts 12345 and 12345-6789.
func IsPostalCode(s string) bool {
	return postalCodePattern.MatchString(s)
}

// IsCreditCard accepts sixteen digits, optionally grouped by dashes.
func IsCreditCard(s string) bool {
	return creditCardPattern.MatchString(s)
}

// IsUUID accepts the canonical 36 character hyphenated UUID form only.
// uuid.Parse also accepts the urn and braced forms, hence the length check.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// ByName resolves a predicate from its snake_case name. arg is only used by
// the length predicates.
func ByName(name string, arg int) (Predicate, error) {
	switch name {
	case "not_empty":
		return NotEmpty, nil
	case "valid_name":
		return ValidName, nil
	case "email":
		return Email, nil
	case "min_length":
		if arg < 0 {
			return nil, fmt.Errorf("min_length requires a non-negative argument, got %d", arg)
		}
		return MinLength(arg), nil
	case "max_length":
		if arg < 0 {
			return nil, fmt.Errorf("max_length requires a non-negative argument, got %d", arg)
		}
		return MaxLength(arg), nil
	case "alpha":
		return IsAlpha, nil
	case "integer":
		return IsInteger, nil
	case "float":
		return IsFloat, nil
	case "date":
		return IsDate, nil
	case "time":
		return IsTime, nil
	case "url":
		return IsURL, nil
	case "phone":
		return IsPhoneNumber, nil
	case "postal_code":
		return IsPostalCode, nil
	case "credit_card":
		return IsCreditCard, nil
	case "uuid":
		return IsUUID, nil
	default:
		return nil, fmt.Errorf("unknown predicate %q", name)
	}
}
