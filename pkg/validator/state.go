package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyState indicates the state code is empty after trimming
	ErrEmptyState = errors.New("state code cannot be empty")

	// ErrInvalidStateCode indicates the state code is not two letters
	ErrInvalidStateCode = errors.New("state code must be exactly 2 letters")
)

// stateCodeRegex matches a normalized 2-letter uppercase state code
var stateCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// NormalizeStateCode trims and uppercases a US state code and validates
// that the result is exactly two alphabetic characters.
func NormalizeStateCode(state string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(state))
	if normalized == "" {
		return "", ErrEmptyState
	}
	if !stateCodeRegex.MatchString(normalized) {
		return "", ErrInvalidStateCode
	}
	return normalized, nil
}

// IsValidStateCode is a convenience wrapper around NormalizeStateCode.
func IsValidStateCode(state string) bool {
	_, err := NormalizeStateCode(state)
	return err == nil
}
