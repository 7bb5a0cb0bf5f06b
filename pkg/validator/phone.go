package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrEmptyPhone indicates the phone number is empty
	ErrEmptyPhone = errors.New("phone number cannot be empty")

	// ErrInvalidPhoneFormat indicates the phone number contains invalid characters
	ErrInvalidPhoneFormat = errors.New("phone number can only contain digits and separators")

	// ErrInvalidPhoneLength indicates the phone number is not 10 digits
	ErrInvalidPhoneLength = errors.New("phone number must be exactly 10 digits")
)

// digitsRegex matches digits only
var digitsRegex = regexp.MustCompile(`^\d+$`)

// PhoneValidator validates US phone numbers
type PhoneValidator struct{}

// NewPhoneValidator creates a new phone validator instance
func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{}
}

// Validate validates a US phone number.
// Accepts formats like 4155551234, (415) 555-1234, 415.555.1234 or
// +1 415 555 1234 and returns the sanitized 10-digit form.
func (v *PhoneValidator) Validate(phone string) (string, error) {
	if phone == "" {
		return "", ErrEmptyPhone
	}

	sanitized := v.Sanitize(phone)

	if !digitsRegex.MatchString(sanitized) {
		return "", ErrInvalidPhoneFormat
	}

	if len(sanitized) != 10 {
		return "", ErrInvalidPhoneLength
	}

	return sanitized, nil
}

// Sanitize removes separators and a leading country code from a phone number
func (v *PhoneValidator) Sanitize(phone string) string {
	for _, sep := range []string{" ", "-", "(", ")", "+", "."} {
		phone = strings.ReplaceAll(phone, sep, "")
	}

	// Drop US country code if present
	if strings.HasPrefix(phone, "1") && len(phone) == 11 {
		phone = phone[1:]
	}

	return phone
}

// Format formats a phone number as (XXX) XXX-XXXX
func (v *PhoneValidator) Format(phone string) (string, error) {
	sanitized, err := v.Validate(phone)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("(%s) %s-%s", sanitized[0:3], sanitized[3:6], sanitized[6:10]), nil
}

// IsValid is a convenience method that returns true if phone is valid
func (v *PhoneValidator) IsValid(phone string) bool {
	_, err := v.Validate(phone)
	return err == nil
}
