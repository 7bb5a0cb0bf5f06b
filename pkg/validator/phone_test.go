package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneValidate_ValidNumbers(t *testing.T) {
	validator := NewPhoneValidator()

	validNumbers := []struct {
		input    string
		expected string
		name     string
	}{
		{"4155551234", "4155551234", "Standard format"},
		{"415 555 1234", "4155551234", "With spaces"},
		{"415-555-1234", "4155551234", "With dashes"},
		{"(415) 555-1234", "4155551234", "With parentheses"},
		{"415.555.1234", "4155551234", "With dots"},
		{"+1 415 555 1234", "4155551234", "With country code"},
		{"14155551234", "4155551234", "Bare country code"},
	}

	for _, tc := range validNumbers {
		t.Run(tc.name, func(t *testing.T) {
			sanitized, err := validator.Validate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sanitized)
		})
	}
}

func TestPhoneValidate_InvalidNumbers(t *testing.T) {
	validator := NewPhoneValidator()

	invalidNumbers := []struct {
		input       string
		expectedErr error
		name        string
	}{
		{"", ErrEmptyPhone, "Empty string"},
		{"555123", ErrInvalidPhoneLength, "Too short"},
		{"41555512345", ErrInvalidPhoneLength, "Too long"},
		{"415555123a", ErrInvalidPhoneFormat, "Contains letters"},
	}

	for _, tc := range invalidNumbers {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validator.Validate(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestPhoneFormat(t *testing.T) {
	validator := NewPhoneValidator()

	formatted, err := validator.Format("4155551234")
	require.NoError(t, err)
	assert.Equal(t, "(415) 555-1234", formatted)

	_, err = validator.Format("123")
	assert.Error(t, err)
}

func TestPhoneIsValid(t *testing.T) {
	validator := NewPhoneValidator()

	assert.True(t, validator.IsValid("(415) 555-1234"))
	assert.False(t, validator.IsValid("123"))
}
