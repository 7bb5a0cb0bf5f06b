package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStateCode_Valid(t *testing.T) {
	validCodes := []struct {
		input    string
		expected string
		name     string
	}{
		{"CA", "CA", "Already normalized"},
		{"ca", "CA", "Lowercase"},
		{"Ny", "NY", "Mixed case"},
		{" tx ", "TX", "Surrounding whitespace"},
		{"fl", "FL", "Lowercase Florida"},
	}

	for _, tc := range validCodes {
		t.Run(tc.name, func(t *testing.T) {
			normalized, err := NormalizeStateCode(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, normalized)
		})
	}
}

func TestNormalizeStateCode_Invalid(t *testing.T) {
	invalidCodes := []struct {
		input       string
		expectedErr error
		name        string
	}{
		{"", ErrEmptyState, "Empty string"},
		{"   ", ErrEmptyState, "Whitespace only"},
		{"C", ErrInvalidStateCode, "Too short"},
		{"CAL", ErrInvalidStateCode, "Too long"},
		{"C1", ErrInvalidStateCode, "Contains digit"},
		{"C-", ErrInvalidStateCode, "Contains punctuation"},
	}

	for _, tc := range invalidCodes {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeStateCode(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestIsValidStateCode(t *testing.T) {
	assert.True(t, IsValidStateCode("wa"))
	assert.False(t, IsValidStateCode("wash"))
	assert.False(t, IsValidStateCode(""))
}
