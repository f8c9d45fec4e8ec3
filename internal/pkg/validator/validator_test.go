package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidOTP(t *testing.T) {
	assert.True(t, IsValidOTP("012345"))
	assert.False(t, IsValidOTP("12345"))
	assert.False(t, IsValidOTP("1234567"))
	assert.False(t, IsValidOTP("12a456"))
}

func TestIsValidUnitCode(t *testing.T) {
	assert.True(t, IsValidUnitCode("G3"))
	assert.True(t, IsValidUnitCode("unit_01"))
	assert.False(t, IsValidUnitCode("x"))
	assert.False(t, IsValidUnitCode("has space"))
}

func TestIsValidPeriod(t *testing.T) {
	assert.True(t, IsValidPeriod("2025-01"))
	assert.True(t, IsValidPeriod("2025-12"))
	assert.False(t, IsValidPeriod("2025-13"))
	assert.False(t, IsValidPeriod("2025-1"))
	assert.False(t, IsValidPeriod("jan-2025"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-02-28")
	assert.True(t, ok)
	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("28/02/2025")
	assert.False(t, ok)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}
