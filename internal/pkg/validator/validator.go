package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToMap shapes the errors for the response envelope's details field.
func (v ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v))
	for _, err := range v {
		m[err.Field] = err.Message
	}
	return m
}

func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	otpRegex      = regexp.MustCompile(`^[0-9]{6}$`)
	unitCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{2,20}$`)
	periodRegex   = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidOTP accepts exactly six digits.
func IsValidOTP(code string) bool {
	return otpRegex.MatchString(code)
}

func IsValidUnitCode(code string) bool {
	return unitCodeRegex.MatchString(code)
}

// IsValidPeriod accepts payroll periods in YYYY-MM form.
func IsValidPeriod(period string) bool {
	return periodRegex.MatchString(period)
}

// IsValidDate parses a YYYY-MM-DD date.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}
