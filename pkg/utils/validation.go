package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	phoneRegex        = regexp.MustCompile(`^\d{10}$`)
)

// ValidateSignupInput checks every rule and reports all violations in one
// pass rather than stopping at the first.
func ValidateSignupInput(email, password, phone string) error {
	var errs ValidationErrors

	if email != "" && !strings.Contains(email, "@") {
		errs = append(errs, "Email must contain @ symbol")
	}
	if email != "" && !emailRegex.MatchString(email) {
		errs = append(errs, "Email format is invalid")
	}
	if password != "" && !alphanumericRegex.MatchString(password) {
		errs = append(errs, "Password must contain only alphanumeric characters")
	}
	if password != "" && len(password) < 6 {
		errs = append(errs, "Password must be at least 6 characters long")
	}
	if strings.TrimSpace(phone) != "" && !phoneRegex.MatchString(phone) {
		errs = append(errs, "Phone number must be exactly 10 digits")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
