package utils

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

var (
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

// ValidatePasswordStrength checks the registration password policy and
// returns the first violated rule.
func ValidatePasswordStrength(password string) error {
	// Length counts characters, not bytes.
	if utf8.RuneCountInString(password) < 8 {
		return errors.New("Password must be at least 8 characters long")
	}
	if !upperPattern.MatchString(password) {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !lowerPattern.MatchString(password) {
		return errors.New("Password must contain at least one lowercase letter")
	}
	if !digitPattern.MatchString(password) {
		return errors.New("Password must contain at least one number")
	}
	if !specialPattern.MatchString(password) {
		return errors.New("Password must contain at least one special character")
	}
	return nil
}
