package models

import "regexp"

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// IsValidPhone accepts US numbers written as NNN-NNN-NNNN.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
